package models

import (
	"time"

	"github.com/google/uuid"
)

// Donation request lifecycle statuses.
const (
	DonationPending    = "pending"
	DonationInProgress = "inprogress"
	DonationDone       = "done"
	DonationCanceled   = "canceled"
)

// DonationRequest is a plea for blood posted by a requester and picked up
// by a donor. RequesterEmail references users.email but is not enforced
// referentially; the application checks it at creation time.
//
// DonationDate is stored as an ISO YYYY-MM-DD string so that descending
// lexicographic order is descending chronological order, matching the
// sort the listings need. DonationTime is a display string (e.g. "14:30").
type DonationRequest struct {
	ID                uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	RequesterEmail    string    `gorm:"not null;size:255;index" json:"requesterEmail"`
	RequesterName     string    `gorm:"size:255" json:"requesterName"`
	RecipientName     string    `gorm:"size:255" json:"recipientName"`
	RecipientDistrict string    `gorm:"size:100" json:"recipientDistrict"`
	RecipientUpazila  string    `gorm:"size:100" json:"recipientUpazila"`
	Hospital          string    `gorm:"size:255" json:"hospitalName"`
	FullAddress       string    `gorm:"size:512" json:"fullAddress"`
	BloodGroup        string    `gorm:"not null;size:5;index" json:"bloodGroup"`
	DonationDate      string    `gorm:"not null;size:10;index" json:"donationDate"`
	DonationTime      string    `gorm:"size:10" json:"donationTime"`
	RequestMessage    string    `gorm:"type:text" json:"requestMessage"`
	Status            string    `gorm:"size:20;default:'pending';index" json:"status"`
	DonorName         string    `gorm:"size:255" json:"donorName,omitempty"`
	DonorEmail        string    `gorm:"size:255" json:"donorEmail,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
