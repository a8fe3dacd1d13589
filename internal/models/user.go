package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles an account can hold. Anything outside this set is treated as a
// plain user by the authorization gates.
const (
	RoleUser      = "user"
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
	RoleAdmin     = "admin"
)

// Account statuses. Blocked accounts stay in the table; users are never
// hard-deleted.
const (
	StatusActive  = "active"
	StatusBlocked = "blocked"
)

// User is a registered account with an optional donor profile. Email is
// the identity key; its unique index is the authoritative guard against
// duplicate registration.
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Email      string         `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Name       string         `gorm:"size:255" json:"name"`
	Avatar     string         `gorm:"size:512" json:"avatar"`
	BloodGroup string         `gorm:"size:5;index" json:"bloodGroup"`
	District   string         `gorm:"size:100;index" json:"district"`
	Upazila    string         `gorm:"size:100;index" json:"upazila"`
	Role       string         `gorm:"size:20;default:'user'" json:"role"`
	Status     string         `gorm:"size:20;default:'active';index" json:"status"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
