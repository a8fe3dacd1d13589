package models

import (
	"time"

	"github.com/google/uuid"
)

// Blog publication states. Blogs are created as drafts and only drafts or
// published are valid; the status endpoint rejects anything else.
const (
	BlogDraft     = "draft"
	BlogPublished = "published"
)

// Blog is an editorial post. Only published blogs are visible through the
// public read paths.
type Blog struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"_id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Thumbnail string    `gorm:"size:512" json:"thumbnail"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Status    string    `gorm:"size:20;default:'draft';index" json:"status"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updated_at"`
}
