// Package store defines the persistence interfaces for the service and
// their GORM-backed implementations. Services depend on the interfaces;
// tests substitute the in-memory implementations from store/memory.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
)

var (
	// ErrNotFound is returned when a lookup matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when an insert violates the unique
	// index on users.email. The index is the authoritative duplicate
	// guard; any pre-check in the service layer is only a fast path.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UpdateResult reports how many rows an update matched and how many it
// actually changed. A matched-but-unchanged update is a success with
// Modified == 0, not an error.
type UpdateResult struct {
	Matched  int64 `json:"matchedCount"`
	Modified int64 `json:"modifiedCount"`
}

// UserStore persists accounts and donor profiles.
type UserStore interface {
	// Create inserts a new user. Returns ErrDuplicateEmail when the
	// email is already taken.
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns ErrNotFound when no account has the email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UpdateByEmail applies the column assignments to the account with
	// the given email. Matched is 0 when the account does not exist.
	UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (UpdateResult, error)
	// UpdateByID applies the column assignments to the account by id.
	UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (UpdateResult, error)
	// List returns a page of users and the total count of matches.
	// An empty status means no status restriction.
	List(ctx context.Context, status string, p query.Pagination) ([]models.User, int64, error)
	// SearchDonors returns active donors matching the optional equality
	// filters, for the public directory.
	SearchDonors(ctx context.Context, f query.DonorSearch) ([]models.User, error)
	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)
}

// DonationRequestStore persists donation requests.
type DonationRequestStore interface {
	Create(ctx context.Context, r *models.DonationRequest) error
	// GetByID returns ErrNotFound when the id is absent.
	GetByID(ctx context.Context, id uuid.UUID) (*models.DonationRequest, error)
	// Recent returns up to limit requests by the requester, newest
	// donation date first.
	Recent(ctx context.Context, requesterEmail string, limit int) ([]models.DonationRequest, error)
	// List returns a page of requests under the visibility scope plus
	// the total count of matches, newest donation date first.
	List(ctx context.Context, scope query.DonationScope, p query.Pagination) ([]models.DonationRequest, int64, error)
	// Update applies the column assignments by id.
	Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (UpdateResult, error)
	// Delete removes the request and reports how many rows went away.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// BlogStore persists editorial posts.
type BlogStore interface {
	Create(ctx context.Context, b *models.Blog) error
	// Published returns published blogs, newest first.
	Published(ctx context.Context) ([]models.Blog, error)
	// PublishedByID returns ErrNotFound when the blog is absent or not
	// published.
	PublishedByID(ctx context.Context, id uuid.UUID) (*models.Blog, error)
	// List returns a page of blogs of any status, newest first. An
	// empty status means no restriction.
	List(ctx context.Context, status string, p query.Pagination) ([]models.Blog, int64, error)
	// UpdateStatus sets the publication status by id.
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (UpdateResult, error)
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

// RefreshTokenStore persists hashed refresh tokens.
type RefreshTokenStore interface {
	Create(ctx context.Context, t *models.RefreshToken) error
	// FindActive returns the unrevoked token with the hash, or
	// ErrNotFound.
	FindActive(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	// Revoke marks the token with the hash as revoked. Revoking an
	// unknown hash is not an error.
	Revoke(ctx context.Context, tokenHash string) error
}
