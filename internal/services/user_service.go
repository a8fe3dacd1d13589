package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidStatus = errors.New("invalid status value")
	ErrInvalidRole   = errors.New("invalid role value")
)

var (
	validUserStatuses = map[string]bool{
		models.StatusActive:  true,
		models.StatusBlocked: true,
	}
	validRoles = map[string]bool{
		models.RoleUser:      true,
		models.RoleDonor:     true,
		models.RoleVolunteer: true,
		models.RoleAdmin:     true,
	}
)

type UserService struct {
	users store.UserStore
}

func NewUserService(users store.UserStore) *UserService {
	return &UserService{users: users}
}

// Register creates an account. The existence pre-check gives a friendly
// Conflict without a round trip to the unique index, but the index
// remains the authoritative guard: two concurrent registrations can both
// pass the check, and the loser surfaces as ErrEmailTaken from Create.
func (s *UserService) Register(ctx context.Context, u *models.User, password string) error {
	if _, err := s.users.GetByEmail(ctx, u.Email); err == nil {
		return ErrEmailTaken
	}

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = string(hash)
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ResolveRole returns the stored role for an identity, defaulting to
// plain user when the account does not exist or carries no role. The
// default is deliberate: an unregistered caller gets least privilege,
// never an error.
func (s *UserService) ResolveRole(ctx context.Context, email string) string {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil || u.Role == "" {
		return models.RoleUser
	}
	return u.Role
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// UpdateProfile applies self-service profile changes to the account with
// the given email.
func (s *UserService) UpdateProfile(ctx context.Context, email string, fields map[string]interface{}) (store.UpdateResult, error) {
	return s.users.UpdateByEmail(ctx, email, fields)
}

// SetStatus blocks or unblocks an account.
func (s *UserService) SetStatus(ctx context.Context, id uuid.UUID, status string) (store.UpdateResult, error) {
	if !validUserStatuses[status] {
		return store.UpdateResult{}, ErrInvalidStatus
	}
	return s.users.UpdateByID(ctx, id, map[string]interface{}{"status": status})
}

// SetRole promotes or demotes an account.
func (s *UserService) SetRole(ctx context.Context, id uuid.UUID, role string) (store.UpdateResult, error) {
	if !validRoles[role] {
		return store.UpdateResult{}, ErrInvalidRole
	}
	return s.users.UpdateByID(ctx, id, map[string]interface{}{"role": role})
}

func (s *UserService) List(ctx context.Context, status string, p query.Pagination) ([]models.User, int64, error) {
	return s.users.List(ctx, query.StatusFilter(status), p)
}

func (s *UserService) SearchDonors(ctx context.Context, f query.DonorSearch) ([]models.User, error) {
	return s.users.SearchDonors(ctx, f)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
