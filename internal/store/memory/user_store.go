package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
)

// UserStore is an in-memory store.UserStore.
type UserStore struct {
	counter
	mu    sync.RWMutex
	users []models.User
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

func (s *UserStore) Create(_ context.Context, u *models.User) error {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return store.ErrDuplicateEmail
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if u.Status == "" {
		u.Status = models.StatusActive
	}
	s.users = append(s.users, *u)
	return nil
}

func (s *UserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *UserStore) UpdateByEmail(_ context.Context, email string, fields map[string]interface{}) (store.UpdateResult, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == email {
			return applyUserFields(&s.users[i], fields), nil
		}
	}
	return store.UpdateResult{}, nil
}

func (s *UserStore) UpdateByID(_ context.Context, id uuid.UUID, fields map[string]interface{}) (store.UpdateResult, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			return applyUserFields(&s.users[i], fields), nil
		}
	}
	return store.UpdateResult{}, nil
}

func applyUserFields(u *models.User, fields map[string]interface{}) store.UpdateResult {
	res := store.UpdateResult{Matched: 1}
	for col, val := range fields {
		var target *string
		switch col {
		case "name":
			target = &u.Name
		case "avatar":
			target = &u.Avatar
		case "blood_group":
			target = &u.BloodGroup
		case "district":
			target = &u.District
		case "upazila":
			target = &u.Upazila
		case "role":
			target = &u.Role
		case "status":
			target = &u.Status
		case "password":
			target = &u.Password
		default:
			continue
		}
		if next := toString(val); *target != next {
			*target = next
			res.Modified = 1
		}
	}
	return res
}

func (s *UserStore) List(_ context.Context, status string, p query.Pagination) ([]models.User, int64, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.User
	for _, u := range s.users {
		if status != "" && u.Status != status {
			continue
		}
		matched = append(matched, u)
	}
	total := int64(len(matched))
	return page(matched, p), total, nil
}

func (s *UserStore) SearchDonors(_ context.Context, f query.DonorSearch) ([]models.User, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	donors := []models.User{}
	for _, u := range s.users {
		if u.Role != models.RoleDonor || u.Status != models.StatusActive {
			continue
		}
		if f.BloodGroup != "" && u.BloodGroup != f.BloodGroup {
			continue
		}
		if f.District != "" && u.District != f.District {
			continue
		}
		if f.Upazila != "" && u.Upazila != f.Upazila {
			continue
		}
		donors = append(donors, u)
	}
	return donors, nil
}

func (s *UserStore) Count(_ context.Context) (int64, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.users)), nil
}

// page slices a matched set according to the pagination window.
func page[T any](items []T, p query.Pagination) []T {
	if p.Skip >= len(items) {
		return []T{}
	}
	end := p.Skip + p.Limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-p.Skip)
	copy(out, items[p.Skip:end])
	return out
}
