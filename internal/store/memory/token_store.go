package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
)

// RefreshTokenStore is an in-memory store.RefreshTokenStore.
type RefreshTokenStore struct {
	counter
	mu     sync.RWMutex
	tokens []models.RefreshToken
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{}
}

func (s *RefreshTokenStore) Create(_ context.Context, t *models.RefreshToken) error {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	s.tokens = append(s.tokens, *t)
	return nil
}

func (s *RefreshTokenStore) FindActive(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tokens {
		if s.tokens[i].TokenHash == tokenHash && !s.tokens[i].Revoked {
			t := s.tokens[i]
			return &t, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *RefreshTokenStore) Revoke(_ context.Context, tokenHash string) error {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tokens {
		if s.tokens[i].TokenHash == tokenHash {
			s.tokens[i].Revoked = true
		}
	}
	return nil
}
