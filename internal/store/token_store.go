package store

import (
	"context"
	"errors"

	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"gorm.io/gorm"
)

type gormTokenStore struct {
	db *gorm.DB
}

// NewRefreshTokenStore returns a RefreshTokenStore backed by the given
// GORM handle.
func NewRefreshTokenStore(db *gorm.DB) RefreshTokenStore {
	return &gormTokenStore{db: db}
}

func (s *gormTokenStore) Create(ctx context.Context, t *models.RefreshToken) error {
	return s.db.WithContext(ctx).Create(t).Error
}

func (s *gormTokenStore) FindActive(ctx context.Context, tokenHash string) (*models.RefreshToken, error) {
	var t models.RefreshToken
	err := s.db.WithContext(ctx).
		Where("token_hash = ? AND revoked = false", tokenHash).
		First(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *gormTokenStore) Revoke(ctx context.Context, tokenHash string) error {
	return s.db.WithContext(ctx).
		Model(&models.RefreshToken{}).
		Where("token_hash = ?", tokenHash).
		Update("revoked", true).Error
}
