package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"gorm.io/gorm"
)

type gormBlogStore struct {
	db *gorm.DB
}

// NewBlogStore returns a BlogStore backed by the given GORM handle.
func NewBlogStore(db *gorm.DB) BlogStore {
	return &gormBlogStore{db: db}
}

func (s *gormBlogStore) Create(ctx context.Context, b *models.Blog) error {
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *gormBlogStore) Published(ctx context.Context) ([]models.Blog, error) {
	var blogs []models.Blog
	err := s.db.WithContext(ctx).
		Where("status = ?", models.BlogPublished).
		Order("created_at DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, err
	}
	return blogs, nil
}

func (s *gormBlogStore) PublishedByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	var b models.Blog
	err := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.BlogPublished).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *gormBlogStore) List(ctx context.Context, status string, p query.Pagination) ([]models.Blog, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.Blog{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var blogs []models.Blog
	if err := tx.Order("created_at DESC").Offset(p.Skip).Limit(p.Limit).Find(&blogs).Error; err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

func (s *gormBlogStore) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (UpdateResult, error) {
	return updateChanged(ctx, s.db, &models.Blog{}, "id = ?", id, map[string]interface{}{"status": status})
}

func (s *gormBlogStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.Blog{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
