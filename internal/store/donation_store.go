package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"gorm.io/gorm"
)

type gormDonationStore struct {
	db *gorm.DB
}

// NewDonationRequestStore returns a DonationRequestStore backed by the
// given GORM handle.
func NewDonationRequestStore(db *gorm.DB) DonationRequestStore {
	return &gormDonationStore{db: db}
}

func (s *gormDonationStore) Create(ctx context.Context, r *models.DonationRequest) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *gormDonationStore) GetByID(ctx context.Context, id uuid.UUID) (*models.DonationRequest, error) {
	var r models.DonationRequest
	err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *gormDonationStore) Recent(ctx context.Context, requesterEmail string, limit int) ([]models.DonationRequest, error) {
	var requests []models.DonationRequest
	err := s.db.WithContext(ctx).
		Where("requester_email = ?", requesterEmail).
		Order("donation_date DESC").
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *gormDonationStore) List(ctx context.Context, scope query.DonationScope, p query.Pagination) ([]models.DonationRequest, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.DonationRequest{})
	if scope.RequesterEmail != "" {
		tx = tx.Where("requester_email = ?", scope.RequesterEmail)
	}
	if scope.Status != "" {
		tx = tx.Where("status = ?", scope.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var requests []models.DonationRequest
	if err := tx.Order("donation_date DESC").Offset(p.Skip).Limit(p.Limit).Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

func (s *gormDonationStore) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (UpdateResult, error) {
	return updateChanged(ctx, s.db, &models.DonationRequest{}, "id = ?", id, fields)
}

func (s *gormDonationStore) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).Delete(&models.DonationRequest{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

func (s *gormDonationStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.DonationRequest{}).Count(&total).Error
	return total, err
}
