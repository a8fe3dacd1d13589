package store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"gorm.io/gorm"
)

type gormUserStore struct {
	db *gorm.DB
}

// NewUserStore returns a UserStore backed by the given GORM handle.
func NewUserStore(db *gorm.DB) UserStore {
	return &gormUserStore{db: db}
}

func (s *gormUserStore) Create(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *gormUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormUserStore) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormUserStore) UpdateByEmail(ctx context.Context, email string, fields map[string]interface{}) (UpdateResult, error) {
	return updateChanged(ctx, s.db, &models.User{}, "email = ?", email, fields)
}

func (s *gormUserStore) UpdateByID(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (UpdateResult, error) {
	return updateChanged(ctx, s.db, &models.User{}, "id = ?", id, fields)
}

func (s *gormUserStore) List(ctx context.Context, status string, p query.Pagination) ([]models.User, int64, error) {
	tx := s.db.WithContext(ctx).Model(&models.User{})
	if status != "" {
		tx = tx.Where("status = ?", status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []models.User
	if err := tx.Offset(p.Skip).Limit(p.Limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (s *gormUserStore) SearchDonors(ctx context.Context, f query.DonorSearch) ([]models.User, error) {
	tx := s.db.WithContext(ctx).
		Where("role = ?", models.RoleDonor).
		Where("status = ?", models.StatusActive)
	if f.BloodGroup != "" {
		tx = tx.Where("blood_group = ?", f.BloodGroup)
	}
	if f.District != "" {
		tx = tx.Where("district = ?", f.District)
	}
	if f.Upazila != "" {
		tx = tx.Where("upazila = ?", f.Upazila)
	}

	var donors []models.User
	if err := tx.Find(&donors).Error; err != nil {
		return nil, err
	}
	return donors, nil
}

func (s *gormUserStore) Count(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error
	return total, err
}
