package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
)

var (
	ErrRequestNotFound = errors.New("request not found")
	ErrNotRequester    = errors.New("only the requester or an admin can modify this request")
)

const recentRequestLimit = 3

var validDonationStatuses = map[string]bool{
	models.DonationPending:    true,
	models.DonationInProgress: true,
	models.DonationDone:       true,
	models.DonationCanceled:   true,
}

type DonationService struct {
	donations store.DonationRequestStore
}

func NewDonationService(donations store.DonationRequestStore) *DonationService {
	return &DonationService{donations: donations}
}

// Create submits a new donation request. Requests always start pending.
func (s *DonationService) Create(ctx context.Context, r *models.DonationRequest) error {
	r.Status = models.DonationPending
	return s.donations.Create(ctx, r)
}

// Recent returns the requester's latest requests, newest donation date
// first, capped at three.
func (s *DonationService) Recent(ctx context.Context, requesterEmail string) ([]models.DonationRequest, error) {
	return s.donations.Recent(ctx, requesterEmail, recentRequestLimit)
}

func (s *DonationService) GetByID(ctx context.Context, id uuid.UUID) (*models.DonationRequest, error) {
	r, err := s.donations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRequestNotFound
	}
	return r, err
}

// Update edits a request. Only the original requester or an admin may
// edit; volunteers are not exempt.
func (s *DonationService) Update(ctx context.Context, callerEmail, callerRole string, id uuid.UUID, fields map[string]interface{}) (store.UpdateResult, error) {
	r, err := s.donations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.UpdateResult{}, ErrRequestNotFound
	}
	if err != nil {
		return store.UpdateResult{}, err
	}
	if r.RequesterEmail != callerEmail && callerRole != models.RoleAdmin {
		return store.UpdateResult{}, ErrNotRequester
	}
	return s.donations.Update(ctx, id, fields)
}

// UpdateStatus moves a request through its lifecycle, recording the
// fulfilling donor when supplied.
func (s *DonationService) UpdateStatus(ctx context.Context, id uuid.UUID, status, donorName, donorEmail string) (store.UpdateResult, error) {
	if !validDonationStatuses[status] {
		return store.UpdateResult{}, ErrInvalidStatus
	}
	fields := map[string]interface{}{"status": status}
	if donorName != "" {
		fields["donor_name"] = donorName
	}
	if donorEmail != "" {
		fields["donor_email"] = donorEmail
	}
	return s.donations.Update(ctx, id, fields)
}

// Delete removes a request, with the same ownership rule as Update.
func (s *DonationService) Delete(ctx context.Context, callerEmail, callerRole string, id uuid.UUID) error {
	r, err := s.donations.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrRequestNotFound
	}
	if err != nil {
		return err
	}
	if r.RequesterEmail != callerEmail && callerRole != models.RoleAdmin {
		return ErrNotRequester
	}

	deleted, err := s.donations.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// List returns donation requests visible to the caller. Plain users see
// only their own; admins and volunteers see everything. The caller's
// role must come from a fresh resolution of the verified identity.
func (s *DonationService) List(ctx context.Context, callerEmail, callerRole, status string, p query.Pagination) ([]models.DonationRequest, int64, error) {
	scope := query.ScopeDonations(callerEmail, callerRole, status)
	return s.donations.List(ctx, scope, p)
}

// Pending returns the public page of requests still waiting for a donor.
func (s *DonationService) Pending(ctx context.Context, p query.Pagination) ([]models.DonationRequest, int64, error) {
	scope := query.DonationScope{Status: models.DonationPending}
	return s.donations.List(ctx, scope, p)
}

func (s *DonationService) Count(ctx context.Context) (int64, error) {
	return s.donations.Count(ctx)
}
