package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
)

// DonationRequestStore is an in-memory store.DonationRequestStore.
type DonationRequestStore struct {
	counter
	mu       sync.RWMutex
	requests []models.DonationRequest
}

func NewDonationRequestStore() *DonationRequestStore {
	return &DonationRequestStore{}
}

func (s *DonationRequestStore) Create(_ context.Context, r *models.DonationRequest) error {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = models.DonationPending
	}
	s.requests = append(s.requests, *r)
	return nil
}

func (s *DonationRequestStore) GetByID(_ context.Context, id uuid.UUID) (*models.DonationRequest, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			r := s.requests[i]
			return &r, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *DonationRequestStore) Recent(_ context.Context, requesterEmail string, limit int) ([]models.DonationRequest, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.DonationRequest
	for _, r := range s.requests {
		if r.RequesterEmail == requesterEmail {
			matched = append(matched, r)
		}
	}
	sortByDateDesc(matched)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (s *DonationRequestStore) List(_ context.Context, scope query.DonationScope, p query.Pagination) ([]models.DonationRequest, int64, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.DonationRequest
	for _, r := range s.requests {
		if scope.RequesterEmail != "" && r.RequesterEmail != scope.RequesterEmail {
			continue
		}
		if scope.Status != "" && r.Status != scope.Status {
			continue
		}
		matched = append(matched, r)
	}
	sortByDateDesc(matched)
	total := int64(len(matched))
	return page(matched, p), total, nil
}

func (s *DonationRequestStore) Update(_ context.Context, id uuid.UUID, fields map[string]interface{}) (store.UpdateResult, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			return applyDonationFields(&s.requests[i], fields), nil
		}
	}
	return store.UpdateResult{}, nil
}

func applyDonationFields(r *models.DonationRequest, fields map[string]interface{}) store.UpdateResult {
	res := store.UpdateResult{Matched: 1}
	for col, val := range fields {
		var target *string
		switch col {
		case "requester_name":
			target = &r.RequesterName
		case "recipient_name":
			target = &r.RecipientName
		case "recipient_district":
			target = &r.RecipientDistrict
		case "recipient_upazila":
			target = &r.RecipientUpazila
		case "hospital":
			target = &r.Hospital
		case "full_address":
			target = &r.FullAddress
		case "blood_group":
			target = &r.BloodGroup
		case "donation_date":
			target = &r.DonationDate
		case "donation_time":
			target = &r.DonationTime
		case "request_message":
			target = &r.RequestMessage
		case "status":
			target = &r.Status
		case "donor_name":
			target = &r.DonorName
		case "donor_email":
			target = &r.DonorEmail
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

func (s *DonationRequestStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (s *DonationRequestStore) Count(_ context.Context) (int64, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.requests)), nil
}

// sortByDateDesc orders newest donation date first, keeping insertion
// order for ties.
func sortByDateDesc(requests []models.DonationRequest) {
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].DonationDate > requests[j].DonationDate
	})
}
