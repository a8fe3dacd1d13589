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

// BlogStore is an in-memory store.BlogStore.
type BlogStore struct {
	counter
	mu    sync.RWMutex
	blogs []models.Blog
}

func NewBlogStore() *BlogStore {
	return &BlogStore{}
}

func (s *BlogStore) Create(_ context.Context, b *models.Blog) error {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.Status == "" {
		b.Status = models.BlogDraft
	}
	s.blogs = append(s.blogs, *b)
	return nil
}

func (s *BlogStore) Published(_ context.Context) ([]models.Blog, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	published := []models.Blog{}
	for _, b := range s.blogs {
		if b.Status == models.BlogPublished {
			published = append(published, b)
		}
	}
	sortByCreatedDesc(published)
	return published, nil
}

func (s *BlogStore) PublishedByID(_ context.Context, id uuid.UUID) (*models.Blog, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.blogs {
		if s.blogs[i].ID == id && s.blogs[i].Status == models.BlogPublished {
			b := s.blogs[i]
			return &b, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *BlogStore) List(_ context.Context, status string, p query.Pagination) ([]models.Blog, int64, error) {
	s.inc()
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.Blog
	for _, b := range s.blogs {
		if status != "" && b.Status != status {
			continue
		}
		matched = append(matched, b)
	}
	sortByCreatedDesc(matched)
	total := int64(len(matched))
	return page(matched, p), total, nil
}

func (s *BlogStore) UpdateStatus(_ context.Context, id uuid.UUID, status string) (store.UpdateResult, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blogs {
		if s.blogs[i].ID == id {
			res := store.UpdateResult{Matched: 1}
			if s.blogs[i].Status != status {
				s.blogs[i].Status = status
				res.Modified = 1
			}
			return res, nil
		}
	}
	return store.UpdateResult{}, nil
}

func (s *BlogStore) Delete(_ context.Context, id uuid.UUID) (int64, error) {
	s.inc()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

// Get returns a blog of any status, for test assertions.
func (s *BlogStore) Get(id uuid.UUID) (models.Blog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.blogs {
		if b.ID == id {
			return b, true
		}
	}
	return models.Blog{}, false
}

func sortByCreatedDesc(blogs []models.Blog) {
	sort.SliceStable(blogs, func(i, j int) bool {
		return blogs[i].CreatedAt.After(blogs[j].CreatedAt)
	})
}
