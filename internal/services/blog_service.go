package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lifeline-connect/lifeline-backend/internal/models"
	"github.com/lifeline-connect/lifeline-backend/internal/query"
	"github.com/lifeline-connect/lifeline-backend/internal/store"
)

var ErrBlogNotFound = errors.New("blog not found")

var validBlogStatuses = map[string]bool{
	models.BlogDraft:     true,
	models.BlogPublished: true,
}

type BlogService struct {
	blogs store.BlogStore
}

func NewBlogService(blogs store.BlogStore) *BlogService {
	return &BlogService{blogs: blogs}
}

// Create stores a new post. Posts always start as drafts regardless of
// what the payload claims.
func (s *BlogService) Create(ctx context.Context, b *models.Blog) error {
	b.Status = models.BlogDraft
	b.CreatedAt = time.Now().UTC()
	return s.blogs.Create(ctx, b)
}

func (s *BlogService) Published(ctx context.Context) ([]models.Blog, error) {
	return s.blogs.Published(ctx)
}

func (s *BlogService) PublishedByID(ctx context.Context, id uuid.UUID) (*models.Blog, error) {
	b, err := s.blogs.PublishedByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBlogNotFound
	}
	return b, err
}

func (s *BlogService) List(ctx context.Context, status string, p query.Pagination) ([]models.Blog, int64, error) {
	return s.blogs.List(ctx, query.StatusFilter(status), p)
}

// SetStatus publishes or unpublishes a post. Invalid status values are
// rejected before any store access.
func (s *BlogService) SetStatus(ctx context.Context, id uuid.UUID, status string) (store.UpdateResult, error) {
	if !validBlogStatuses[status] {
		return store.UpdateResult{}, ErrInvalidStatus
	}
	res, err := s.blogs.UpdateStatus(ctx, id, status)
	if err != nil {
		return store.UpdateResult{}, err
	}
	if res.Matched == 0 {
		return res, ErrBlogNotFound
	}
	return res, nil
}

func (s *BlogService) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.blogs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrBlogNotFound
	}
	return nil
}
