package service

import (
	"context"
	"errors"
	"strings"

	"customer-portal/internal/domain"
	"customer-portal/internal/repository"

	"github.com/google/uuid"
)

// NewsService defines the interface for news business logic
type NewsService interface {
	List(ctx context.Context, page domain.PageRequest) (*domain.PaginatedResponse[domain.NewsItem], error)
	Get(ctx context.Context, rawID string) (*domain.NewsItem, error)
}

type newsService struct {
	newsRepo repository.NewsRepository
}

// NewNewsService creates a new instance of NewsService
func NewNewsService(newsRepo repository.NewsRepository) NewsService {
	return &newsService{newsRepo: newsRepo}
}

// List returns one page of visible news, newest first.
func (s *newsService) List(ctx context.Context, page domain.PageRequest) (*domain.PaginatedResponse[domain.NewsItem], error) {
	items, total, err := s.newsRepo.ListVisible(ctx, page)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch news items", err)
	}
	return domain.NewPaginatedResponse(items, total, page), nil
}

// Get returns a visible news item. An id that is not a UUID cannot match
// any row and is reported as not found.
func (s *newsService) Get(ctx context.Context, rawID string) (*domain.NewsItem, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, domain.NewValidationError("News ID is required")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.NewNotFoundError("News item not found")
	}

	item, err := s.newsRepo.FindVisibleByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNewsNotFound) {
			return nil, domain.NewNotFoundError("News item not found")
		}
		return nil, domain.NewStoreError("Failed to fetch news item", err)
	}
	return item, nil
}
