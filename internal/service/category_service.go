package service

import (
	"context"

	"customer-portal/internal/domain"
	"customer-portal/internal/repository"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService
func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) ListActive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch categories", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	return categories, nil
}
