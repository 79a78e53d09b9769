package repository

import (
	"context"
	"fmt"

	"customer-portal/internal/database"
	"customer-portal/internal/domain"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
}

type categoryRepository struct {
	db database.Querier
}

// NewCategoryRepository creates a new instance of CategoryRepository
func NewCategoryRepository(db database.Querier) CategoryRepository {
	return &categoryRepository{db: db}
}

// ListActive returns active categories ordered by sort order, then name.
func (r *categoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, description, image_url, sort_order, is_active, created_at, updated_at
		FROM categories
		WHERE is_active = TRUE
		ORDER BY sort_order, name
	`

	rows, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Category])
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return categories, nil
}
