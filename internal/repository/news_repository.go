package repository

import (
	"context"
	"errors"
	"fmt"

	"customer-portal/internal/database"
	"customer-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNewsNotFound = errors.New("news item not found")
)

// visibleNews is shared by the count, page and single-item queries so the
// three can never disagree about which rows are public.
const visibleNews = `n.is_active = TRUE AND (n.expires_at IS NULL OR n.expires_at > NOW())`

const newsColumns = `
	n.id, n.title, n.content, n.summary, n.image_url, n.published_at, n.expires_at,
	n.is_active, n.author_id, u.first_name || ' ' || u.last_name AS author_name,
	n.created_at, n.updated_at`

// NewsRepository defines the interface for news data access
type NewsRepository interface {
	ListVisible(ctx context.Context, page domain.PageRequest) ([]domain.NewsItem, int, error)
	FindVisibleByID(ctx context.Context, id uuid.UUID) (*domain.NewsItem, error)
}

type newsRepository struct {
	db database.Querier
}

// NewNewsRepository creates a new instance of NewsRepository
func NewNewsRepository(db database.Querier) NewsRepository {
	return &newsRepository{db: db}
}

// ListVisible returns one page of active, unexpired news, newest first,
// together with the total number of visible items.
func (r *newsRepository) ListVisible(ctx context.Context, page domain.PageRequest) ([]domain.NewsItem, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM news n WHERE ` + visibleNews
	if err := r.db.QueryRow(ctx, countQuery, nil).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count news: %w", err)
	}

	query := `
		SELECT ` + newsColumns + `
		FROM news n
		LEFT JOIN users u ON n.author_id = u.id
		WHERE ` + visibleNews + `
		ORDER BY n.published_at DESC, n.id
		LIMIT @limit OFFSET @offset
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{
		"limit":  page.PageSize,
		"offset": page.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list news: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.NewsItem])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan news: %w", err)
	}

	return items, total, nil
}

// FindVisibleByID returns the news item only while it is publicly visible.
func (r *newsRepository) FindVisibleByID(ctx context.Context, id uuid.UUID) (*domain.NewsItem, error) {
	query := `
		SELECT ` + newsColumns + `
		FROM news n
		LEFT JOIN users u ON n.author_id = u.id
		WHERE n.id = @id AND ` + visibleNews

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to find news by ID: %w", err)
	}

	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.NewsItem])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNewsNotFound
		}
		return nil, fmt.Errorf("failed to scan news item: %w", err)
	}

	return item, nil
}
