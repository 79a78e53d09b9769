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
	ErrProductNotFound = errors.New("product not found")
)

const productColumns = `
	p.id, p.name, p.sku, p.description, p.short_description, p.price,
	p.category_id, c.name AS category_name, p.is_active, p.created_at, p.updated_at`

// activeProducts is the predicate shared by the count and page queries. The
// category clause collapses to TRUE when no category is requested.
const activeProducts = `p.is_active = TRUE AND (@category_id::uuid IS NULL OR p.category_id = @category_id::uuid)`

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	ListActive(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListImages(ctx context.Context, productID uuid.UUID) ([]domain.ProductImage, error)
	ListSpecifications(ctx context.Context, productID uuid.UUID) ([]domain.ProductSpecification, error)
}

type productRepository struct {
	db database.Querier
}

// NewProductRepository creates a new instance of ProductRepository
func NewProductRepository(db database.Querier) ProductRepository {
	return &productRepository{db: db}
}

// ListActive returns one page of active products ordered by name, with the
// total number of matching products. Owned collections are not loaded.
func (r *productRepository) ListActive(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int, error) {
	args := pgx.NamedArgs{"category_id": filter.CategoryID}

	var total int
	countQuery := `SELECT COUNT(*) FROM products p WHERE ` + activeProducts
	if err := r.db.QueryRow(ctx, countQuery, args).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE ` + activeProducts + `
		ORDER BY p.name, p.id
		LIMIT @limit OFFSET @offset
	`

	args["limit"] = page.PageSize
	args["offset"] = page.Offset()

	rows, err := r.db.Query(ctx, query, args)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.Product])
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan products: %w", err)
	}

	return products, total, nil
}

// FindActiveByID retrieves an active product by ID. Inactive products are
// reported as not found.
func (r *productRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = @id AND p.is_active = TRUE
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[domain.Product])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}

	return product, nil
}

// ListImages returns the product's images, primary image first.
func (r *productRepository) ListImages(ctx context.Context, productID uuid.UUID) ([]domain.ProductImage, error) {
	query := `
		SELECT id, product_id, url, alt, caption, sort_order, is_primary
		FROM product_images
		WHERE product_id = @product_id
		ORDER BY is_primary DESC, sort_order, id
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to list product images: %w", err)
	}

	images, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ProductImage])
	if err != nil {
		return nil, fmt.Errorf("failed to scan product images: %w", err)
	}

	return images, nil
}

// ListSpecifications returns the product's specifications by sort order.
func (r *productRepository) ListSpecifications(ctx context.Context, productID uuid.UUID) ([]domain.ProductSpecification, error) {
	query := `
		SELECT id, product_id, name, value, unit, sort_order
		FROM product_specifications
		WHERE product_id = @product_id
		ORDER BY sort_order, id
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"product_id": productID})
	if err != nil {
		return nil, fmt.Errorf("failed to list product specifications: %w", err)
	}

	specs, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.ProductSpecification])
	if err != nil {
		return nil, fmt.Errorf("failed to scan product specifications: %w", err)
	}

	return specs, nil
}
