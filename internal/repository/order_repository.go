package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-portal/internal/database"
	"customer-portal/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

const orderColumns = `
	id, order_number, customer_code, customer_name, order_date, total_amount, status,
	shipping_street, shipping_city, shipping_state, shipping_zip_code, shipping_country,
	billing_street, billing_city, billing_state, billing_zip_code, billing_country,
	notes, created_at, updated_at`

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	ListByCustomer(ctx context.Context, customerCode string, since time.Time) ([]domain.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error)
}

type orderRepository struct {
	db database.Querier
}

// NewOrderRepository creates a new instance of OrderRepository
func NewOrderRepository(db database.Querier) OrderRepository {
	return &orderRepository{db: db}
}

// scanOrder folds the flattened address columns into Address values.
func scanOrder(row pgx.CollectableRow) (domain.Order, error) {
	var o domain.Order
	var status string
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerCode,
		&o.CustomerName,
		&o.OrderDate,
		&o.TotalAmount,
		&status,
		&o.ShippingAddress.Street,
		&o.ShippingAddress.City,
		&o.ShippingAddress.State,
		&o.ShippingAddress.ZipCode,
		&o.ShippingAddress.Country,
		&o.BillingAddress.Street,
		&o.BillingAddress.City,
		&o.BillingAddress.State,
		&o.BillingAddress.ZipCode,
		&o.BillingAddress.Country,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return o, err
	}

	o.Status = domain.OrderStatus(status)
	if !o.Status.Valid() {
		return o, fmt.Errorf("unknown order status %q for order %s", status, o.OrderNumber)
	}
	return o, nil
}

// ListByCustomer returns the customer's orders placed at or after since,
// newest first. Line items are not loaded.
func (r *orderRepository) ListByCustomer(ctx context.Context, customerCode string, since time.Time) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE customer_code = @customer_code AND order_date >= @since
		ORDER BY order_date DESC, id
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{
		"customer_code": customerCode,
		"since":         since,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders, err := pgx.CollectRows(rows, scanOrder)
	if err != nil {
		return nil, fmt.Errorf("failed to scan orders: %w", err)
	}

	return orders, nil
}

// FindByID retrieves an order by ID regardless of which customer owns it.
func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = @id
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to find order by ID: %w", err)
	}

	order, err := pgx.CollectExactlyOneRow(rows, scanOrder)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	return &order, nil
}

// ListItems returns the order's line items ordered by product name.
func (r *orderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, product_name, product_sku, quantity, unit_price, total_price
		FROM order_items
		WHERE order_id = @order_id
		ORDER BY product_name, id
	`

	rows, err := r.db.Query(ctx, query, pgx.NamedArgs{"order_id": orderID})
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[domain.OrderItem])
	if err != nil {
		return nil, fmt.Errorf("failed to scan order items: %w", err)
	}

	return items, nil
}
