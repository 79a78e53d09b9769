package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"customer-portal/internal/assembler"
	"customer-portal/internal/domain"
	"customer-portal/internal/repository"

	"github.com/google/uuid"
)

// DefaultOrderWindowDays is the trailing window used when the caller does
// not ask for one.
const DefaultOrderWindowDays = 30

// MaxOrderWindowDays bounds the window so the cutoff stays a valid timestamp.
const MaxOrderWindowDays = 100 * 365

// OrderService defines the interface for order business logic
type OrderService interface {
	ListByCustomer(ctx context.Context, customerCode string, days int) ([]domain.Order, error)
	Get(ctx context.Context, rawID string) (*domain.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	plan      *assembler.Plan[domain.Order]
	now       func() time.Time
}

// NewOrderService creates a new instance of OrderService. Every order it
// returns carries its line items.
func NewOrderService(orderRepo repository.OrderRepository, parallelDependents bool) OrderService {
	s := &orderService{
		orderRepo: orderRepo,
		now:       time.Now,
	}
	s.plan = assembler.NewPlan(parallelDependents,
		assembler.Dependent[domain.Order]{Name: "items", Load: s.loadItems},
	)
	return s
}

func (s *orderService) loadItems(ctx context.Context, o *domain.Order) error {
	items, err := s.orderRepo.ListItems(ctx, o.ID)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.OrderItem{}
	}
	o.Items = items
	return nil
}

// ListByCustomer returns the customer's orders from the last days days,
// newest first. A negative window falls back to the default; an oversized
// one is capped at MaxOrderWindowDays.
func (s *orderService) ListByCustomer(ctx context.Context, customerCode string, days int) ([]domain.Order, error) {
	customerCode = strings.TrimSpace(customerCode)
	if customerCode == "" {
		return nil, domain.NewValidationError("Customer code is required")
	}
	if days < 0 {
		days = DefaultOrderWindowDays
	}
	if days > MaxOrderWindowDays {
		days = MaxOrderWindowDays
	}

	since := s.now().AddDate(0, 0, -days)
	orders, err := s.orderRepo.ListByCustomer(ctx, customerCode, since)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch customer orders", err)
	}

	if err := s.plan.RunAll(ctx, orders); err != nil {
		return nil, domain.NewStoreError("Failed to fetch customer orders", err)
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

// Get returns any order by id. The caller's customer code is not checked
// against the order's owner.
func (s *orderService) Get(ctx context.Context, rawID string) (*domain.Order, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, domain.NewValidationError("Order ID is required")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.NewNotFoundError("Order not found")
	}

	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domain.NewNotFoundError("Order not found")
		}
		return nil, domain.NewStoreError("Failed to fetch order", err)
	}

	if err := s.plan.Run(ctx, order); err != nil {
		return nil, domain.NewStoreError("Failed to fetch order", err)
	}

	return order, nil
}
