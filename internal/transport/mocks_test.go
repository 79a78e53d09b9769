package transport

import (
	"context"

	"customer-portal/internal/domain"
	"customer-portal/internal/service"

	"github.com/stretchr/testify/mock"
)

type mockCategoryService struct{ mock.Mock }

func (m *mockCategoryService) ListActive(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

type mockProductService struct{ mock.Mock }

func (m *mockProductService) List(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) (*domain.PaginatedResponse[domain.Product], error) {
	args := m.Called(ctx, filter, page)
	resp, _ := args.Get(0).(*domain.PaginatedResponse[domain.Product])
	return resp, args.Error(1)
}

func (m *mockProductService) Get(ctx context.Context, rawID string) (*domain.Product, error) {
	args := m.Called(ctx, rawID)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

type mockNewsService struct{ mock.Mock }

func (m *mockNewsService) List(ctx context.Context, page domain.PageRequest) (*domain.PaginatedResponse[domain.NewsItem], error) {
	args := m.Called(ctx, page)
	resp, _ := args.Get(0).(*domain.PaginatedResponse[domain.NewsItem])
	return resp, args.Error(1)
}

func (m *mockNewsService) Get(ctx context.Context, rawID string) (*domain.NewsItem, error) {
	args := m.Called(ctx, rawID)
	item, _ := args.Get(0).(*domain.NewsItem)
	return item, args.Error(1)
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) ListByCustomer(ctx context.Context, customerCode string, days int) ([]domain.Order, error) {
	args := m.Called(ctx, customerCode, days)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *mockOrderService) Get(ctx context.Context, rawID string) (*domain.Order, error) {
	args := m.Called(ctx, rawID)
	order, _ := args.Get(0).(*domain.Order)
	return order, args.Error(1)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserService) Profile(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

type mockContactService struct{ mock.Mock }

func (m *mockContactService) Submit(ctx context.Context, form service.ContactForm) error {
	return m.Called(ctx, form).Error(0)
}
