package service

import (
	"context"
	"sync"
	"time"

	"customer-portal/internal/domain"
	"customer-portal/internal/repository"

	"github.com/google/uuid"
)

type mockCategoryRepository struct {
	categories []domain.Category
	err        error
}

func (m *mockCategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	return m.categories, m.err
}

type mockNewsRepository struct {
	items    []domain.NewsItem
	total    int
	err      error
	lastPage domain.PageRequest
	lookups  int
}

func (m *mockNewsRepository) ListVisible(ctx context.Context, page domain.PageRequest) ([]domain.NewsItem, int, error) {
	m.lastPage = page
	return m.items, m.total, m.err
}

func (m *mockNewsRepository) FindVisibleByID(ctx context.Context, id uuid.UUID) (*domain.NewsItem, error) {
	m.lookups++
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, repository.ErrNewsNotFound
}

type mockProductRepository struct {
	mu       sync.Mutex
	products []domain.Product
	total    int
	images   map[uuid.UUID][]domain.ProductImage
	specs    map[uuid.UUID][]domain.ProductSpecification
	listErr  error
	imageErr error
	calls    []string
}

func (m *mockProductRepository) record(call string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, call)
}

func (m *mockProductRepository) ListActive(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) ([]domain.Product, int, error) {
	m.record("list")
	if m.listErr != nil {
		return nil, 0, m.listErr
	}
	out := make([]domain.Product, len(m.products))
	copy(out, m.products)
	return out, m.total, nil
}

func (m *mockProductRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	m.record("find")
	for _, p := range m.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) ListImages(ctx context.Context, productID uuid.UUID) ([]domain.ProductImage, error) {
	m.record("images")
	if m.imageErr != nil {
		return nil, m.imageErr
	}
	return m.images[productID], nil
}

func (m *mockProductRepository) ListSpecifications(ctx context.Context, productID uuid.UUID) ([]domain.ProductSpecification, error) {
	m.record("specifications")
	return m.specs[productID], nil
}

type mockOrderRepository struct {
	orders    []domain.Order
	items     map[uuid.UUID][]domain.OrderItem
	err       error
	lastCode  string
	lastSince time.Time
}

func (m *mockOrderRepository) ListByCustomer(ctx context.Context, customerCode string, since time.Time) ([]domain.Order, error) {
	m.lastCode = customerCode
	m.lastSince = since
	if m.err != nil {
		return nil, m.err
	}
	var out []domain.Order
	for _, o := range m.orders {
		if o.CustomerCode == customerCode && !o.OrderDate.Before(since) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, o := range m.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepository) ListItems(ctx context.Context, orderID uuid.UUID) ([]domain.OrderItem, error) {
	return m.items[orderID], nil
}

type mockUserRepository struct {
	users map[string]*domain.User
	clock time.Time

	// createErr replaces the result of Create, e.g. to simulate a race that
	// slips past the pre-check.
	createErr error
	findErr   error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{
		users: make(map[string]*domain.User),
		clock: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	if _, exists := m.users[user.Email]; exists {
		return repository.ErrUserAlreadyExists
	}
	user.ID = uuid.New()
	user.CreatedAt = m.clock
	stored := *user
	m.users[user.Email] = &stored
	return nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	user, exists := m.users[email]
	if !exists {
		return nil, repository.ErrUserNotFound
	}
	found := *user
	return &found, nil
}

func (m *mockUserRepository) TouchLastLogin(ctx context.Context, id uuid.UUID) (time.Time, error) {
	for _, u := range m.users {
		if u.ID == id {
			m.clock = m.clock.Add(time.Second)
			stamp := m.clock
			u.LastLoginAt = &stamp
			return stamp, nil
		}
	}
	return time.Time{}, repository.ErrUserNotFound
}
