package service

import (
	"context"
	"errors"
	"strings"

	"customer-portal/internal/assembler"
	"customer-portal/internal/domain"
	"customer-portal/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines the interface for product business logic
type ProductService interface {
	List(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) (*domain.PaginatedResponse[domain.Product], error)
	Get(ctx context.Context, rawID string) (*domain.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	plan        *assembler.Plan[domain.Product]
}

// NewProductService creates a new instance of ProductService. Every product
// it returns carries its images and specifications.
func NewProductService(productRepo repository.ProductRepository, parallelDependents bool) ProductService {
	s := &productService{productRepo: productRepo}
	s.plan = assembler.NewPlan(parallelDependents,
		assembler.Dependent[domain.Product]{Name: "images", Load: s.loadImages},
		assembler.Dependent[domain.Product]{Name: "specifications", Load: s.loadSpecifications},
	)
	return s
}

func (s *productService) loadImages(ctx context.Context, p *domain.Product) error {
	images, err := s.productRepo.ListImages(ctx, p.ID)
	if err != nil {
		return err
	}
	if images == nil {
		images = []domain.ProductImage{}
	}
	p.Images = images
	return nil
}

func (s *productService) loadSpecifications(ctx context.Context, p *domain.Product) error {
	specs, err := s.productRepo.ListSpecifications(ctx, p.ID)
	if err != nil {
		return err
	}
	if specs == nil {
		specs = []domain.ProductSpecification{}
	}
	p.Specifications = specs
	return nil
}

// List returns one page of active products ordered by name.
func (s *productService) List(ctx context.Context, filter domain.ProductFilter, page domain.PageRequest) (*domain.PaginatedResponse[domain.Product], error) {
	products, total, err := s.productRepo.ListActive(ctx, filter, page)
	if err != nil {
		return nil, domain.NewStoreError("Failed to fetch products", err)
	}

	if err := s.plan.RunAll(ctx, products); err != nil {
		return nil, domain.NewStoreError("Failed to fetch products", err)
	}

	return domain.NewPaginatedResponse(products, total, page), nil
}

// Get returns an active product with its owned collections.
func (s *productService) Get(ctx context.Context, rawID string) (*domain.Product, error) {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return nil, domain.NewValidationError("Product ID is required")
	}

	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, domain.NewNotFoundError("Product not found")
	}

	product, err := s.productRepo.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domain.NewNotFoundError("Product not found")
		}
		return nil, domain.NewStoreError("Failed to fetch product", err)
	}

	if err := s.plan.Run(ctx, product); err != nil {
		return nil, domain.NewStoreError("Failed to fetch product", err)
	}

	return product, nil
}
