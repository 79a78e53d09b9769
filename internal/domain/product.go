package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an active or retired catalog item. Images and
// Specifications are owned collections and are never nil once assembled.
type Product struct {
	ID               uuid.UUID              `json:"id" db:"id"`
	Name             string                 `json:"name" db:"name"`
	SKU              string                 `json:"sku" db:"sku"`
	Description      string                 `json:"description" db:"description"`
	ShortDescription string                 `json:"shortDescription" db:"short_description"`
	Price            float64                `json:"price" db:"price"`
	CategoryID       *uuid.UUID             `json:"categoryId,omitempty" db:"category_id"`
	CategoryName     *string                `json:"categoryName,omitempty" db:"category_name"`
	Images           []ProductImage         `json:"images" db:"-"`
	Specifications   []ProductSpecification `json:"specifications" db:"-"`
	IsActive         bool                   `json:"isActive" db:"is_active"`
	CreatedAt        time.Time              `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time              `json:"updatedAt" db:"updated_at"`
}

// ProductImage is ordered primary-first, then by SortOrder.
type ProductImage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	URL       string    `json:"url" db:"url"`
	Alt       string    `json:"alt" db:"alt"`
	Caption   *string   `json:"caption,omitempty" db:"caption"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	IsPrimary bool      `json:"isPrimary" db:"is_primary"`
}

type ProductSpecification struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Value     string    `json:"value" db:"value"`
	Unit      *string   `json:"unit,omitempty" db:"unit"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
}

// ProductFilter narrows a product listing. Only active products are ever listed.
type ProductFilter struct {
	CategoryID *uuid.UUID
}
