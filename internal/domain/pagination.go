package domain

import "math"

const (
	DefaultPage            = 1
	DefaultNewsPageSize    = 10
	DefaultProductPageSize = 20
	MaxPageSize            = 100

	// MaxPage keeps (page-1)*pageSize within int for any allowed pageSize.
	MaxPage = math.MaxInt / MaxPageSize
)

// PageRequest is a normalized page/pageSize pair.
type PageRequest struct {
	Page     int
	PageSize int
}

// NewPageRequest clamps page to [1, MaxPage] and replaces a non-positive
// pageSize with defaultSize. pageSize is capped at MaxPageSize.
func NewPageRequest(page, pageSize, defaultSize int) PageRequest {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return PageRequest{Page: page, PageSize: pageSize}
}

// Offset is the number of rows skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// PaginatedResponse is one page of T. TotalPages is derived from the count
// query, not from len(Items).
type PaginatedResponse[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

func NewPaginatedResponse[T any](items []T, totalCount int, req PageRequest) *PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return &PaginatedResponse[T]{
		Items:      items,
		TotalCount: totalCount,
		Page:       req.Page,
		PageSize:   req.PageSize,
		TotalPages: TotalPages(totalCount, req.PageSize),
	}
}

// TotalPages is ceil(totalCount / pageSize).
func TotalPages(totalCount, pageSize int) int {
	if pageSize <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + pageSize - 1) / pageSize
}
