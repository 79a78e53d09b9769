package transport

import (
	"net/http"

	"customer-portal/internal/domain"
	"customer-portal/internal/middleware"
	"customer-portal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CatalogHandler serves categories and products.
type CatalogHandler struct {
	categoryService service.CategoryService
	productService  service.ProductService
	logger          *zap.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(categoryService service.CategoryService, productService service.ProductService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		categoryService: categoryService,
		productService:  productService,
		logger:          logger,
	}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/categories", h.ListCategories)
	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{id}", h.GetProduct)
	})
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.ListActive(r.Context())
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch categories")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, categories, "")
}

// ListProducts handles GET /products?page=&pageSize=&categoryId=
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := queryUUID(r, "categoryId")
	if !ok {
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	page := domain.NewPageRequest(
		queryInt(r, "page", domain.DefaultPage),
		queryInt(r, "pageSize", domain.DefaultProductPageSize),
		domain.DefaultProductPageSize,
	)

	products, err := h.productService.List(r.Context(), domain.ProductFilter{CategoryID: categoryID}, page)
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch products")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, products, "")
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.productService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch product")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, product, "")
}
