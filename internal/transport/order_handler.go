package transport

import (
	"net/http"

	"customer-portal/internal/middleware"
	"customer-portal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// OrderHandler serves order history. Every route requires an identity.
type OrderHandler struct {
	orderService service.OrderService
	logger       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// RegisterRoutes registers the order routes behind identityMiddleware
func (h *OrderHandler) RegisterRoutes(r chi.Router, identityMiddleware func(http.Handler) http.Handler) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(identityMiddleware)
		r.Get("/customer/{customerCode}", h.ListByCustomer)
		r.Get("/{id}", h.Get)
	})
}

// ListByCustomer handles GET /orders/customer/{customerCode}?days=
func (h *OrderHandler) ListByCustomer(w http.ResponseWriter, r *http.Request) {
	days := queryInt(r, "days", service.DefaultOrderWindowDays)

	orders, err := h.orderService.ListByCustomer(r.Context(), chi.URLParam(r, "customerCode"), days)
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch customer orders")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, orders, "")
}

// Get returns any order by id. Ownership is not checked against the caller.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch order")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, order, "")
}
