package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handlers groups every API handler mounted under /api.
type Handlers struct {
	Catalog *CatalogHandler
	News    *NewsHandler
	Orders  *OrderHandler
	Users   *UserHandler
	Contact *ContactHandler
}

// RegisterRoutes mounts the API. identityMiddleware protects orders and the
// profile; throttle, when non-nil, limits the public POST endpoints.
func RegisterRoutes(r chi.Router, h Handlers, identityMiddleware, throttle func(http.Handler) http.Handler) {
	r.Route("/api", func(r chi.Router) {
		h.Catalog.RegisterRoutes(r)
		h.News.RegisterRoutes(r)
		h.Orders.RegisterRoutes(r, identityMiddleware)
		h.Users.RegisterRoutes(r, identityMiddleware, throttle)
		h.Contact.RegisterRoutes(r, throttle)
	})
}
