package transport

import (
	"net/http"

	"customer-portal/internal/domain"
	"customer-portal/internal/middleware"
	"customer-portal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewsHandler serves the public news feed.
type NewsHandler struct {
	newsService service.NewsService
	logger      *zap.Logger
}

// NewNewsHandler creates a new NewsHandler
func NewNewsHandler(newsService service.NewsService, logger *zap.Logger) *NewsHandler {
	return &NewsHandler{
		newsService: newsService,
		logger:      logger,
	}
}

// RegisterRoutes registers the news routes
func (h *NewsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/news", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
	})
}

func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	page := domain.NewPageRequest(
		queryInt(r, "page", domain.DefaultPage),
		queryInt(r, "pageSize", domain.DefaultNewsPageSize),
		domain.DefaultNewsPageSize,
	)

	news, err := h.newsService.List(r.Context(), page)
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch news items")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, news, "")
}

func (h *NewsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.newsService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch news item")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, item, "")
}
