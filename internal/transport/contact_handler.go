package transport

import (
	"errors"
	"net/http"

	"customer-portal/internal/middleware"
	"customer-portal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const contactMissingFields = "Missing required fields: name, email, subject, message"

// ContactRequest represents a contact form submission. Phone is optional.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ContactHandler struct {
	contactService service.ContactService
	logger         *zap.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactService service.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// RegisterRoutes registers the contact route. Only POST is routed, so any
// other method falls through to the router's 405 handler.
func (h *ContactHandler) RegisterRoutes(r chi.Router, throttle func(http.Handler) http.Handler) {
	if throttle == nil {
		throttle = passthrough
	}
	r.With(throttle).Post("/contact", h.Submit)
}

func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if errors.Is(err, middleware.ErrInvalidBody) {
			h.logger.Debug("Contact form body rejected", zap.Error(err))
			middleware.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		h.logger.Debug("Contact form validation failed", zap.Strings("missing_fields", middleware.MissingFields(err)))
		middleware.RespondWithError(w, http.StatusBadRequest, contactMissingFields)
		return
	}

	err := h.contactService.Submit(r.Context(), service.ContactForm{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to submit contact form")
		return
	}

	middleware.RespondWithData(w, http.StatusOK, nil, "Contact form submitted successfully")
}
