package transport

import (
	"errors"
	"net/http"

	"customer-portal/internal/middleware"
	"customer-portal/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const registerMissingFields = "Missing required fields: email, firstName, lastName, customerCode"

// RegisterRequest represents the registration request payload. Email format
// is deliberately not checked; password is optional.
type RegisterRequest struct {
	Email        string `json:"email" validate:"required"`
	FirstName    string `json:"firstName" validate:"required"`
	LastName     string `json:"lastName" validate:"required"`
	CustomerCode string `json:"customerCode" validate:"required"`
	Password     string `json:"password,omitempty"`
}

// UserHandler handles HTTP requests for user operations
type UserHandler struct {
	userService service.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// RegisterRoutes registers all user routes. throttle guards the public
// registration endpoint; identityMiddleware guards the profile.
func (h *UserHandler) RegisterRoutes(r chi.Router, identityMiddleware, throttle func(http.Handler) http.Handler) {
	if throttle == nil {
		throttle = passthrough
	}

	r.Route("/users", func(r chi.Router) {
		r.With(throttle).Post("/register", h.Register)

		r.Group(func(r chi.Router) {
			r.Use(identityMiddleware)
			r.Get("/profile", h.Profile)
		})
	})
}

// Register handles user registration
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if errors.Is(err, middleware.ErrInvalidBody) {
			h.logger.Debug("Registration body rejected", zap.Error(err))
			middleware.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		h.logger.Debug("Registration validation failed", zap.Strings("missing_fields", middleware.MissingFields(err)))
		middleware.RespondWithError(w, http.StatusBadRequest, registerMissingFields)
		return
	}

	user, err := h.userService.Register(r.Context(), service.RegisterInput{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CustomerCode: req.CustomerCode,
		Password:     req.Password,
	})
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to register user")
		return
	}

	h.logger.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("customer_code", user.CustomerCode),
	)
	middleware.RespondWithData(w, http.StatusCreated, user, "User registered successfully")
}

// Profile returns the caller's own account and records the visit as a login.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		middleware.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userService.Profile(r.Context(), principal.EmailAddress())
	if err != nil {
		middleware.RespondWithAppError(w, h.logger, err, "Failed to fetch user profile")
		return
	}
	middleware.RespondWithData(w, http.StatusOK, user, "")
}
