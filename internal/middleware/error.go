package middleware

import (
	"encoding/json"
	"net/http"

	"customer-portal/internal/domain"

	"go.uber.org/zap"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithData sends a success envelope. message may be empty.
func RespondWithData(w http.ResponseWriter, statusCode int, data any, message string) {
	RespondWithJSON(w, statusCode, Envelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// RespondWithError sends a failure envelope. It never carries data.
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, Envelope{
		Success: false,
		Error:   message,
	})
}

// RespondWithAppError renders err as a failure envelope. A *domain.Error
// selects the status and user-visible message; anything else is a 500 with
// fallback as the message. Internal detail only goes to the log.
func RespondWithAppError(w http.ResponseWriter, logger *zap.Logger, err error, fallback string) {
	appErr, ok := domain.AsError(err)
	if !ok {
		logger.Error(fallback, zap.Error(err))
		RespondWithError(w, http.StatusInternalServerError, fallback)
		return
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		logger.Error(appErr.Message, zap.Error(appErr.Err))
	} else {
		logger.Debug("Request rejected",
			zap.Int("status", status),
			zap.String("reason", appErr.Message),
		)
	}

	RespondWithError(w, status, appErr.Message)
}

// NotFoundHandler renders unknown routes as a failure envelope.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, http.StatusNotFound, "Not found")
}

// MethodNotAllowedHandler renders a known route hit with the wrong method.
func MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	RespondWithError(w, http.StatusMethodNotAllowed, domain.NewMethodNotAllowedError().Message)
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
