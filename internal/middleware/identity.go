package middleware

import (
	"context"
	"errors"
	"net/http"

	"customer-portal/internal/identity"

	"go.uber.org/zap"
)

type contextKey string

const principalKey contextKey = "principal"

// IdentityMiddleware decodes the gateway identity header and stores the
// principal in the request context. Requests without a usable identity are
// rejected with 401. A raw header value is accepted as the email only when
// allowRawFallback is set.
func IdentityMiddleware(header string, allowRawFallback bool, logger *zap.Logger) func(http.Handler) http.Handler {
	if header == "" {
		header = identity.DefaultHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, err := identity.Decode(r.Header.Get(header))
			if err != nil {
				logger.Debug("Identity rejected", zap.Error(err))
				if errors.Is(err, identity.ErrMissingHeader) {
					RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
				} else {
					RespondWithError(w, http.StatusUnauthorized, "Invalid user authentication")
				}
				return
			}

			if raw, ok := principal.(identity.RawEmailFallback); ok {
				if !allowRawFallback {
					logger.Warn("Unstructured identity header rejected", zap.String("path", r.URL.Path))
					RespondWithError(w, http.StatusUnauthorized, "Invalid user authentication")
					return
				}
				logger.Warn("Identity header is not a structured principal; using raw value as email",
					zap.String("email", raw.Email),
					zap.String("path", r.URL.Path),
				)
			}

			logger.Debug("User authenticated", zap.String("email", principal.EmailAddress()))

			ctx := context.WithValue(r.Context(), principalKey, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext returns the principal stored by IdentityMiddleware.
func PrincipalFromContext(ctx context.Context) (identity.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(identity.Principal)
	return principal, ok
}
