package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// Require wraps a handler with operator token validation. With auth
// disabled the handler passes through untouched, which keeps the smoke-test
// flow working on a bare deployment.
func Require(authSvc *Service, logger zerolog.Logger, next http.HandlerFunc) http.HandlerFunc {
	if authSvc == nil || !authSvc.Enabled() {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeAuthenticationRequired, "Authentication required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid authorization header")
			return
		}

		if _, err := authSvc.ValidateToken(parts[1]); err != nil {
			logger.Warn().Err(err).Msg("token validation failed")
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r)
	}
}
