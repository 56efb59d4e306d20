package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// HTTPHandlers provides the operator login endpoint.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for auth endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "auth_http").Logger(),
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /auth/login.
func (h *HTTPHandlers) Login(w http.ResponseWriter, r *http.Request) {
	if !h.service.Enabled() {
		httperrors.RespondError(w, http.StatusNotImplemented, httperrors.ErrCodeServiceUnavailable, "authentication is not configured")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.Password == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "password is required", "password")
		return
	}

	token, expiresAt, err := h.service.Login(req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httperrors.RespondUnauthorized(w, httperrors.ErrCodeLoginFailed, "invalid credentials")
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		httperrors.RespondInternalError(w, "login failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":     "success",
		"token":      token,
		"expires_at": expiresAt.UTC().Format(time.RFC3339),
	})
}
