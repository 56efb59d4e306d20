package boxer

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// HTTPHandlers provides REST endpoints for the boxer registry.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for registry endpoints.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "boxer_http").Logger(),
	}
}

// AddBoxer handles POST /add-boxer.
func (h *HTTPHandlers) AddBoxer(w http.ResponseWriter, r *http.Request) {
	var params NewBoxerParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}

	b, err := h.service.Create(r.Context(), params)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, map[string]any{"boxer": b})
}

// DeleteBoxer handles DELETE /delete-boxer/{id}.
func (h *HTTPHandlers) DeleteBoxer(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "boxer id must be an integer")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"deleted_id": id})
}

// GetByID handles GET /get-boxer-by-id/{id}.
func (h *HTTPHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "boxer id must be an integer")
		return
	}

	b, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"boxer": b})
}

// GetByName handles GET /get-boxer-by-name/{name}.
func (h *HTTPHandlers) GetByName(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "boxer name required")
		return
	}

	b, err := h.service.GetByName(r.Context(), name)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]any{"boxer": b})
}

func (h *HTTPHandlers) respondDomainError(w http.ResponseWriter, err error) {
	var vErr *ValidationError
	switch {
	case errors.As(err, &vErr):
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, vErr.Message, vErr.Field)
	case errors.Is(err, ErrNameTaken):
		httperrors.RespondConflict(w, httperrors.ErrCodeAlreadyExists, "a boxer with that name already exists")
	case errors.Is(err, ErrNotFound):
		httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "boxer not found")
	default:
		h.logger.Error().Err(err).Msg("registry operation failed")
		httperrors.RespondInternalError(w, "registry operation failed")
	}
}

func respondSuccess(w http.ResponseWriter, status int, payload map[string]any) {
	body := map[string]any{"status": "success"}
	for k, v := range payload {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
