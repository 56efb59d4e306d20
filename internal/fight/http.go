package fight

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/boxer"
	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// HTTPHandlers provides the fight endpoint.
type HTTPHandlers struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for matchmaking.
func NewHTTPHandlers(service *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		service: service,
		logger:  logger.With().Str("component", "fight_http").Logger(),
	}
}

// Fight handles GET /fight.
func (h *HTTPHandlers) Fight(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.service.Fight(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrInsufficientCompetitors):
			httperrors.RespondConflict(w, httperrors.ErrCodeInsufficientCompetitors, "there must be two boxers to start a fight")
		case errors.Is(err, boxer.ErrNotFound):
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "a staged boxer no longer exists")
		default:
			h.logger.Error().Err(err).Msg("fight failed")
			httperrors.RespondInternalError(w, "fight failed")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status": "success",
		"winner": outcome.Winner.Name,
		"fight":  outcome,
	})
}
