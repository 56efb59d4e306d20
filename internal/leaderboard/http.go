package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/boxer"
	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// HTTPHandler exposes the leaderboard query endpoint.
type HTTPHandler struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandler constructs a leaderboard HTTP handler.
func NewHTTPHandler(svc *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{
		svc:    svc,
		logger: logger.With().Str("component", "leaderboard_http").Logger(),
	}
}

// HandleGet responds with the current leaderboard.
// Route: GET /leaderboard?sort=wins|win_pct&limit=N
func (h *HTTPHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	sortKey := r.URL.Query().Get("sort")
	if sortKey == "" {
		sortKey = boxer.SortByWins
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	entries, err := h.svc.Top(r.Context(), sortKey, limit)
	if err != nil {
		if errors.Is(err, boxer.ErrInvalidSortKey) {
			httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidSortKey, "sort must be 'wins' or 'win_pct'")
			return
		}
		h.logger.Error().Err(err).Str("sort", sortKey).Msg("leaderboard fetch failed")
		httperrors.RespondInternalError(w, "leaderboard fetch failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"status":       "success",
		"sort":         sortKey,
		"leaderboard":  entries,
		"retrieved_at": time.Now().UTC().Format(time.RFC3339),
	})
}
