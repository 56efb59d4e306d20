package ring

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/metrics"
	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// Registry resolves staged ids back to boxer snapshots.
type Registry interface {
	GetByID(ctx context.Context, id int64) (boxer.Boxer, error)
	GetByName(ctx context.Context, name string) (boxer.Boxer, error)
}

// HTTPHandlers provides REST endpoints for ring operations.
type HTTPHandlers struct {
	ring     *Ring
	registry Registry
	logger   zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for ring endpoints.
func NewHTTPHandlers(ring *Ring, registry Registry, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		ring:     ring,
		registry: registry,
		logger:   logger.With().Str("component", "ring_http").Logger(),
	}
}

// EnterRingRequest identifies the boxer to stage, by id or by name.
type EnterRingRequest struct {
	BoxerID int64  `json:"boxer_id"`
	Name    string `json:"name"`
}

// EnterRing handles POST /enter-ring.
func (h *HTTPHandlers) EnterRing(w http.ResponseWriter, r *http.Request) {
	var req EnterRingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httperrors.RespondBadRequest(w, httperrors.ErrCodeInvalidRequest, "invalid JSON payload")
		return
	}
	if req.BoxerID == 0 && req.Name == "" {
		httperrors.RespondValidationError(w, httperrors.ErrCodeValidationFailed, "boxer_id or name required", "boxer_id")
		return
	}

	var (
		b   boxer.Boxer
		err error
	)
	if req.BoxerID != 0 {
		b, err = h.registry.GetByID(r.Context(), req.BoxerID)
	} else {
		b, err = h.registry.GetByName(r.Context(), req.Name)
	}
	if err != nil {
		if errors.Is(err, boxer.ErrNotFound) {
			httperrors.RespondNotFound(w, httperrors.ErrCodeNotFound, "boxer not found")
			return
		}
		h.logger.Error().Err(err).Msg("boxer lookup failed")
		httperrors.RespondInternalError(w, "boxer lookup failed")
		return
	}

	if err := h.ring.Enter(b.ID); err != nil {
		switch {
		case errors.Is(err, ErrRingFull):
			httperrors.RespondConflict(w, httperrors.ErrCodeRingFull, "ring is full, cannot add more boxers")
		case errors.Is(err, ErrAlreadyInRing):
			httperrors.RespondConflict(w, httperrors.ErrCodeAlreadyInRing, "boxer already in ring")
		default:
			httperrors.RespondInternalError(w, "enter ring failed")
		}
		return
	}

	metrics.RingEntries.Inc()
	h.logger.Info().Int64("boxer_id", b.ID).Str("name", b.Name).Msg("boxer entered ring")
	respondSuccess(w, http.StatusOK, map[string]any{"boxer": b, "occupants": h.ring.Len()})
}

// GetBoxers handles GET /get-boxers: current occupants in insertion order.
func (h *HTTPHandlers) GetBoxers(w http.ResponseWriter, r *http.Request) {
	ids := h.ring.Occupants()
	boxers := make([]boxer.Boxer, 0, len(ids))
	for _, id := range ids {
		b, err := h.registry.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, boxer.ErrNotFound) {
				// Deleted between staging and listing; eviction races are benign.
				continue
			}
			h.logger.Error().Err(err).Int64("boxer_id", id).Msg("occupant lookup failed")
			httperrors.RespondInternalError(w, "occupant lookup failed")
			return
		}
		boxers = append(boxers, b)
	}

	respondSuccess(w, http.StatusOK, map[string]any{"boxers": boxers})
}

// ClearBoxers handles GET /clear-boxers. Idempotent.
func (h *HTTPHandlers) ClearBoxers(w http.ResponseWriter, r *http.Request) {
	h.ring.Clear()
	h.logger.Info().Msg("ring cleared")
	respondSuccess(w, http.StatusOK, map[string]any{"message": "ring cleared"})
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
