package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/auth"
	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/config"
	"github.com/boxlab/boxing-platform/internal/fight"
	"github.com/boxlab/boxing-platform/internal/leaderboard"
	"github.com/boxlab/boxing-platform/internal/ring"
	httperrors "github.com/boxlab/boxing-platform/pkg/http/errors"
)

// Handlers bundles the per-domain HTTP handlers mounted on the server.
type Handlers struct {
	Boxer       *boxer.HTTPHandlers
	Ring        *ring.HTTPHandlers
	Fight       *fight.HTTPHandlers
	Leaderboard *leaderboard.HTTPHandler
	Auth        *auth.HTTPHandlers
	AuthSvc     *auth.Service
	EventsWS    http.HandlerFunc
}

// NewHTTPServer wires all routes for the API service. The endpoint paths
// match the historical client surface; mutating routes go through the
// operator-token middleware when auth is configured.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client, h Handlers) *http.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "service is healthy"})
	})

	mux.HandleFunc("GET /db-check", func(w http.ResponseWriter, r *http.Request) {
		if err := pingDependencies(r.Context(), pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondServiceUnavailable(w, httperrors.ErrCodeUpstreamError, "database check failed")
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "success", "message": "database connection is healthy"})
	})

	mux.Handle("GET /metrics", promhttp.Handler())

	guard := func(next http.HandlerFunc) http.HandlerFunc {
		return auth.Require(h.AuthSvc, logger, next)
	}

	// Registry
	mux.HandleFunc("POST /add-boxer", guard(h.Boxer.AddBoxer))
	mux.HandleFunc("DELETE /delete-boxer/{id}", guard(h.Boxer.DeleteBoxer))
	mux.HandleFunc("GET /get-boxer-by-id/{id}", h.Boxer.GetByID)
	mux.HandleFunc("GET /get-boxer-by-name/{name}", h.Boxer.GetByName)
	mux.HandleFunc("GET /leaderboard", h.Leaderboard.HandleGet)

	// Ring
	mux.HandleFunc("POST /enter-ring", guard(h.Ring.EnterRing))
	mux.HandleFunc("GET /get-boxers", h.Ring.GetBoxers)
	mux.HandleFunc("GET /clear-boxers", guard(h.Ring.ClearBoxers))

	// Matchmaker
	mux.HandleFunc("GET /fight", guard(h.Fight.Fight))

	// Auth
	if h.Auth != nil {
		mux.HandleFunc("POST /auth/login", h.Auth.Login)
	}

	// Event stream
	if h.EventsWS != nil {
		mux.HandleFunc("GET /ws/events", h.EventsWS)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if redisClient != nil {
		if err := redisClient.Ping(ctx).Err(); err != nil {
			return err
		}
	}
	return nil
}
