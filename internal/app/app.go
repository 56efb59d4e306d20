package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/boxlab/boxing-platform/internal/auth"
	"github.com/boxlab/boxing-platform/internal/boxer"
	"github.com/boxlab/boxing-platform/internal/config"
	"github.com/boxlab/boxing-platform/internal/db/repository"
	"github.com/boxlab/boxing-platform/internal/events"
	"github.com/boxlab/boxing-platform/internal/fight"
	"github.com/boxlab/boxing-platform/internal/fight/external"
	"github.com/boxlab/boxing-platform/internal/leaderboard"
	"github.com/boxlab/boxing-platform/internal/logging"
	"github.com/boxlab/boxing-platform/internal/ring"
	"github.com/boxlab/boxing-platform/internal/server"
	ws "github.com/boxlab/boxing-platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server

	broadcaster *events.Broadcaster
	bgCancels   []context.CancelFunc
}

// New bootstraps config, logger, Postgres, optional Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		})
	} else {
		logger.Warn().Msg("REDIS_ADDR not set; leaderboard cache and event fan-out disabled")
	}

	boxerRepo := repository.NewBoxerRepository(pool)
	stagingRing := ring.New()

	leaderboardSvc := leaderboard.NewService(boxerRepo, redisClient, logger, leaderboard.ServiceOptions{
		CacheTTL:     cfg.Leaderboard.CacheTTL,
		DefaultLimit: cfg.Leaderboard.DefaultLimit,
	})

	boxerSvc := boxer.NewService(boxerRepo, stagingRing, leaderboardSvc, logger)

	var drawSource fight.Source = fight.NewPseudoSource(0, 0)
	if cfg.Random.OrgURL != "" {
		randomOrg := external.NewRandomOrgClient(cfg.Random.OrgURL, &http.Client{Timeout: cfg.Random.HTTPTimeout})
		drawSource = fight.NewFallbackSource(randomOrg, drawSource, logger)
	}

	publisher := events.NewPublisher(redisClient, "", logger)
	fightSvc := fight.NewService(stagingRing, boxerRepo, drawSource, publisher, leaderboardSvc, logger)

	authSvc := auth.NewService(auth.Config{
		Secret:       []byte(cfg.Security.JWTSecret),
		PasswordHash: cfg.Security.AdminPasswordHash,
		Issuer:       cfg.Name,
	})
	if !authSvc.Enabled() {
		logger.Warn().Msg("JWT_SECRET or ADMIN_PASSWORD_HASH not configured; mutating endpoints are open")
	}

	hub := ws.NewHub(logger)
	wsHandler := events.NewWSHandler(hub, logger)
	broadcaster := events.NewBroadcaster(redisClient, hub, "", logger)

	apiServer := server.NewHTTPServer(cfg, logger, pool, redisClient, server.Handlers{
		Boxer:       boxer.NewHTTPHandlers(boxerSvc, logger),
		Ring:        ring.NewHTTPHandlers(stagingRing, boxerSvc, logger),
		Fight:       fight.NewHTTPHandlers(fightSvc, logger),
		Leaderboard: leaderboard.NewHTTPHandler(leaderboardSvc, logger),
		Auth:        auth.NewHTTPHandlers(authSvc, logger),
		AuthSvc:     authSvc,
		EventsWS:    wsHandler.HandleWebSocket,
	})

	return &Application{
		cfg:         cfg,
		logger:      logger,
		pool:        pool,
		redis:       redisClient,
		http:        apiServer,
		broadcaster: broadcaster,
		bgCancels:   make([]context.CancelFunc, 0, 1),
	}, nil
}

// Run starts the HTTP server and waits for termination signals.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	a.startBackgroundWorkers(ctx)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	for _, cancel := range a.bgCancels {
		cancel()
	}

	a.pool.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error().Err(err).Msg("redis shutdown error")
		}
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}

func (a *Application) startBackgroundWorkers(ctx context.Context) {
	if a.broadcaster != nil {
		bgCtx, cancel := context.WithCancel(ctx)
		a.bgCancels = append(a.bgCancels, cancel)
		go func() {
			if err := a.broadcaster.Run(bgCtx); err != nil && err != context.Canceled {
				a.logger.Warn().Err(err).Msg("event broadcaster stopped")
			}
		}()
	}
}
