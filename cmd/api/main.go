// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gatekeep-app/gatekeep/internal/config"
	"github.com/gatekeep-app/gatekeep/internal/core"
	"github.com/gatekeep-app/gatekeep/internal/creator"
	"github.com/gatekeep-app/gatekeep/internal/dashboard"
	"github.com/gatekeep-app/gatekeep/internal/gate"
	"github.com/gatekeep-app/gatekeep/internal/health"
	"github.com/gatekeep-app/gatekeep/internal/lead"
	"github.com/gatekeep-app/gatekeep/internal/link"
	"github.com/gatekeep-app/gatekeep/internal/middleware"
	"github.com/gatekeep-app/gatekeep/internal/seed"
	"github.com/gatekeep-app/gatekeep/internal/server"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	creatorRepo := creator.NewRepository(db.DB)
	creatorSvc := creator.NewService(creatorRepo)
	creatorHandler := creator.NewHandler(creatorSvc)

	linkRepo := link.NewRepository(db.DB)
	linkSvc := link.NewService(linkRepo, creatorRepo, cfg.Gate.PublicBaseURL)
	linkHandler := link.NewHandler(linkSvc)

	leadRepo := lead.NewRepository(db.DB)
	leadSvc := lead.NewService(leadRepo)
	leadHandler := lead.NewHandler(leadSvc)

	dashboardSvc := dashboard.NewService(linkSvc, leadSvc)
	dashboardHandler := dashboard.NewHandler(dashboardSvc)

	unlockFlags := gate.NewRedisFlags(redis.Client, cfg.Gate.SessionTTL)
	gateSvc := gate.NewService(
		linkSvc,
		leadSvc,
		creatorSvc,
		unlockFlags,
		cfg.Gate.UnlockDelay,
	)
	gateHandler := gate.NewHandler(gateSvc)

	if cfg.Seed.Demo {
		seeder := seed.New(creatorRepo, linkRepo, leadRepo, logger)
		if err := seeder.Run(ctx); err != nil {
			return err
		}
	}

	healthHandler := health.NewHandler(db, redis)

	srv := server.New(server.Config{
		ServerConfig: cfg.Server,
		Notifier:     healthHandler,
		Logger:       logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			KeyFunc:  middleware.KeyByIP,
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	router.Route("/v1", func(r chi.Router) {
		creatorHandler.RegisterRoutes(r)
		linkHandler.RegisterRoutes(r)
		leadHandler.RegisterRoutes(r)
		dashboardHandler.RegisterRoutes(r)
	})

	secureCookies := cfg.App.Environment == "production"
	router.Group(func(r chi.Router) {
		r.Use(middleware.VisitorSession(cfg.Gate.SessionCookie, secureCookies))
		// Tighter limit on the public gate: unlock submissions write a lead
		// per request, so one session gets a short leash.
		r.Use(
			middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
				Limit:    middleware.PerSecond(5, 10),
				KeyFunc:  middleware.KeyBySession,
				FailOpen: true,
			}).Handler,
		)
		gateHandler.RegisterRoutes(r)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
