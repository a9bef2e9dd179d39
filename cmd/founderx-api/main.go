package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"FounderX/internals/auth"
	"FounderX/internals/config"
	"FounderX/internals/handlers"
	"FounderX/internals/handlers/middleware"
	"FounderX/internals/logger"
	"FounderX/internals/metrics"
	"FounderX/internals/security"
	"FounderX/internals/startups"
	"FounderX/internals/storage"
)

func main() {
	cfg := config.MustLoad()
	log := logger.Init(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	log.Info().Str("addr", cfg.Addr()).Msg("config loaded")

	db, err := storage.Open(cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.Ping(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal().Err(err).Msg("database unreachable")
	}

	if err := storage.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}
	log.Info().Msg("database ready")

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	collector := metrics.NewCollector(reg)

	authSvc := auth.NewService(
		storage.NewUserRepo(db),
		security.NewBcryptHasher(cfg.Auth.BcryptCost),
		security.NewJWTSigner(cfg.Auth.JWTSecret),
		auth.Config{AccessTokenTTL: cfg.Auth.AccessTokenTTL},
	)
	startupSvc := startups.NewService(storage.NewStartupRepo(db))

	limiter, err := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerMinute: cfg.RateLimit.RequestsPerMinute,
		Burst:             cfg.RateLimit.Burst,
		MaxClients:        cfg.RateLimit.MaxClients,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build rate limiter")
	}

	router, err := handlers.NewRouter(handlers.Deps{
		Auth:        authSvc,
		Startups:    startupSvc,
		Health:      db,
		Metrics:     collector,
		Gatherer:    reg,
		RateLimiter: limiter,
		Logger:      log,
		CORSOrigins: cfg.CORS.AllowedOrigins,

		TrustProxyHeaders: cfg.Server.TrustProxyHeaders,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-done
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
