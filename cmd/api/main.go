package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/BruksfildServices01/booksmart-api/internal/audit"
	"github.com/BruksfildServices01/booksmart-api/internal/clock"
	"github.com/BruksfildServices01/booksmart-api/internal/config"
	dbpkg "github.com/BruksfildServices01/booksmart-api/internal/db"
	"github.com/BruksfildServices01/booksmart-api/internal/domain/image"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/cache"
	"github.com/BruksfildServices01/booksmart-api/internal/infra/storage"
	"github.com/BruksfildServices01/booksmart-api/internal/logging"
	"github.com/BruksfildServices01/booksmart-api/internal/routes"
	"github.com/BruksfildServices01/booksmart-api/internal/validators"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logging.Setup(cfg.Env, cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	rdb, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, cache and rate limit disabled")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	var host image.Host = storage.DisabledHost{}
	if cfg.S3Enabled() {
		host = storage.NewS3Host(cfg)
	} else {
		log.Warn().Msg("S3_BUCKET not set, image uploads disabled")
	}

	validators.Register()

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	defer auditDispatcher.Close()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.MaxMultipartMemory = 16 << 20

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Host:   host,
		Redis:  rdb,
		Audit:  auditDispatcher,
		Clock:  clock.System{},
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
