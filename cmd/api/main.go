package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/api/handlers"
	"github.com/linskybing/clubhub/internal/api/middleware"
	"github.com/linskybing/clubhub/internal/api/routes"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/config/db"
	"github.com/linskybing/clubhub/internal/cron"
	"github.com/linskybing/clubhub/internal/metrics"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/logger"
	"github.com/linskybing/clubhub/pkg/storage"
	"go.uber.org/zap"
)

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()
	flush := logger.Init(config.LogLevel, config.LogFormat)
	defer flush()
	log := zap.L()

	// Initialize JWT signing key
	middleware.Init()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(); err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(db.DB); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}
	repos := repository.NewRepositories(db.DB)

	var cache session.Cache = session.NopCache{}
	if config.RedisAddr != "" {
		client, err := session.NewRedisClient(ctx, config.RedisAddr, config.RedisPassword, config.RedisDB)
		if err != nil {
			log.Warn("redis unavailable, profile cache disabled", zap.Error(err))
		} else {
			defer client.Close()
			cache = session.NewRedisCache(client, config.ProfileTTL)
		}
	}
	sessions := session.NewJWTProvider(repos.User, cache)
	defer metrics.ObserveSessions(sessions)()

	// Uploads stay disabled when MinIO is unreachable.
	var store storage.ObjectStore
	if minioStore, err := storage.NewMinioStore(ctx, storage.Options{
		Endpoint:  config.MinioEndpoint,
		AccessKey: config.MinioAccessKey,
		SecretKey: config.MinioSecretKey,
		Bucket:    config.MinioBucket,
		UseSSL:    config.MinioUseSSL,
	}); err != nil {
		log.Warn("object storage unavailable, uploads disabled", zap.Error(err))
	} else {
		store = minioStore
	}

	services := application.New(repos, sessions, store)
	if config.CleanupInAPI {
		cron.StartCleanupTask(ctx, services.Audit, config.AuditRetention, 24*time.Hour)
	}

	if config.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.NewRouter()
	routes.RegisterRoutes(router, handlers.New(services, sessions), repos)

	srv := &http.Server{
		Addr:              ":" + config.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting API server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error("failed to start", zap.Error(err))
		flush()
		os.Exit(1)
	case <-ctx.Done():
		log.Info("shutdown signal")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
}
