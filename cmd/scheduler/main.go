// Command scheduler runs periodic maintenance outside the API process,
// for deployments that set CLEANUP_IN_API=false on their API replicas.
package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/config/db"
	"github.com/linskybing/clubhub/internal/cron"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	flush := logger.Init(config.LogLevel, config.LogFormat)
	defer flush()

	if err := db.Init(); err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}
	if err := db.AutoMigrate(db.DB); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	audit := application.NewAuditService(repository.NewRepositories(db.DB))
	cron.StartCleanupTask(ctx, audit, config.AuditRetention, 24*time.Hour)

	zap.L().Info("scheduler started", zap.Int("retention_days", config.AuditRetention))
	<-ctx.Done()
	zap.L().Info("shutdown signal")
}
