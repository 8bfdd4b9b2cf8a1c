package cron

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Cleaner purges audit entries older than the given number of days.
type Cleaner interface {
	CleanupOldLogs(days int) (int64, error)
}

// StartCleanupTask runs the audit cleanup once at startup and then every
// interval until ctx is done.
func StartCleanupTask(ctx context.Context, cleaner Cleaner, retentionDays int, interval time.Duration) {
	go func() {
		zap.L().Info("starting background cleanup task", zap.Int("retention_days", retentionDays))
		runCleanup(cleaner, retentionDays)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runCleanup(cleaner, retentionDays)
			}
		}
	}()
}

func runCleanup(cleaner Cleaner, retentionDays int) {
	n, err := cleaner.CleanupOldLogs(retentionDays)
	if err != nil {
		zap.L().Warn("failed to cleanup old audit logs", zap.Error(err))
		return
	}
	zap.L().Info("audit log cleanup completed", zap.Int64("deleted", n))
}
