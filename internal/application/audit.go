package application

import (
	"time"

	"github.com/linskybing/clubhub/internal/domain/audit"
	"github.com/linskybing/clubhub/internal/metrics"
	"github.com/linskybing/clubhub/internal/repository"
	"go.uber.org/zap"
)

const (
	defaultAuditLimit = 100
	maxAuditLimit     = 1000
)

type AuditService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{Repos: repos, Now: time.Now}
}

// QueryAuditLogs returns matching entries, newest first. The page size
// defaults to 100 and is capped at 1000.
func (s *AuditService) QueryAuditLogs(f repository.AuditFilter) ([]audit.AuditLog, error) {
	switch {
	case f.Limit <= 0:
		f.Limit = defaultAuditLimit
	case f.Limit > maxAuditLimit:
		f.Limit = maxAuditLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.Repos.Audit.ListAuditLogs(f)
}

// CleanupOldLogs purges entries older than days and returns how many went.
func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	cutoff := s.Now().AddDate(0, 0, -days)
	n, err := s.Repos.Audit.PurgeAuditLogs(cutoff)
	if err != nil {
		return 0, err
	}
	metrics.AuditLogsPurged.Add(float64(n))
	if n > 0 {
		zap.L().Info("audit logs purged", zap.Int64("rows", n), zap.Time("cutoff", cutoff))
	}
	return n, nil
}
