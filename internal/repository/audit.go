package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditFilter narrows an audit query. Zero values match everything.
type AuditFilter struct {
	UserID       *uuid.UUID
	ResourceType string
	ResourceID   string
	Action       string
	From         *time.Time
	To           *time.Time
	Limit        int
	Offset       int
}

func (f AuditFilter) scope(q *gorm.DB) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	for _, eq := range [...]struct{ col, v string }{
		{"resource_type", f.ResourceType},
		{"resource_id", f.ResourceID},
		{"action", f.Action},
	} {
		if eq.v != "" {
			q = q.Where(eq.col+" = ?", eq.v)
		}
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	return q
}

type AuditRepo interface {
	ListAuditLogs(f AuditFilter) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	// PurgeAuditLogs deletes entries created before cutoff.
	PurgeAuditLogs(cutoff time.Time) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{db: db}
}

func (r *DBAuditRepo) ListAuditLogs(f AuditFilter) ([]audit.AuditLog, error) {
	logs := []audit.AuditLog{}
	q := r.db.Model(&audit.AuditLog{}).Scopes(f.scope).Order("created_at DESC, id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if f.Offset > 0 {
		q = q.Offset(f.Offset)
	}
	return logs, q.Find(&logs).Error
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) PurgeAuditLogs(cutoff time.Time) (int64, error) {
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{db: tx}
}
