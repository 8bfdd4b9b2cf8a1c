package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/domain/audit"
	"github.com/linskybing/clubhub/internal/repository"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// LogAuditWithConsole records a change in the background. Request fields
// are read before the goroutine starts since gin reuses the context.
var LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repository.AuditRepo) {
	entry := NewAuditEntry(c, action, resourceType, resourceID, oldData, newData, msg)

	go func() {
		if err := repos.CreateAuditLog(entry); err != nil {
			zap.L().Warn("audit log write failed",
				zap.String("action", action),
				zap.String("resource_type", resourceType),
				zap.String("resource_id", resourceID),
				zap.Error(err))
		}
	}()
}

// NewAuditEntry builds an audit row for the caller of c. A signed-out
// caller leaves the user id empty.
func NewAuditEntry(c *gin.Context, action, resourceType, resourceID string, before, after interface{}, msg string) *audit.AuditLog {
	userID, _ := GetUserIDFromContext(c)
	entry := &audit.AuditLog{
		UserID:       userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		OldData:      snapshot(before),
		NewData:      snapshot(after),
		Description:  msg,
	}
	if c.Request != nil {
		entry.IPAddress = c.ClientIP()
		entry.UserAgent = c.Request.UserAgent()
	}
	return entry
}

func snapshot(v interface{}) datatypes.JSON {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		zap.L().Warn("audit snapshot marshal failed", zap.Error(err))
		return nil
	}
	return datatypes.JSON(b)
}
