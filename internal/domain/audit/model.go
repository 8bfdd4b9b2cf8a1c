package audit

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;index"`
	Action       string         `json:"action" gorm:"size:50;not null"`
	ResourceType string         `json:"resource_type" gorm:"size:50;not null;index"`
	ResourceID   string         `json:"resource_id" gorm:"size:64"`
	OldData      datatypes.JSON `json:"old_data"`
	NewData      datatypes.JSON `json:"new_data"`
	IPAddress    string         `json:"ip_address" gorm:"size:64"`
	UserAgent    string         `json:"user_agent" gorm:"type:text"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at" gorm:"index"`
}
