package project

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPlanning   Status = "planning"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

type Visibility string

const (
	VisibilityClubOnly Visibility = "club_only"
	VisibilityPublic   Visibility = "public"
)

type Project struct {
	ID                    uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ClubID                uuid.UUID  `json:"club_id" gorm:"type:uuid;not null;index"`
	Name                  string     `json:"name" gorm:"size:200;not null"`
	Description           *string    `json:"description" gorm:"type:text"`
	Status                Status     `json:"status" gorm:"size:20;not null;default:'planning'"`
	StartsAt              *time.Time `json:"starts_at"`
	EndsAt                *time.Time `json:"ends_at"`
	RecruitmentDeadlineAt *time.Time `json:"recruitment_deadline_at"`
	Visibility            Visibility `json:"visibility" gorm:"size:20;not null;default:'club_only'"`
	CreatedBy             uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// RecruitmentOpen reports whether applications are still accepted at now.
// A project without a deadline is always open.
func (p *Project) RecruitmentOpen(now time.Time) bool {
	return p.RecruitmentDeadlineAt == nil || !now.After(*p.RecruitmentDeadlineAt)
}

// Event is a public project as listed on the events page.
type Event struct {
	Project
	ClubName string `json:"club_name"`
}
