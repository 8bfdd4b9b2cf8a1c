package schedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Schedule is a dated club activity shown on the club calendar.
type Schedule struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ClubID      uuid.UUID `json:"club_id" gorm:"type:uuid;not null;index:idx_schedule_club_start,priority:1"`
	Title       string    `json:"title" gorm:"size:200;not null"`
	Description *string   `json:"description" gorm:"type:text"`
	Location    *string   `json:"location" gorm:"size:200"`
	StartsAt    time.Time `json:"starts_at" gorm:"not null;index:idx_schedule_club_start,priority:2"`
	EndsAt      time.Time `json:"ends_at" gorm:"not null"`
	CreatedBy   uuid.UUID `json:"created_by" gorm:"type:uuid;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// CalendarEntry is a schedule joined with the name of its club.
type CalendarEntry struct {
	Schedule
	ClubName string `json:"club_name"`
}
