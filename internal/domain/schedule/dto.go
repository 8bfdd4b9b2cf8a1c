package schedule

import "time"

type CreateScheduleDTO struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description,omitempty"`
	Location    *string   `json:"location,omitempty" binding:"omitempty,max=200"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at" binding:"required"`
}

type UpdateScheduleDTO struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description *string    `json:"description,omitempty"`
	Location    *string    `json:"location,omitempty" binding:"omitempty,max=200"`
	StartsAt    *time.Time `json:"starts_at,omitempty"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
}
