package project

import "time"

type CreateProjectDTO struct {
	Name                  string      `json:"name" binding:"required,max=200"`
	Description           *string     `json:"description,omitempty"`
	StartsAt              *time.Time  `json:"starts_at,omitempty"`
	EndsAt                *time.Time  `json:"ends_at,omitempty"`
	RecruitmentDeadlineAt *time.Time  `json:"recruitment_deadline_at,omitempty"`
	Visibility            *Visibility `json:"visibility,omitempty" binding:"omitempty,oneof=club_only public"`
}

type UpdateProjectDTO struct {
	Name                  *string     `json:"name,omitempty" binding:"omitempty,max=200"`
	Description           *string     `json:"description,omitempty"`
	Status                *Status     `json:"status,omitempty" binding:"omitempty,oneof=planning in_progress completed cancelled"`
	StartsAt              *time.Time  `json:"starts_at,omitempty"`
	EndsAt                *time.Time  `json:"ends_at,omitempty"`
	RecruitmentDeadlineAt *time.Time  `json:"recruitment_deadline_at,omitempty"`
	Visibility            *Visibility `json:"visibility,omitempty" binding:"omitempty,oneof=club_only public"`
}
