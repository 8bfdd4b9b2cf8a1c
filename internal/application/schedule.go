package application

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrScheduleNotFound      = errors.New("schedule not found")
	ErrScheduleTitleRequired = errors.New("schedule title is required")
	ErrScheduleTimeRange     = errors.New("schedule must not end before it starts")
)

type ScheduleService struct {
	Repos *repository.Repos
}

func NewScheduleService(repos *repository.Repos) *ScheduleService {
	return &ScheduleService{
		Repos: repos,
	}
}

// ListClubSchedules returns the club's schedules in start order.
func (s *ScheduleService) ListClubSchedules(clubID uuid.UUID) ([]schedule.Schedule, error) {
	return s.Repos.Schedule.ListSchedulesByClub(clubID)
}

// Calendar lists schedules of all clubs overlapping the window.
func (s *ScheduleService) Calendar(from, to *time.Time) ([]schedule.CalendarEntry, error) {
	if from != nil && to != nil && to.Before(*from) {
		return nil, ErrScheduleTimeRange
	}
	return s.Repos.Schedule.ListCalendar(from, to)
}

func (s *ScheduleService) GetSchedule(id uuid.UUID) (*schedule.Schedule, error) {
	sc, err := s.Repos.Schedule.GetScheduleByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &sc, nil
}

func (s *ScheduleService) CreateSchedule(c *gin.Context, clubID, creatorID uuid.UUID, input schedule.CreateScheduleDTO) (*schedule.Schedule, error) {
	sc := &schedule.Schedule{
		ClubID:      clubID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Location:    input.Location,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
		CreatedBy:   creatorID,
	}
	if err := validateSchedule(sc); err != nil {
		return nil, err
	}

	if err := s.Repos.Schedule.CreateSchedule(sc); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "schedule", sc.ID.String(), nil, *sc, "schedule created", s.Repos.Audit)
	return sc, nil
}

func (s *ScheduleService) UpdateSchedule(c *gin.Context, id uuid.UUID, input schedule.UpdateScheduleDTO) (*schedule.Schedule, error) {
	sc, err := s.GetSchedule(id)
	if err != nil {
		return nil, err
	}
	old := *sc

	if input.Title != nil {
		sc.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		sc.Description = input.Description
	}
	if input.Location != nil {
		sc.Location = input.Location
	}
	if input.StartsAt != nil {
		sc.StartsAt = *input.StartsAt
	}
	if input.EndsAt != nil {
		sc.EndsAt = *input.EndsAt
	}
	if err := validateSchedule(sc); err != nil {
		return nil, err
	}

	if err := s.Repos.Schedule.UpdateSchedule(sc); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "schedule", sc.ID.String(), old, *sc, "schedule updated", s.Repos.Audit)
	return sc, nil
}

func validateSchedule(sc *schedule.Schedule) error {
	if sc.Title == "" {
		return ErrScheduleTitleRequired
	}
	if sc.EndsAt.Before(sc.StartsAt) {
		return ErrScheduleTimeRange
	}
	return nil
}
