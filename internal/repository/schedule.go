package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"gorm.io/gorm"
)

type ScheduleRepo interface {
	GetScheduleByID(id uuid.UUID) (schedule.Schedule, error)
	CreateSchedule(s *schedule.Schedule) error
	UpdateSchedule(s *schedule.Schedule) error
	ListSchedulesByClub(clubID uuid.UUID) ([]schedule.Schedule, error)
	ListCalendar(from, to *time.Time) ([]schedule.CalendarEntry, error)
	WithTx(tx *gorm.DB) ScheduleRepo
}

type DBScheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) *DBScheduleRepo {
	return &DBScheduleRepo{
		db: db,
	}
}

func (r *DBScheduleRepo) GetScheduleByID(id uuid.UUID) (schedule.Schedule, error) {
	var s schedule.Schedule
	err := r.db.Where("id = ?", id).First(&s).Error
	return s, err
}

func (r *DBScheduleRepo) CreateSchedule(s *schedule.Schedule) error {
	return r.db.Create(s).Error
}

func (r *DBScheduleRepo) UpdateSchedule(s *schedule.Schedule) error {
	return r.db.Save(s).Error
}

func (r *DBScheduleRepo) ListSchedulesByClub(clubID uuid.UUID) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	err := r.db.Where("club_id = ?", clubID).Order("starts_at ASC").Find(&out).Error
	return out, err
}

// ListCalendar returns schedules of every club overlapping [from, to].
// A nil bound leaves that side open.
func (r *DBScheduleRepo) ListCalendar(from, to *time.Time) ([]schedule.CalendarEntry, error) {
	q := r.db.Table("schedules s").
		Select("s.*, c.name AS club_name").
		Joins("JOIN clubs c ON c.id = s.club_id")
	if from != nil {
		q = q.Where("s.ends_at >= ?", *from)
	}
	if to != nil {
		q = q.Where("s.starts_at <= ?", *to)
	}
	var rows []schedule.CalendarEntry
	err := q.Order("s.starts_at ASC").Scan(&rows).Error
	return rows, err
}

func (r *DBScheduleRepo) WithTx(tx *gorm.DB) ScheduleRepo {
	if tx == nil {
		return r
	}
	return &DBScheduleRepo{
		db: tx,
	}
}
