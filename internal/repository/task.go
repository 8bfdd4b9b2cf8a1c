package repository

import (
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/task"
	"gorm.io/gorm"
)

type TaskRepo interface {
	GetTaskByID(id uuid.UUID) (task.Task, error)
	CreateTask(t *task.Task) error
	UpdateTask(t *task.Task) error
	ListTasksByClub(clubID uuid.UUID, status *task.Status) ([]task.TaskWithProject, error)
	WithTx(tx *gorm.DB) TaskRepo
}

type DBTaskRepo struct {
	db *gorm.DB
}

func NewTaskRepo(db *gorm.DB) *DBTaskRepo {
	return &DBTaskRepo{
		db: db,
	}
}

func (r *DBTaskRepo) GetTaskByID(id uuid.UUID) (task.Task, error) {
	var t task.Task
	err := r.db.Where("id = ?", id).First(&t).Error
	return t, err
}

func (r *DBTaskRepo) CreateTask(t *task.Task) error {
	return r.db.Create(t).Error
}

func (r *DBTaskRepo) UpdateTask(t *task.Task) error {
	return r.db.Save(t).Error
}

// ListTasksByClub returns tasks across all projects of the club, earliest
// due date first. Tasks without a due date come last.
func (r *DBTaskRepo) ListTasksByClub(clubID uuid.UUID, status *task.Status) ([]task.TaskWithProject, error) {
	q := r.db.Table("tasks t").
		Select("t.*, p.name AS project_name").
		Joins("JOIN projects p ON p.id = t.project_id").
		Where("p.club_id = ?", clubID)
	if status != nil {
		q = q.Where("t.status = ?", *status)
	}
	var rows []task.TaskWithProject
	err := q.Order("t.due_date ASC NULLS LAST").Order("t.created_at ASC").Scan(&rows).Error
	return rows, err
}

func (r *DBTaskRepo) WithTx(tx *gorm.DB) TaskRepo {
	if tx == nil {
		return r
	}
	return &DBTaskRepo{
		db: tx,
	}
}
