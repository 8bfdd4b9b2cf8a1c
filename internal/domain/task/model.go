package task

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	ProjectID   uuid.UUID  `json:"project_id" gorm:"type:uuid;not null;index"`
	Title       string     `json:"title" gorm:"size:200;not null"`
	Description *string    `json:"description" gorm:"type:text"`
	Status      Status     `json:"status" gorm:"size:20;not null;default:'todo'"`
	AssigneeID  *uuid.UUID `json:"assignee_id" gorm:"type:uuid;index"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TaskWithProject is the board row: a task plus the name of its project.
type TaskWithProject struct {
	Task
	ProjectName string `json:"project_name"`
}
