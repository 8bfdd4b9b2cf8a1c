package task

import (
	"time"

	"github.com/google/uuid"
)

type CreateTaskDTO struct {
	Title       string     `json:"title" binding:"required,max=200"`
	Description *string    `json:"description,omitempty"`
	Status      *Status    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress done"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdateTaskDTO changes only the fields present. ClearAssignee unassigns the task.
type UpdateTaskDTO struct {
	Title         *string    `json:"title,omitempty" binding:"omitempty,max=200"`
	Description   *string    `json:"description,omitempty"`
	Status        *Status    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress done"`
	AssigneeID    *uuid.UUID `json:"assignee_id,omitempty"`
	ClearAssignee bool       `json:"clear_assignee,omitempty"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}
