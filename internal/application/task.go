package application

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/utils"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("task title is required")
	ErrAssigneeNotMember = errors.New("assignee must be an approved member of the club")
)

type TaskService struct {
	Repos *repository.Repos
}

func NewTaskService(repos *repository.Repos) *TaskService {
	return &TaskService{
		Repos: repos,
	}
}

// ListClubTasks returns the tasks of every project in the club.
func (s *TaskService) ListClubTasks(clubID uuid.UUID, status *task.Status) ([]task.TaskWithProject, error) {
	return s.Repos.Task.ListTasksByClub(clubID, status)
}

func (s *TaskService) GetTask(id uuid.UUID) (*task.Task, error) {
	t, err := s.Repos.Task.GetTaskByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (s *TaskService) CreateTask(c *gin.Context, projectID uuid.UUID, input task.CreateTaskDTO) (*task.Task, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	t := &task.Task{
		ProjectID:   p.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Status:      task.StatusTodo,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if err := s.validateTask(p.ClubID, t); err != nil {
		return nil, err
	}

	if err := s.Repos.Task.CreateTask(t); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "create", "task", t.ID.String(), nil, *t, "task created", s.Repos.Audit)
	return t, nil
}

func (s *TaskService) UpdateTask(c *gin.Context, id uuid.UUID, input task.UpdateTaskDTO) (*task.Task, error) {
	t, err := s.GetTask(id)
	if err != nil {
		return nil, err
	}
	old := *t

	if input.Title != nil {
		t.Title = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		t.Description = input.Description
	}
	if input.Status != nil {
		t.Status = *input.Status
	}
	if input.ClearAssignee {
		t.AssigneeID = nil
	} else if input.AssigneeID != nil {
		t.AssigneeID = input.AssigneeID
	}
	if input.DueDate != nil {
		t.DueDate = input.DueDate
	}

	p, err := s.Repos.Project.GetProjectByID(t.ProjectID)
	if err != nil {
		return nil, err
	}
	if err := s.validateTask(p.ClubID, t); err != nil {
		return nil, err
	}

	if err := s.Repos.Task.UpdateTask(t); err != nil {
		return nil, err
	}

	utils.LogAuditWithConsole(c, "update", "task", t.ID.String(), old, *t, "task updated", s.Repos.Audit)
	return t, nil
}

func (s *TaskService) validateTask(clubID uuid.UUID, t *task.Task) error {
	if t.Title == "" {
		return ErrTaskTitleRequired
	}
	if t.AssigneeID == nil {
		return nil
	}
	ok, err := isApprovedMember(s.Repos, clubID, *t.AssigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrAssigneeNotMember
	}
	return nil
}
