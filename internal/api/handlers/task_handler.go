package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type TaskHandler struct {
	svc *application.TaskService
}

func NewTaskHandler(svc *application.TaskService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

func taskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrTaskNotFound), errors.Is(err, application.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrTaskTitleRequired), errors.Is(err, application.ErrAssigneeNotMember):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		serverError(c, err)
	}
}

// ListClubTasks godoc
// @Summary List tasks across the projects of a club
// @Tags tasks
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Param status query string false "todo, in_progress or done"
// @Success 200 {array} task.TaskWithProject
// @Failure 400 {object} response.ErrorResponse
// @Router /clubs/{id}/tasks [get]
func (h *TaskHandler) ListClubTasks(c *gin.Context) {
	clubID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}

	var status *task.Status
	if raw := c.Query("status"); raw != "" {
		s := task.Status(raw)
		switch s {
		case task.StatusTodo, task.StatusInProgress, task.StatusDone:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid status"})
			return
		}
	}

	tasks, err := h.svc.ListClubTasks(clubID, status)
	if err != nil {
		serverError(c, err)
		return
	}
	if tasks == nil {
		tasks = []task.TaskWithProject{}
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask godoc
// @Summary Add a task to a project
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body task.CreateTaskDTO true "Task"
// @Success 201 {object} task.Task
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/tasks [post]
func (h *TaskHandler) CreateTask(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input task.CreateTaskDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	t, err := h.svc.CreateTask(c, projectID, input)
	if err != nil {
		taskError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// UpdateTask godoc
// @Summary Update a task
// @Tags tasks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param input body task.UpdateTaskDTO true "Changes"
// @Success 200 {object} task.Task
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{id} [put]
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid task id"})
		return
	}

	var input task.UpdateTaskDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	t, err := h.svc.UpdateTask(c, id, input)
	if err != nil {
		taskError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}
