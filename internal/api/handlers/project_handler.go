package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type ProjectHandler struct {
	svc      *application.ProjectService
	sessions session.Provider
}

func NewProjectHandler(svc *application.ProjectService, sessions session.Provider) *ProjectHandler {
	return &ProjectHandler{svc: svc, sessions: sessions}
}

func projectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrProjectNameRequired), errors.Is(err, application.ErrInvalidSchedule):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		serverError(c, err)
	}
}

// ListClubProjects godoc
// @Summary List projects of a club
// @Description Non-members only see public projects.
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} project.Project
// @Router /clubs/{id}/projects [get]
func (h *ProjectHandler) ListClubProjects(c *gin.Context) {
	clubID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	viewer, err := h.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	projects, err := h.svc.ListClubProjects(clubID, viewer)
	if err != nil {
		serverError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// ListPublicProjects godoc
// @Summary List public projects
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Project
// @Router /projects/public [get]
func (h *ProjectHandler) ListPublicProjects(c *gin.Context) {
	projects, err := h.svc.ListPublicProjects()
	if err != nil {
		serverError(c, err)
		return
	}
	if projects == nil {
		projects = []project.Project{}
	}
	c.JSON(http.StatusOK, projects)
}

// GetProjectByID godoc
// @Summary Get project by ID
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Invalid project id"
// @Failure 404 {object} response.ErrorResponse "Project not found"
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}
	viewer, err := h.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	p, err := h.svc.GetVisibleProject(id, viewer)
	if err != nil {
		projectError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreateProject godoc
// @Summary Create a project in a club
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param input body project.CreateProjectDTO true "Project"
// @Success 201 {object} project.Project
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /clubs/{id}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	clubID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.CreateProject(c, clubID, userID, input)
	if err != nil {
		projectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProject godoc
// @Summary Update a project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body project.UpdateProjectDTO true "Changes"
// @Success 200 {object} project.Project
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.svc.UpdateProject(c, id, input)
	if err != nil {
		projectError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
