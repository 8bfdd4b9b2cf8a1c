package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

// ApplyHandler serves the applicant side and the manager review of applications.
type ApplyHandler struct {
	svc      *application.ApplyService
	sessions session.Provider
}

func NewApplyHandler(svc *application.ApplyService, sessions session.Provider) *ApplyHandler {
	return &ApplyHandler{svc: svc, sessions: sessions}
}

// applyMessages are the client-facing texts for the apply flow's sentinels.
var applyMessages = []struct {
	err error
	msg string
}{
	{session.ErrNotAuthenticated, "로그인이 필요합니다."},
	{application.ErrAlreadyApplied, "이미 지원하셨습니다."},
	{application.ErrRecruitmentClosed, "모집이 마감되었습니다."},
	{application.ErrFormUnavailable, "지원서 양식이 없는 프로젝트입니다."},
	{application.ErrProjectNotFound, "프로젝트를 찾을 수 없습니다."},
	{application.ErrApplicationNotFound, "지원서를 찾을 수 없습니다."},
	{application.ErrInvalidStatus, "올바르지 않은 지원 상태입니다."},
}

func applyMessage(err error) string {
	for _, m := range applyMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}

func applyError(c *gin.Context, err error) {
	var verr *recruitment.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: verr.Error()})
	case errors.Is(err, session.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: applyMessage(err)})
	case errors.Is(err, application.ErrAlreadyApplied):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: applyMessage(err)})
	case errors.Is(err, application.ErrProjectNotFound),
		errors.Is(err, application.ErrFormUnavailable),
		errors.Is(err, application.ErrApplicationNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: applyMessage(err)})
	case errors.Is(err, application.ErrRecruitmentClosed), errors.Is(err, application.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: applyMessage(err)})
	default:
		serverError(c, err)
	}
}

// viewer returns the signed-in user or nil.
func (h *ApplyHandler) viewer(c *gin.Context) *session.User {
	u, err := h.sessions.Current(c)
	if err != nil {
		return nil
	}
	return &u
}

// GetApplyForm godoc
// @Summary Load the form an applicant fills in
// @Description available is false when the project has no form or the form has no questions.
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} recruitment.ApplyFormView
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id}/apply [get]
func (h *ApplyHandler) GetApplyForm(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	view, err := h.svc.LoadApplyForm(projectID, h.viewer(c))
	if err != nil {
		applyError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Submit godoc
// @Summary Submit an application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body recruitment.SubmitApplicationDTO true "Answers keyed by question id"
// @Success 201 {object} recruitment.Application
// @Failure 400 {object} response.ErrorResponse "Missing required answer"
// @Failure 401 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Router /projects/{id}/applications [post]
func (h *ApplyHandler) Submit(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input recruitment.SubmitApplicationDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	app, err := h.svc.Submit(c, projectID, h.viewer(c), input.Answers)
	if err != nil {
		applyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// ListMine godoc
// @Summary List the caller's applications
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Success 200 {array} recruitment.ApplicationView
// @Router /applications/my [get]
func (h *ApplyHandler) ListMine(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	views, err := h.svc.ListMyApplications(userID)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// ListProjectApplications godoc
// @Summary List applications of a project with their answers
// @Tags applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param status query string false "pending, approved or rejected"
// @Success 200 {array} recruitment.ApplicationView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/applications [get]
func (h *ApplyHandler) ListProjectApplications(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var status *recruitment.ApplicationStatus
	if raw := c.Query("status"); raw != "" {
		s := recruitment.ApplicationStatus(raw)
		switch s {
		case recruitment.ApplicationPending, recruitment.ApplicationApproved, recruitment.ApplicationRejected:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid status"})
			return
		}
	}

	views, err := h.svc.ListApplications(projectID, status)
	if err != nil {
		applyError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateStatus godoc
// @Summary Approve or reject an application
// @Tags applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param input body recruitment.UpdateApplicationStatusDTO true "New status"
// @Success 200 {object} recruitment.Application
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /applications/{id}/status [put]
func (h *ApplyHandler) UpdateStatus(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid application id"})
		return
	}

	var input recruitment.UpdateApplicationStatusDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	app, err := h.svc.UpdateApplicationStatus(c, id, input.Status)
	if err != nil {
		applyError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
