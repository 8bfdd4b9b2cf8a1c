package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/recruitment"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

// RecruitmentHandler serves the form builder of a project.
type RecruitmentHandler struct {
	svc *application.RecruitmentService
}

func NewRecruitmentHandler(svc *application.RecruitmentService) *RecruitmentHandler {
	return &RecruitmentHandler{svc: svc}
}

func recruitmentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case application.IsDraftError(err):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		serverError(c, err)
	}
}

// GetForm godoc
// @Summary Load the recruitment form draft of a project
// @Tags recruitment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} recruitment.FormView
// @Failure 404 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form [get]
func (h *RecruitmentHandler) GetForm(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	d, err := h.svc.Load(projectID)
	if err != nil {
		recruitmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, d.View())
}

// SaveForm godoc
// @Summary Save the whole recruitment form draft
// @Description Questions with an empty or "new-" id are inserted, known ids are updated in place and missing ones are deleted. Positions follow list order.
// @Tags recruitment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body recruitment.SaveFormDTO true "Draft"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form [put]
func (h *RecruitmentHandler) SaveForm(c *gin.Context) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	var input recruitment.SaveFormDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	d, err := recruitment.DraftFromDTO(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		return
	}

	saved, err := h.svc.Save(c, projectID, d)
	if err != nil {
		recruitmentError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved.View())
}

// mutate parses the project id and applies op through load, edit and save.
func (h *RecruitmentHandler) mutate(c *gin.Context, status int, op application.DraftOp) {
	projectID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid project id"})
		return
	}

	saved, err := h.svc.Mutate(c, projectID, op)
	if err != nil {
		recruitmentError(c, err)
		return
	}
	c.JSON(status, saved.View())
}

func positionParam(c *gin.Context, name string) (int, bool) {
	pos, err := utils.ParseIntParam(c, name)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return pos, true
}

// AddQuestion godoc
// @Summary Append a question
// @Tags recruitment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param input body recruitment.AddQuestionDTO true "Question type"
// @Success 201 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions [post]
func (h *RecruitmentHandler) AddQuestion(c *gin.Context) {
	var input recruitment.AddQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	h.mutate(c, http.StatusCreated, func(d *recruitment.Draft) error {
		_, err := d.AddQuestion(input.Type)
		return err
	})
}

// EditQuestion godoc
// @Summary Patch label, required flag or options of a question
// @Tags recruitment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Param input body recruitment.EditQuestionDTO true "Patch"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos} [patch]
func (h *RecruitmentHandler) EditQuestion(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	var input recruitment.EditQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	h.mutate(c, http.StatusOK, func(d *recruitment.Draft) error {
		return d.EditQuestion(pos, input.Patch())
	})
}

// RemoveQuestion godoc
// @Summary Remove a question
// @Tags recruitment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos} [delete]
func (h *RecruitmentHandler) RemoveQuestion(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	h.mutate(c, http.StatusOK, func(d *recruitment.Draft) error {
		return d.RemoveQuestion(pos)
	})
}

// MoveQuestion godoc
// @Summary Swap a question with its neighbour
// @Tags recruitment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Param input body recruitment.MoveQuestionDTO true "up or down"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos}/move [post]
func (h *RecruitmentHandler) MoveQuestion(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	var input recruitment.MoveQuestionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	h.mutate(c, http.StatusOK, func(d *recruitment.Draft) error {
		return d.MoveQuestion(pos, input.Dir())
	})
}

// AddOption godoc
// @Summary Append a default option to a choice question
// @Tags recruitment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Success 201 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos}/options [post]
func (h *RecruitmentHandler) AddOption(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	h.mutate(c, http.StatusCreated, func(d *recruitment.Draft) error {
		_, err := d.AddOption(pos)
		return err
	})
}

// UpdateOption godoc
// @Summary Rename an option
// @Tags recruitment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Param opt path int true "Option index"
// @Param input body recruitment.UpdateOptionDTO true "New value"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos}/options/{opt} [put]
func (h *RecruitmentHandler) UpdateOption(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	opt, ok := positionParam(c, "opt")
	if !ok {
		return
	}
	var input recruitment.UpdateOptionDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}
	h.mutate(c, http.StatusOK, func(d *recruitment.Draft) error {
		return d.UpdateOption(pos, opt, input.Value)
	})
}

// RemoveOption godoc
// @Summary Remove an option
// @Tags recruitment
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Param pos path int true "Question position"
// @Param opt path int true "Option index"
// @Success 200 {object} recruitment.FormView
// @Failure 400 {object} response.ErrorResponse
// @Router /projects/{id}/recruitment-form/questions/{pos}/options/{opt} [delete]
func (h *RecruitmentHandler) RemoveOption(c *gin.Context) {
	pos, ok := positionParam(c, "pos")
	if !ok {
		return
	}
	opt, ok := positionParam(c, "opt")
	if !ok {
		return
	}
	h.mutate(c, http.StatusOK, func(d *recruitment.Draft) error {
		return d.RemoveOption(pos, opt)
	})
}
