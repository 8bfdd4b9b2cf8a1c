package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type UploadHandler struct {
	svc *application.UploadService
}

func NewUploadHandler(svc *application.UploadService) *UploadHandler {
	return &UploadHandler{svc: svc}
}

// Upload godoc
// @Summary Upload a file for posters and file answers
// @Tags uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Success 201 {object} application.UploadResult
// @Failure 400 {object} response.ErrorResponse
// @Failure 413 {object} response.ErrorResponse "File too large"
// @Failure 503 {object} response.ErrorResponse "Storage disabled"
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "file is required"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "cannot read file"})
		return
	}
	defer f.Close()

	res, err := h.svc.Upload(c.Request.Context(), userID, fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrStorageDisabled):
			c.JSON(http.StatusServiceUnavailable, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, response.ErrorResponse{Error: err.Error()})
		case errors.Is(err, application.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, res)
}
