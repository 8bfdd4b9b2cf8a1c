package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type EventHandler struct {
	svc *application.EventService
}

func NewEventHandler(svc *application.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

// ListEvents godoc
// @Summary List public events
// @Description Public projects with their club name, soonest first.
// @Tags events
// @Security BearerAuth
// @Produce json
// @Success 200 {array} project.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.svc.ListEvents()
	if err != nil {
		serverError(c, err)
		return
	}
	if events == nil {
		events = []project.Event{}
	}
	c.JSON(http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get a public event
// @Tags events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} project.Event
// @Failure 404 {object} response.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid event id"})
		return
	}

	e, err := h.svc.GetEvent(id)
	if err != nil {
		projectError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
