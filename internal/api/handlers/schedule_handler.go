package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type ScheduleHandler struct {
	svc *application.ScheduleService
}

func NewScheduleHandler(svc *application.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

func scheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrScheduleNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrScheduleTitleRequired), errors.Is(err, application.ErrScheduleTimeRange):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	default:
		serverError(c, err)
	}
}

// ListClubSchedules godoc
// @Summary List schedules of a club
// @Description Approved members only. Ordered by start time.
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} schedule.Schedule
// @Router /clubs/{id}/schedules [get]
func (h *ScheduleHandler) ListClubSchedules(c *gin.Context) {
	clubID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}

	schedules, err := h.svc.ListClubSchedules(clubID)
	if err != nil {
		serverError(c, err)
		return
	}
	if schedules == nil {
		schedules = []schedule.Schedule{}
	}
	c.JSON(http.StatusOK, schedules)
}

// Calendar godoc
// @Summary Schedules of every club
// @Tags schedules
// @Security BearerAuth
// @Produce json
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Success 200 {array} schedule.CalendarEntry
// @Failure 400 {object} response.ErrorResponse
// @Router /calendar [get]
func (h *ScheduleHandler) Calendar(c *gin.Context) {
	from, ok := timeQuery(c, "from")
	if !ok {
		return
	}
	to, ok := timeQuery(c, "to")
	if !ok {
		return
	}

	entries, err := h.svc.Calendar(from, to)
	if err != nil {
		scheduleError(c, err)
		return
	}
	if entries == nil {
		entries = []schedule.CalendarEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

// CreateSchedule godoc
// @Summary Add a schedule to a club
// @Tags schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param input body schedule.CreateScheduleDTO true "Schedule"
// @Success 201 {object} schedule.Schedule
// @Failure 400 {object} response.ErrorResponse "Bad request"
// @Router /clubs/{id}/schedules [post]
func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
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

	var input schedule.CreateScheduleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	sc, err := h.svc.CreateSchedule(c, clubID, userID, input)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sc)
}

// UpdateSchedule godoc
// @Summary Update a schedule
// @Tags schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Schedule ID"
// @Param input body schedule.UpdateScheduleDTO true "Changes"
// @Success 200 {object} schedule.Schedule
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /schedules/{id} [put]
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid schedule id"})
		return
	}

	var input schedule.UpdateScheduleDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	sc, err := h.svc.UpdateSchedule(c, id, input)
	if err != nil {
		scheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}
