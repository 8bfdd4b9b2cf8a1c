package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/response"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary      Query audit logs
// @Description  Retrieve audit logs filtered by user, resource, action and time range, with pagination support.
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        user_id       query     string   false  "User ID"
// @Param        resource_type query     string   false  "Resource type" example("recruitment_form")
// @Param        resource_id   query     string   false  "Resource ID"
// @Param        action        query     string   false  "Action" example("save")
// @Param        start_time    query     string   false  "Start time in RFC3339 format"
// @Param        end_time      query     string   false  "End time in RFC3339 format"
// @Param        limit         query     int      false  "Max records (default 100, max 1000)"
// @Param        offset        query     int      false  "Offset (default 0)"
// @Success      200 {array}   audit.AuditLog
// @Failure      400 {object}  response.ErrorResponse "Invalid query parameters"
// @Router       /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	f := repository.AuditFilter{
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
		Action:       c.Query("action"),
	}

	if raw := c.Query("user_id"); raw != "" {
		uid, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid user_id"})
			return
		}
		f.UserID = &uid
	}

	var ok bool
	if f.From, ok = timeQuery(c, "start_time"); !ok {
		return
	}
	if f.To, ok = timeQuery(c, "end_time"); !ok {
		return
	}

	f.Limit, _ = strconv.Atoi(c.Query("limit"))
	f.Offset, _ = strconv.Atoi(c.Query("offset"))

	logs, err := h.svc.QueryAuditLogs(f)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// timeQuery parses an optional RFC3339 query value and answers 400 when it
// is malformed.
func timeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid " + name})
		return nil, false
	}
	return &t, true
}
