package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
)

type ClubHandler struct {
	svc *application.ClubService
}

func NewClubHandler(svc *application.ClubService) *ClubHandler {
	return &ClubHandler{svc: svc}
}

func clubError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrClubNotFound), errors.Is(err, application.ErrMemberNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrAlreadyMember):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrClubNotRecruiting), errors.Is(err, application.ErrClubFull):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrOwnerImmutable):
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: err.Error()})
	default:
		serverError(c, err)
	}
}

// ListClubs godoc
// @Summary List clubs
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} club.Club
// @Router /clubs [get]
func (h *ClubHandler) ListClubs(c *gin.Context) {
	clubs, err := h.svc.ListClubs(c.Query("category"))
	if err != nil {
		serverError(c, err)
		return
	}
	if clubs == nil {
		clubs = []club.Club{}
	}
	c.JSON(http.StatusOK, clubs)
}

// GetClub godoc
// @Summary Get club by ID
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} club.Club
// @Failure 404 {object} response.ErrorResponse
// @Router /clubs/{id} [get]
func (h *ClubHandler) GetClub(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	cl, err := h.svc.GetClub(id)
	if err != nil {
		clubError(c, err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// CreateClub godoc
// @Summary Create a club owned by the caller
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body club.CreateClubDTO true "Club"
// @Success 201 {object} club.Club
// @Failure 400 {object} response.ErrorResponse
// @Router /clubs [post]
func (h *ClubHandler) CreateClub(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	var input club.CreateClubDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	cl, err := h.svc.CreateClub(c, userID, input)
	if err != nil {
		clubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cl)
}

// JoinClub godoc
// @Summary Request club membership
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Success 201 {object} club.Member
// @Failure 409 {object} response.ErrorResponse "Already a member"
// @Router /clubs/{id}/join [post]
func (h *ClubHandler) JoinClub(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
		return
	}

	m, err := h.svc.JoinClub(id, userID)
	if err != nil {
		clubError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// ListMembers godoc
// @Summary List club members
// @Tags clubs
// @Security BearerAuth
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} club.MemberWithUser
// @Router /clubs/{id}/members [get]
func (h *ClubHandler) ListMembers(c *gin.Context) {
	id, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	members, err := h.svc.ListMembers(id)
	if err != nil {
		serverError(c, err)
		return
	}
	if members == nil {
		members = []club.MemberWithUser{}
	}
	c.JSON(http.StatusOK, members)
}

// UpdateMember godoc
// @Summary Approve, reject or change the role of a member
// @Tags clubs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param member_id path string true "Member ID"
// @Param input body club.UpdateMemberDTO true "Changes"
// @Success 200 {object} club.Member
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /clubs/{id}/members/{member_id} [put]
func (h *ClubHandler) UpdateMember(c *gin.Context) {
	clubID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid club id"})
		return
	}
	memberID, err := utils.ParseUUIDParam(c, "member_id")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid member id"})
		return
	}

	var input club.UpdateMemberDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	m, err := h.svc.UpdateMember(c, clubID, memberID, input)
	if err != nil {
		clubError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}
