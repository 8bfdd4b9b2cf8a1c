package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/pkg/response"
	"github.com/linskybing/clubhub/pkg/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Auth handles authorization middleware
type Auth struct {
	repos *repository.Repos
}

// NewAuth creates a new Auth middleware instance
func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// --- Extractors ---

// ClubExtractor resolves the club a request acts on.
type ClubExtractor func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error)

var errBadParam = errors.New("invalid id parameter")

// FromClubIDParam reads the club id from a URL parameter.
func FromClubIDParam(param string) ClubExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error) {
		id, err := utils.ParseUUIDParam(c, param)
		if err != nil {
			return uuid.Nil, errBadParam
		}
		if _, err := repos.Club.GetClubByID(id); err != nil {
			return uuid.Nil, err
		}
		return id, nil
	}
}

// FromProjectIDParam resolves the club owning the project in a URL parameter.
func FromProjectIDParam(param string) ClubExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error) {
		id, err := utils.ParseUUIDParam(c, param)
		if err != nil {
			return uuid.Nil, errBadParam
		}
		p, err := repos.Project.GetProjectByID(id)
		if err != nil {
			return uuid.Nil, err
		}
		return p.ClubID, nil
	}
}

// FromApplicationIDParam resolves the club owning the project an application targets.
func FromApplicationIDParam(param string) ClubExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error) {
		id, err := utils.ParseUUIDParam(c, param)
		if err != nil {
			return uuid.Nil, errBadParam
		}
		a, err := repos.Application.GetApplicationByID(id)
		if err != nil {
			return uuid.Nil, err
		}
		p, err := repos.Project.GetProjectByID(a.ProjectID)
		if err != nil {
			return uuid.Nil, err
		}
		return p.ClubID, nil
	}
}

// FromScheduleIDParam resolves the club owning the schedule in a URL parameter.
func FromScheduleIDParam(param string) ClubExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error) {
		id, err := utils.ParseUUIDParam(c, param)
		if err != nil {
			return uuid.Nil, errBadParam
		}
		s, err := repos.Schedule.GetScheduleByID(id)
		if err != nil {
			return uuid.Nil, err
		}
		return s.ClubID, nil
	}
}

// FromTaskIDParam resolves the club owning the project a task belongs to.
func FromTaskIDParam(param string) ClubExtractor {
	return func(c *gin.Context, repos *repository.Repos) (uuid.UUID, error) {
		id, err := utils.ParseUUIDParam(c, param)
		if err != nil {
			return uuid.Nil, errBadParam
		}
		t, err := repos.Task.GetTaskByID(id)
		if err != nil {
			return uuid.Nil, err
		}
		p, err := repos.Project.GetProjectByID(t.ProjectID)
		if err != nil {
			return uuid.Nil, err
		}
		return p.ClubID, nil
	}
}

// --- Middleware Methods ---

// Admin checks if user is a platform admin
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}
		if !claims.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// ClubMember lets approved members of the club through.
func (a *Auth) ClubMember(extractor ClubExtractor) gin.HandlerFunc {
	return a.clubRole(extractor, func(m club.Member) bool {
		return m.Status == club.StatusApproved
	})
}

// ClubManager lets approved owners and admins of the club through.
func (a *Auth) ClubManager(extractor ClubExtractor) gin.HandlerFunc {
	return a.clubRole(extractor, club.Member.CanManage)
}

func (a *Auth) clubRole(extractor ClubExtractor, allowed func(club.Member) bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := utils.GetClaimsFromContext(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Unauthorized"})
			return
		}

		clubID, err := extractor(c, a.repos)
		if err != nil {
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{Error: "Resource not found"})
			case errors.Is(err, errBadParam):
				c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input: " + err.Error()})
			default:
				zap.L().Error("resolve club for authorization", zap.Error(err))
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			}
			return
		}

		if claims.IsAdmin {
			c.Set("club_id", clubID)
			c.Next()
			return
		}

		m, err := a.repos.Club.GetMember(clubID, claims.UserID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			zap.L().Error("load membership", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{Error: "internal error"})
			return
		}
		if err != nil || !allowed(m) {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Permission denied for this club"})
			return
		}

		c.Set("club_id", clubID)
		c.Next()
	}
}
