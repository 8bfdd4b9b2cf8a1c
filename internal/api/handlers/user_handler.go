package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/api/middleware"
	"github.com/linskybing/clubhub/internal/application"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/session"
	"github.com/linskybing/clubhub/pkg/response"
)

type UserHandler struct {
	svc      *application.UserService
	sessions session.Provider
}

func NewUserHandler(svc *application.UserService, sessions session.Provider) *UserHandler {
	return &UserHandler{svc: svc, sessions: sessions}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} session.User
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	created, err := h.svc.RegisterUser(input)
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session.FromModel(created))
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse "JWT token and user info"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBind(&input); err != nil {
		bindError(c, err)
		return
	}

	usr, token, err := h.svc.LoginUser(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		serverError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.CookieName,
		token,
		int(config.TokenTTL.Seconds()),
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:   token,
		UserID:  usr.ID.String(),
		Email:   usr.Email,
		Name:    usr.Name,
		IsAdmin: usr.IsAdmin,
	})
}

// Logout godoc
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	// The token may already be gone; clearing the cookie is enough then.
	if token, err := middleware.TokenFromRequest(c); err == nil {
		if claims, err := middleware.ParseToken(token); err == nil {
			h.svc.Logout(c.Request.Context(), claims.UserID)
		}
	}

	c.SetCookie(
		middleware.CookieName,
		"",
		-1,
		"/",
		"",
		config.IsProduction,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// AuthStatus godoc
// @Summary Check token status
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} session.User
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/status [get]
func (h *UserHandler) AuthStatus(c *gin.Context) {
	u, err := h.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "valid", "user": u})
}

// GetMe godoc
// @Summary Current user profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} session.User
// @Failure 401 {object} response.ErrorResponse
// @Router /me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	fresh, err := h.sessions.Refresh(c.Request.Context(), u.ID)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, fresh)
}

// UpdateMe godoc
// @Summary Update current user profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body user.UpdateUserInput true "Profile fields"
// @Success 200 {object} session.User
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Router /me [put]
func (h *UserHandler) UpdateMe(c *gin.Context) {
	u, err := h.sessions.Current(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	var input user.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.svc.UpdateProfile(c.Request.Context(), u.ID, input)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.FromModel(updated))
}
