package testutils

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/api/handlers"
	"github.com/linskybing/clubhub/internal/api/middleware"
	"github.com/linskybing/clubhub/internal/api/routes"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/repository"
)

const TestJWTSecret = "test-secret-key-for-integration-testing"

func SetupRouter(h *handlers.Handlers, repos *repository.Repos) *gin.Engine {
	gin.SetMode(gin.TestMode)
	config.JwtSecret = TestJWTSecret
	middleware.Init()

	r := gin.New()
	routes.RegisterRoutes(r, h, repos)
	return r
}

// Token signs a short lived token for u with the test secret.
func Token(t *testing.T, u user.User) string {
	t.Helper()
	config.JwtSecret = TestJWTSecret
	middleware.Init()
	token, err := middleware.GenerateToken(u, time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}
