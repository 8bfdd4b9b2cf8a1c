package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/domain/club"
	"github.com/linskybing/clubhub/internal/domain/project"
	"github.com/linskybing/clubhub/internal/domain/schedule"
	"github.com/linskybing/clubhub/internal/domain/task"
	"github.com/linskybing/clubhub/internal/domain/user"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/linskybing/clubhub/internal/repository/mock"
	"github.com/linskybing/clubhub/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func withSecret(t *testing.T) {
	t.Helper()
	orig := config.JwtSecret
	config.JwtSecret = "middleware-test-secret"
	Init()
	t.Cleanup(func() {
		config.JwtSecret = orig
		Init()
	})
}

func TestTokenRoundTrip(t *testing.T) {
	withSecret(t)
	u := user.User{ID: uuid.New(), Email: "kim@example.com", Name: "김철수", IsAdmin: true}

	token, err := GenerateToken(u, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.True(t, claims.IsAdmin)

	t.Run("other secret", func(t *testing.T) {
		config.JwtSecret = "rotated"
		Init()
		_, err := ParseToken(token)
		assert.Error(t, err)
	})
}

func runJWT(req *http.Request) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", JWTAuthMiddleware(), func(c *gin.Context) {
		claims := c.MustGet("claims").(*types.Claims)
		c.String(http.StatusOK, claims.UserID.String())
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	withSecret(t)
	u := user.User{ID: uuid.New(), Email: "kim@example.com"}
	token, err := GenerateToken(u, time.Hour)
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := runJWT(req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, u.ID.String(), w.Body.String())
	})

	t.Run("cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
		assert.Equal(t, http.StatusOK, runJWT(req).Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Token "+token)
		assert.Equal(t, http.StatusUnauthorized, runJWT(req).Code)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		assert.Equal(t, http.StatusUnauthorized, runJWT(req).Code)
	})

	t.Run("expired", func(t *testing.T) {
		old, err := GenerateToken(u, -time.Minute)
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("Authorization", "Bearer "+old)
		assert.Equal(t, http.StatusUnauthorized, runJWT(req).Code)
	})
}

func TestClubManager(t *testing.T) {
	clubID := uuid.New()
	userID := uuid.New()

	serve := func(t *testing.T, claims *types.Claims, clubs *mock.MockClubRepo, path string) int {
		t.Helper()
		a := NewAuth(&repository.Repos{Club: clubs})
		r := gin.New()
		r.GET("/clubs/:id", func(c *gin.Context) {
			if claims != nil {
				c.Set("claims", claims)
			}
			c.Next()
		}, a.ClubManager(FromClubIDParam("id")), func(c *gin.Context) {
			assert.Equal(t, clubID, c.MustGet("club_id"))
			c.Status(http.StatusNoContent)
		})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w.Code
	}

	t.Run("owner passes", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		clubs.EXPECT().GetMember(clubID, userID).Return(club.Member{Role: club.RoleOwner, Status: club.StatusApproved}, nil)
		assert.Equal(t, http.StatusNoContent, serve(t, &types.Claims{UserID: userID}, clubs, "/clubs/"+clubID.String()))
	})

	t.Run("pending admin is forbidden", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		clubs.EXPECT().GetMember(clubID, userID).Return(club.Member{Role: club.RoleAdmin, Status: club.StatusPending}, nil)
		assert.Equal(t, http.StatusForbidden, serve(t, &types.Claims{UserID: userID}, clubs, "/clubs/"+clubID.String()))
	})

	t.Run("non member is forbidden", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		clubs.EXPECT().GetMember(clubID, userID).Return(club.Member{}, gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusForbidden, serve(t, &types.Claims{UserID: userID}, clubs, "/clubs/"+clubID.String()))
	})

	t.Run("platform admin skips membership", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		clubs.EXPECT().GetClubByID(clubID).Return(club.Club{ID: clubID}, nil)
		assert.Equal(t, http.StatusNoContent, serve(t, &types.Claims{UserID: userID, IsAdmin: true}, clubs, "/clubs/"+clubID.String()))
	})

	t.Run("unknown club", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		clubs.EXPECT().GetClubByID(clubID).Return(club.Club{}, gorm.ErrRecordNotFound)
		assert.Equal(t, http.StatusNotFound, serve(t, &types.Claims{UserID: userID}, clubs, "/clubs/"+clubID.String()))
	})

	t.Run("bad id", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		assert.Equal(t, http.StatusBadRequest, serve(t, &types.Claims{UserID: userID}, clubs, "/clubs/nope"))
	})

	t.Run("no claims", func(t *testing.T) {
		clubs := mock.NewMockClubRepo(gomock.NewController(t))
		assert.Equal(t, http.StatusUnauthorized, serve(t, nil, clubs, "/clubs/"+clubID.String()))
	})
}

func TestScheduleAndTaskExtractors(t *testing.T) {
	clubID := uuid.New()
	resolve := func(t *testing.T, repos *repository.Repos, extractor ClubExtractor, id string) (uuid.UUID, error) {
		t.Helper()
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Params = gin.Params{{Key: "id", Value: id}}
		return extractor(c, repos)
	}

	t.Run("schedule", func(t *testing.T) {
		schedules := mock.NewMockScheduleRepo(gomock.NewController(t))
		sc := schedule.Schedule{ID: uuid.New(), ClubID: clubID}
		schedules.EXPECT().GetScheduleByID(sc.ID).Return(sc, nil)

		got, err := resolve(t, &repository.Repos{Schedule: schedules}, FromScheduleIDParam("id"), sc.ID.String())
		require.NoError(t, err)
		assert.Equal(t, clubID, got)
	})

	t.Run("task goes through its project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		tasks := mock.NewMockTaskRepo(ctrl)
		projects := mock.NewMockProjectRepo(ctrl)
		tk := task.Task{ID: uuid.New(), ProjectID: uuid.New()}
		tasks.EXPECT().GetTaskByID(tk.ID).Return(tk, nil)
		projects.EXPECT().GetProjectByID(tk.ProjectID).Return(project.Project{ID: tk.ProjectID, ClubID: clubID}, nil)

		got, err := resolve(t, &repository.Repos{Task: tasks, Project: projects}, FromTaskIDParam("id"), tk.ID.String())
		require.NoError(t, err)
		assert.Equal(t, clubID, got)
	})

	t.Run("unknown task", func(t *testing.T) {
		tasks := mock.NewMockTaskRepo(gomock.NewController(t))
		tasks.EXPECT().GetTaskByID(gomock.Any()).Return(task.Task{}, gorm.ErrRecordNotFound)

		_, err := resolve(t, &repository.Repos{Task: tasks}, FromTaskIDParam("id"), uuid.NewString())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("bad schedule id", func(t *testing.T) {
		_, err := resolve(t, &repository.Repos{}, FromScheduleIDParam("id"), "nope")
		assert.ErrorIs(t, err, errBadParam)
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:", "https://club.example.com"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	cases := []struct {
		origin  string
		allowed bool
	}{
		{"http://localhost:5173", true},
		{"https://club.example.com", true},
		{"https://evil.example.com", false},
	}
	for _, tc := range cases {
		t.Run(tc.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			req.Header.Set("Origin", tc.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if tc.allowed {
				assert.Equal(t, tc.origin, w.Header().Get("Access-Control-Allow-Origin"))
				assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
			} else {
				assert.Equal(t, http.StatusForbidden, w.Code)
			}
		})
	}
}
