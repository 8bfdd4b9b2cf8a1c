package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/clubhub/internal/api/handlers"
	"github.com/linskybing/clubhub/internal/api/middleware"
	"github.com/linskybing/clubhub/internal/config"
	"github.com/linskybing/clubhub/internal/repository"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the engine with the global middleware chain.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())
	r.Use(middleware.CORSMiddleware(config.CORSOrigins))
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, repos *repository.Repos) {
	authMiddleware := middleware.NewAuth(repos)

	clubMember := authMiddleware.ClubMember(middleware.FromClubIDParam("id"))
	clubManager := authMiddleware.ClubManager(middleware.FromClubIDParam("id"))
	projectManager := authMiddleware.ClubManager(middleware.FromProjectIDParam("id"))
	applicationManager := authMiddleware.ClubManager(middleware.FromApplicationIDParam("id"))
	scheduleManager := authMiddleware.ClubManager(middleware.FromScheduleIDParam("id"))
	taskManager := authMiddleware.ClubManager(middleware.FromTaskIDParam("id"))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.User.AuthStatus)
		auth.GET("/me", h.User.GetMe)
		auth.PUT("/me", h.User.UpdateMe)

		clubs := auth.Group("/clubs")
		{
			clubs.GET("", h.Club.ListClubs)
			clubs.POST("", h.Club.CreateClub)
			clubs.GET("/:id", h.Club.GetClub)
			clubs.POST("/:id/join", h.Club.JoinClub)
			clubs.GET("/:id/members", clubMember, h.Club.ListMembers)
			clubs.PUT("/:id/members/:member_id", clubManager, h.Club.UpdateMember)
			clubs.GET("/:id/projects", h.Project.ListClubProjects)
			clubs.POST("/:id/projects", clubManager, h.Project.CreateProject)
			clubs.GET("/:id/schedules", clubMember, h.Schedule.ListClubSchedules)
			clubs.POST("/:id/schedules", clubManager, h.Schedule.CreateSchedule)
			clubs.GET("/:id/tasks", clubMember, h.Task.ListClubTasks)
		}

		projects := auth.Group("/projects")
		{
			projects.GET("/public", h.Project.ListPublicProjects)
			projects.GET("/:id", h.Project.GetProjectByID)
			projects.PUT("/:id", projectManager, h.Project.UpdateProject)

			form := projects.Group("/:id/recruitment-form", projectManager)
			{
				form.GET("", h.Recruitment.GetForm)
				form.PUT("", h.Recruitment.SaveForm)
				form.POST("/questions", h.Recruitment.AddQuestion)
				form.PATCH("/questions/:pos", h.Recruitment.EditQuestion)
				form.DELETE("/questions/:pos", h.Recruitment.RemoveQuestion)
				form.POST("/questions/:pos/move", h.Recruitment.MoveQuestion)
				form.POST("/questions/:pos/options", h.Recruitment.AddOption)
				form.PUT("/questions/:pos/options/:opt", h.Recruitment.UpdateOption)
				form.DELETE("/questions/:pos/options/:opt", h.Recruitment.RemoveOption)
			}

			projects.GET("/:id/apply", h.Apply.GetApplyForm)
			projects.POST("/:id/applications", h.Apply.Submit)
			projects.GET("/:id/applications", projectManager, h.Apply.ListProjectApplications)
			projects.POST("/:id/tasks", projectManager, h.Task.CreateTask)
		}

		applications := auth.Group("/applications")
		{
			applications.GET("/my", h.Apply.ListMine)
			applications.PUT("/:id/status", applicationManager, h.Apply.UpdateStatus)
		}

		auth.PUT("/schedules/:id", scheduleManager, h.Schedule.UpdateSchedule)
		auth.GET("/calendar", h.Schedule.Calendar)
		auth.PUT("/tasks/:id", taskManager, h.Task.UpdateTask)
		auth.GET("/events", h.Event.ListEvents)
		auth.GET("/events/:id", h.Event.GetEvent)

		auth.POST("/uploads", h.Upload.Upload)
		auth.GET("/audit/logs", authMiddleware.Admin(), h.Audit.GetAuditLogs)
	}
}
