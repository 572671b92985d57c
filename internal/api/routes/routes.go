package routes

import (
	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/api/middleware"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted by SetupRoutes
type Handlers struct {
	Health   *handlers.HealthHandler
	Token    *auth.AuthHandler
	Account  *handlers.AccountHandler
	User     *handlers.UserHandler
	Team     *handlers.TeamHandler
	Mood     *handlers.MoodHandler
	Workload *handlers.WorkloadHandler
	PulseLog *handlers.PulseLogHandler
	Feedback *handlers.FeedbackHandler
	EventLog *handlers.EventLogHandler
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(cfg *config.Config, authMiddleware *auth.AuthMiddleware, h Handlers) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Health check routes
	router.GET("/health", h.Health.Health)
	router.GET("/health/ready", h.Health.Ready)
	router.GET("/health/live", h.Health.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	requireAuth := authMiddleware.RequireAuth()
	requireAdmin := authMiddleware.RequireAdmin()

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/register", h.Account.Register)
		authRoutes.POST("/login", h.Account.Login)
		authRoutes.POST("/refresh", h.Token.Refresh)
		authRoutes.POST("/logout", requireAuth, h.Token.Logout)
	}

	// Team names are needed by the registration form
	v1.GET("/teams/public", h.Team.ListPublicTeams)

	users := v1.Group("/users", requireAuth)
	{
		users.GET("/me", h.User.GetMe)
		users.PATCH("/me", h.User.UpdateMe)

		users.GET("", requireAdmin, h.User.ListUsers)
		users.GET("/:id", requireAdmin, h.User.GetUser)
		users.PUT("/:id", requireAdmin, h.User.UpdateUser)
		users.PATCH("/:id", requireAdmin, h.User.UpdateUser)
		users.DELETE("/:id", requireAdmin, h.User.DeleteUser)
	}

	teams := v1.Group("/teams", requireAuth)
	{
		teams.GET("", h.Team.ListTeams)
		teams.GET("/:id", h.Team.GetTeam)
		teams.POST("", requireAdmin, h.Team.CreateTeam)
		teams.PUT("/:id", requireAdmin, h.Team.UpdateTeam)
		teams.PATCH("/:id", requireAdmin, h.Team.UpdateTeam)
		teams.DELETE("/:id", requireAdmin, h.Team.DeleteTeam)
		teams.POST("/:id/add-member", requireAdmin, h.Team.AddMember)
		teams.POST("/:id/remove-member", requireAdmin, h.Team.RemoveMember)
	}

	moods := v1.Group("/moods", requireAuth)
	{
		moods.GET("", h.Mood.ListMoods)
		moods.GET("/:id", h.Mood.GetMood)
		moods.POST("", requireAdmin, h.Mood.CreateMood)
		moods.PUT("/:id", requireAdmin, h.Mood.UpdateMood)
		moods.PATCH("/:id", requireAdmin, h.Mood.UpdateMood)
		moods.DELETE("/:id", requireAdmin, h.Mood.DeleteMood)
	}

	workloads := v1.Group("/workloads", requireAuth)
	{
		workloads.GET("", h.Workload.ListWorkloads)
		workloads.GET("/:id", h.Workload.GetWorkload)
		workloads.POST("", requireAdmin, h.Workload.CreateWorkload)
		workloads.PUT("/:id", requireAdmin, h.Workload.UpdateWorkload)
		workloads.PATCH("/:id", requireAdmin, h.Workload.UpdateWorkload)
		workloads.DELETE("/:id", requireAdmin, h.Workload.DeleteWorkload)
	}

	// Row scoping for pulse logs and feedback happens in the services
	pulseLogs := v1.Group("/pulse-logs", requireAuth)
	{
		pulseLogs.GET("", h.PulseLog.ListPulseLogs)
		pulseLogs.POST("", h.PulseLog.CreatePulseLog)
		pulseLogs.GET("/:id", h.PulseLog.GetPulseLog)
		pulseLogs.PUT("/:id", h.PulseLog.UpdatePulseLog)
		pulseLogs.PATCH("/:id", h.PulseLog.UpdatePulseLog)
		pulseLogs.DELETE("/:id", h.PulseLog.DeletePulseLog)
	}

	feedback := v1.Group("/feedback", requireAuth)
	{
		feedback.GET("", h.Feedback.ListFeedback)
		feedback.POST("", h.Feedback.CreateFeedback)
		feedback.GET("/:id", h.Feedback.GetFeedback)
		feedback.DELETE("/:id", h.Feedback.DeleteFeedback)
	}

	eventLogs := v1.Group("/event-logs", requireAuth, requireAdmin)
	{
		eventLogs.GET("", h.EventLog.ListEventLogs)
		eventLogs.POST("", h.EventLog.CreateEventLog)
		eventLogs.GET("/:id", h.EventLog.GetEventLog)
		eventLogs.PUT("/:id", h.EventLog.UpdateEventLog)
		eventLogs.PATCH("/:id", h.EventLog.UpdateEventLog)
		eventLogs.DELETE("/:id", h.EventLog.DeleteEventLog)
	}

	return router
}
