package routes

import (
	"net/http"

	"github.com/edupath/admissions/internal/app/controllers"
	"github.com/edupath/admissions/internal/app/models"
	"github.com/edupath/admissions/internal/app/models/dto"
	"github.com/edupath/admissions/internal/middleware"
	"github.com/edupath/admissions/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Auth          *controllers.AuthController
	User          *controllers.UserController
	University    *controllers.UniversityController
	Scholarship   *controllers.ScholarshipController
	Application   *controllers.ApplicationController
	Document      *controllers.DocumentController
	Notification  *controllers.NotificationController
	Admin         *controllers.AdminController
	WebSocket     gin.HandlerFunc
	HealthChecker func() error
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.NoRoute(func(c *gin.Context) {
		middleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("endpoint not found"))
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	universities := v1.Group("/universities")
	{
		universities.GET("", ctrl.University.List)
		universities.GET("/:id", ctrl.University.GetByID)
	}

	scholarships := v1.Group("/scholarships")
	{
		scholarships.GET("", ctrl.Scholarship.List)
		scholarships.GET("/:id", ctrl.Scholarship.GetByID)
	}

	// the user must exist; checked before the upgrade
	v1.GET("/ws", ctrl.WebSocket)

	v1.GET("/health", func(c *gin.Context) {
		if ctrl.HealthChecker != nil {
			if err := ctrl.HealthChecker(); err != nil {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database unavailable")
				c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(errorDetail))
				return
			}
		}
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/ping", ctrl.Auth.Ping)

		users := authenticated.Group("/users")
		{
			users.GET("/me", ctrl.User.GetMe)
			users.PUT("/:id", ctrl.User.UpdateProfile)
			users.GET("/:id/eligibility", ctrl.User.Eligibility)
			users.GET("/:id/eligible-universities", ctrl.User.EligibleUniversities)
		}

		authenticated.POST("/applications", ctrl.Application.Apply)
		authenticated.GET("/applications/:userId", ctrl.Application.ListForUser)
		authenticated.POST("/scholarship-applications", ctrl.Application.ApplyForScholarship)

		authenticated.POST("/documents", ctrl.Document.Submit)
		authenticated.GET("/documents/:userId", ctrl.Document.ListForUser)

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("/:userId", ctrl.Notification.List)
			notifications.GET("/:userId/unread-count", ctrl.Notification.UnreadCount)
			notifications.POST("/read", ctrl.Notification.MarkRead)
		}

		// --- Admin routes ---
		admin := authenticated.Group("/admin")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.GET("/users", ctrl.User.ListUsers)
			admin.GET("/stats", ctrl.Admin.Stats)
			admin.GET("/applications", ctrl.Application.ListAll)
			admin.GET("/documents", ctrl.Document.ListPending)

			admin.PUT("/applications/:id/status", ctrl.Application.UpdateStatus)
			admin.PUT("/scholarship-applications/:id/status", ctrl.Application.UpdateScholarshipStatus)
			admin.PUT("/documents/:id/status", ctrl.Document.UpdateStatus)

			admin.POST("/universities", ctrl.University.Create)
			admin.PUT("/universities/:id", ctrl.University.Update)
			admin.DELETE("/universities/:id", ctrl.University.Delete)

			admin.POST("/scholarships", ctrl.Scholarship.Create)
			admin.PUT("/scholarships/:id", ctrl.Scholarship.Update)
			admin.DELETE("/scholarships/:id", ctrl.Scholarship.Delete)
		}
	}
}
