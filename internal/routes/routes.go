package routes

import (
	"posyandu-backend/internal/handlers"
	"posyandu-backend/internal/middleware"
	"posyandu-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps adalah semua yang dibutuhkan router, dirakit di main
type Deps struct {
	Log         *zap.Logger
	JWTSecret   string
	RateLimiter *middleware.IPRateLimiter
	Auth        *handlers.AuthHandler
	Dashboard   *handlers.DashboardHandler
	Members     *handlers.MemberHandler
}

func SetupRoutes(r *gin.Engine, d Deps) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.RateLimitMiddleware(d.RateLimiter))

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", d.Auth.Login)
		}

		// PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware(d.JWTSecret))
		{
			// Dashboard hanya untuk admin pemilik token
			protected.GET("/admins/:id/dashboard", middleware.AdminScope("id"), d.Dashboard.GetDashboard)

			members := protected.Group("/members")
			{
				members.GET("", d.Members.GetMembers)
				members.GET("/export", d.Members.ExportMembers)
				members.GET("/:id", d.Members.GetMember)
				members.PUT("/:id", d.Members.UpdateMember)
				members.DELETE("/:id", d.Members.DeleteMember)
			}
		}
	}
}
