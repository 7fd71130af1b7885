package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"mountaincottage/handlers"
	"mountaincottage/middleware"
	"mountaincottage/models"
)

// RegisterAuthRoutes registers login, registration and profile self-service.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/login", hb.LoginHandler)
		api.POST("/admin/login", hb.AdminLoginHandler)
		api.POST("/register", hb.RegisterHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.Sessions))
		protected.POST("/logout", hb.LogoutHandler)
		protected.GET("/profile", hb.ProfileHandler)
		protected.PUT("/profile", hb.UpdateProfileHandler)
		protected.POST("/change-password", hb.ChangePasswordHandler)
	}
}

// RegisterPublicRoutes registers unauthenticated browse endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/public")
	{
		api.GET("/statistics", hb.PublicStatisticsHandler)
		api.GET("/cottages", hb.ListCottagesHandler)
		api.GET("/cottages/:id", hb.CottageDetailHandler)
	}
}

// RegisterCottageRoutes registers the tourist-facing cottage endpoints.
func RegisterCottageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cottages")
	{
		api.GET("", hb.ListCottagesHandler)
		api.GET("/:id", hb.CottageDetailHandler)

		tourist := api.Group("")
		tourist.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.Sessions))
		tourist.Use(middleware.RequireRole(models.RoleTourist))
		tourist.POST("/:id/check-availability", hb.CheckAvailabilityHandler)
		tourist.POST("/:id/reserve", hb.ReserveHandler)
		tourist.POST("/:id/rate", hb.RateCottageHandler)
	}
}

// RegisterReservationRoutes registers the reservation lifecycle endpoints.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.Sessions))
	{
		api.GET("", middleware.RequireRole(models.RoleTourist), hb.TouristReservationsHandler)
		api.POST("/:id/cancel", middleware.RequireRole(models.RoleTourist), hb.CancelReservationHandler)

		api.GET("/owner", middleware.RequireRole(models.RoleOwner), hb.OwnerReservationsHandler)
		api.POST("/:id/confirm", middleware.RequireRole(models.RoleOwner), hb.ConfirmReservationHandler)
		api.POST("/:id/reject", middleware.RequireRole(models.RoleOwner), hb.RejectReservationHandler)
	}
}

// RegisterOwnerRoutes registers cottage management for owners.
func RegisterOwnerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/owner/cottages")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.Sessions))
	api.Use(middleware.RequireRole(models.RoleOwner))
	{
		api.GET("", hb.OwnerCottagesHandler)
		api.POST("", hb.CreateCottageHandler)
		api.POST("/import", hb.ImportCottageHandler)
		api.GET("/statistics", hb.OwnerStatisticsHandler)
		api.PUT("/:id", hb.UpdateCottageHandler)
		api.DELETE("/:id", hb.DeleteCottageHandler)
	}
}

// RegisterAdminRoutes registers moderation endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	api.Use(middleware.JWTAuthMiddleware(hb.UserRepo, hb.Sessions))
	api.Use(middleware.RequireRole(models.RoleAdmin))
	{
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/users/:id", hb.AdminGetUserHandler)
		api.PUT("/users/:id", hb.AdminUpdateUserHandler)
		api.POST("/users/:id/activate", hb.AdminActivateUserHandler)
		api.POST("/users/:id/deactivate", hb.AdminDeactivateUserHandler)
		api.DELETE("/users/:id", hb.AdminDeleteUserHandler)

		api.GET("/cottages", hb.AdminListCottagesHandler)
		api.POST("/cottages/:id/block", hb.AdminBlockCottageHandler)
		api.POST("/cottages/:id/unblock", hb.AdminUnblockCottageHandler)

		api.GET("/registration-requests", hb.AdminListRegistrationsHandler)
		api.POST("/registration-requests/:id/approve", hb.AdminApproveHandler)
		api.POST("/registration-requests/:id/reject", hb.AdminRejectHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterCottageRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterOwnerRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
