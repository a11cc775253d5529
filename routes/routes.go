package routes

import (
	"net/http"
	"time"

	"smartpark/handlers"
	"smartpark/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the public account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.Register)
		api.POST("/login", hb.Auth.Login)
	}
}

// RegisterUserRoutes registers profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.Users.Me)
		api.PUT("/me", hb.Users.UpdateMe)
		api.PUT("/me/fcm-token", hb.Users.UpdateFCMToken)
	}
}

// RegisterLotRoutes registers the lot catalog for the map screen.
func RegisterLotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lots")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Lots.List)
		api.GET("/:id", hb.Lots.Get)
	}
}

// RegisterReservationRoutes sets up the endpoints for the reservation flow.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reservations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.Reservations.Reserve)
		api.GET("", hb.Reservations.ListMine)
	}
}

// RegisterNotificationRoutes registers the notifications screen endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Notifications.List)
		api.DELETE("/:id", hb.Notifications.Dismiss)
		api.POST("/:id/left", hb.Notifications.MarkAsLeft)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.AdminRoleMiddleware())
		adminGroup.GET("/stats", hb.Admin.Stats)
		adminGroup.GET("/report", hb.Admin.Report)
		adminGroup.GET("/users", hb.Admin.Users)
		adminGroup.POST("/lots", hb.Lots.Create)
		adminGroup.PUT("/lots/:id", hb.Lots.Update)
		adminGroup.DELETE("/lots/:id", hb.Lots.Delete)
		adminGroup.POST("/seed", hb.Lots.Seed)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm SmartPark"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterLotRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
