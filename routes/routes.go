package routes

import (
	"net/http"
	"time"

	"cleansync/handlers"
	"cleansync/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/id/:id", hb.GetUserByIDHandler)
		api.PUT("/update/:id", hb.UpdateUserHandler)
		api.PUT("/fcm-token", hb.UpdateFCMTokenHandler)
		api.DELETE("/delete/:id", hb.DeleteUserHandler)
	}
}

// RegisterBookingRoutes sets up the draft session and booking lifecycle
// endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))

		// Draft session phase.
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID/dimensions", hb.SetDimensions)
		bookingGroup.PUT("/session/:sessionID/coupon", hb.ApplyCoupon)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.UpdateSchedule)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
		bookingGroup.POST("/confirm", hb.ConfirmBooking)

		// Confirmed booking lifecycle.
		bookingGroup.GET("", hb.ListBookings)
		bookingGroup.PUT("/:id/reschedule", hb.Reschedule)
		bookingGroup.PUT("/:id/stage", hb.UpdateProgressStage)
		bookingGroup.DELETE("/:id", hb.CancelBooking)
	}
}

// RegisterVisionRoutes registers the carpet photo analysis endpoint.
func RegisterVisionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/vision")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/analyze", hb.AnalyzePhotoHandler)
	}
}

// RegisterStorageRoutes registers photo upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/upload", hb.UploadPhotoHandler)
	}
}

// RegisterGeoRoutes registers the address autocomplete endpoint.
func RegisterGeoRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/geo")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/autocomplete", hb.AutocompleteHandler)
	}
}

// RegisterNotificationRoutes registers the notification center endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.ListNotificationsHandler)
		api.PUT("/:id/read", hb.SetNotificationReadHandler)
		api.DELETE("/:id", hb.DeleteNotificationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CleanSync"})
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

	RegisterUserRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterVisionRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterGeoRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterHealthRoute(r)
}
