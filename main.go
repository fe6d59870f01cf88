package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cleansync/config"
	"cleansync/cron"
	"cleansync/database"
	bookingRepoPkg "cleansync/database/repository/booking"
	notificationRepoPkg "cleansync/database/repository/notification"
	userRepoPkg "cleansync/database/repository/user"
	"cleansync/handlers"
	"cleansync/middleware"
	"cleansync/routes"
	"cleansync/services/booking"
	"cleansync/services/geocode"
	"cleansync/services/mail"
	"cleansync/services/notification"
	"cleansync/services/user"
	"cleansync/services/vision"
	"cleansync/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	db := database.DB()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo(db)
	userRepo := userRepoPkg.NewMongoUserRepo(db)

	// Services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer reminderClient.Close()
	cron.InitReminderWorker(notificationService)

	bookingService := &booking.DefaultSessionService{
		Cache:           utils.GetSessionCacheClient(),
		Repo:            bookingRepo,
		NotificationSvc: notificationService,
		Mailer:          mail.NewHTTPMailer(),
		Reminders:       reminderClient,
	}

	visionService := vision.NewDefaultVisionService(config.AppConfig.GeminiAPIKey, vision.Thresholds{
		ConfidenceFloor: config.AppConfig.AnalysisConfidenceFloor,
		MaxMeters:       config.AppConfig.AnalysisMaxMeters,
	})

	geocodeService := geocode.NewHTTPGeocoder()

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	visionHandler := handlers.NewVisionHandler(visionService, bookingService, logger)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService, logger)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService, logger)
	userHandler := handlers.NewUserHandler(userService, logger)
	notificationHandler := handlers.NewNotificationHandler(notificationService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Booking session endpoints.
		InitiateSession: bookingHandler.InitiateSession,
		GetSession:      bookingHandler.GetSession,
		SetDimensions:   bookingHandler.SetDimensions,
		ApplyCoupon:     bookingHandler.ApplyCoupon,
		UpdateSchedule:  bookingHandler.UpdateSchedule,
		CancelSession:   bookingHandler.CancelSession,
		ConfirmBooking:  bookingHandler.ConfirmBooking,

		// Booking lifecycle endpoints.
		ListBookings:        bookingHandler.ListBookings,
		Reschedule:          bookingHandler.Reschedule,
		UpdateProgressStage: bookingHandler.UpdateProgressStage,
		CancelBooking:       bookingHandler.CancelBooking,

		// Vision endpoints.
		AnalyzePhotoHandler: visionHandler.AnalyzeHandler,

		// Storage endpoints.
		UploadPhotoHandler: storageHandler.UploadPhotoHandler,

		// Geocoding endpoints.
		AutocompleteHandler: geocodeHandler.AutocompleteHandler,

		// User endpoints.
		RegisterUserHandler:     userHandler.RegisterHandler,
		AuthenticateUserHandler: userHandler.AuthenticateHandler,
		GetUserByIDHandler:      userHandler.GetByIDHandler,
		UpdateUserHandler:       userHandler.UpdateHandler,
		UpdateFCMTokenHandler:   userHandler.UpdateFCMTokenHandler,
		DeleteUserHandler:       userHandler.DeleteHandler,

		// Notification endpoints.
		ListNotificationsHandler:   notificationHandler.ListHandler,
		SetNotificationReadHandler: notificationHandler.SetReadHandler,
		DeleteNotificationHandler:  notificationHandler.DeleteHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
