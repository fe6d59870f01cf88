package handlers

import (
	userRepoPkg "cleansync/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Booking session endpoints.
	InitiateSession gin.HandlerFunc
	GetSession      gin.HandlerFunc
	SetDimensions   gin.HandlerFunc
	ApplyCoupon     gin.HandlerFunc
	UpdateSchedule  gin.HandlerFunc
	CancelSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc

	// Booking lifecycle endpoints.
	ListBookings        gin.HandlerFunc
	Reschedule          gin.HandlerFunc
	UpdateProgressStage gin.HandlerFunc
	CancelBooking       gin.HandlerFunc

	// Vision endpoints.
	AnalyzePhotoHandler gin.HandlerFunc

	// Storage endpoints.
	UploadPhotoHandler gin.HandlerFunc

	// Geocoding endpoints.
	AutocompleteHandler gin.HandlerFunc

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetUserByIDHandler      gin.HandlerFunc
	UpdateUserHandler       gin.HandlerFunc
	UpdateFCMTokenHandler   gin.HandlerFunc
	DeleteUserHandler       gin.HandlerFunc

	// Notification endpoints.
	ListNotificationsHandler   gin.HandlerFunc
	SetNotificationReadHandler gin.HandlerFunc
	DeleteNotificationHandler  gin.HandlerFunc
}
