// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"medops/config"
	"medops/internal/delivery/api/middleware"
	"medops/internal/delivery/api/router/handler"
	"medops/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers to register, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	SessionHandler      *handler.SessionHandler
	CareHandler         *handler.CareHandler
	DeviceHandler       *handler.DeviceHandler
	AssignmentHandler   *handler.AssignmentHandler
	VitalHandler        *handler.VitalHandler
	ChatHandler         *handler.ChatHandler
	MediaHandler        *handler.MediaHandler
	UserDeviceHandler   *handler.UserDeviceHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler         *handler.UserHandler
	sessionHandler      *handler.SessionHandler
	careHandler         *handler.CareHandler
	deviceHandler       *handler.DeviceHandler
	assignmentHandler   *handler.AssignmentHandler
	vitalHandler        *handler.VitalHandler
	chatHandler         *handler.ChatHandler
	mediaHandler        *handler.MediaHandler
	userDeviceHandler   *handler.UserDeviceHandler
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:         params.UserHandler,
		sessionHandler:      params.SessionHandler,
		careHandler:         params.CareHandler,
		deviceHandler:       params.DeviceHandler,
		assignmentHandler:   params.AssignmentHandler,
		vitalHandler:        params.VitalHandler,
		chatHandler:         params.ChatHandler,
		mediaHandler:        params.MediaHandler,
		userDeviceHandler:   params.UserDeviceHandler,
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
	}

	// Auth routes that require a valid access token
	authedAuthGroup := e.Group("/auth")
	authedAuthGroup.Use(r.authMiddleware.Authenticate)
	{
		authedAuthGroup.POST("/logout", r.userHandler.Logout)
		authedAuthGroup.GET("/sessions", r.sessionHandler.GetSessions)
		authedAuthGroup.DELETE("/sessions", r.sessionHandler.RevokeAllSessions)
		authedAuthGroup.DELETE("/sessions/:id", r.sessionHandler.RevokeSession)
	}

	// Profile routes for the authenticated user
	profileGroup := e.Group("/profile")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.userHandler.GetProfile)
		profileGroup.PUT("", r.userHandler.UpdateProfile)
	}

	staff := r.authMiddleware.RequireRole(entity.RoleClinician, entity.RoleAdmin)
	admin := r.authMiddleware.RequireRole(entity.RoleAdmin)

	// User directory and care-team routes
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	{
		usersGroup.GET("", r.userHandler.ListUsers, staff)
		usersGroup.GET("/:id", r.userHandler.GetUser, staff)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser, admin)
		usersGroup.PUT("/:id/roles", r.userHandler.SetRoles, admin)

		usersGroup.GET("/:id/care-team", r.careHandler.GetCareTeam, staff)
		usersGroup.POST("/:id/care-team", r.careHandler.AddCareTeamMember, staff)
		usersGroup.DELETE("/:id/care-team/:clinicianID", r.careHandler.RemoveCareTeamMember, staff)
	}

	// Clinician view of their own patients
	careGroup := e.Group("/care")
	careGroup.Use(r.authMiddleware.Authenticate)
	careGroup.Use(staff)
	{
		careGroup.GET("/patients", r.careHandler.GetMyPatients)
	}

	// Clinical device registry and assignment tracking
	devicesGroup := e.Group("/devices")
	devicesGroup.Use(r.authMiddleware.Authenticate)
	devicesGroup.Use(staff)
	{
		devicesGroup.POST("", r.deviceHandler.CreateDevice)
		devicesGroup.GET("", r.deviceHandler.ListDevices)
		devicesGroup.GET("/:id", r.deviceHandler.GetDevice)
		devicesGroup.PUT("/:id", r.deviceHandler.UpdateDevice)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeleteDevice)
		devicesGroup.GET("/:id/qrcode", r.deviceHandler.GetDeviceLabel)

		devicesGroup.POST("/:id/assignments", r.assignmentHandler.AssignDevice)
		devicesGroup.POST("/:id/assignments/return", r.assignmentHandler.ReturnDevice)
		devicesGroup.GET("/:id/assignments", r.assignmentHandler.GetDeviceHistory)
		devicesGroup.GET("/:id/assignments/resolve", r.assignmentHandler.ResolveUser)
	}

	// Patient assignment history
	patientsGroup := e.Group("/patients")
	patientsGroup.Use(r.authMiddleware.Authenticate)
	patientsGroup.Use(staff)
	{
		patientsGroup.GET("/:id/assignments", r.assignmentHandler.GetPatientHistory)
	}

	// Vitals ingestion and queries
	vitalsGroup := e.Group("/vitals")
	vitalsGroup.Use(r.authMiddleware.Authenticate)
	{
		vitalsGroup.POST("", r.vitalHandler.IngestBatch)
		vitalsGroup.GET("", r.vitalHandler.QueryReadings)
	}

	// Chat log routes
	chatsGroup := e.Group("/chats")
	chatsGroup.Use(r.authMiddleware.Authenticate)
	{
		chatsGroup.GET("", r.chatHandler.GetUserChats)
		chatsGroup.POST("/messages", r.chatHandler.SendMessage)
		chatsGroup.POST("/query", r.chatHandler.QueryTimeRange)
		chatsGroup.POST("/latest", r.chatHandler.QueryLatest)
	}

	// Attachment media routes
	mediaGroup := e.Group("/media")
	mediaGroup.Use(r.authMiddleware.Authenticate)
	{
		mediaGroup.POST("", r.mediaHandler.UploadMedia)
		mediaGroup.GET("/:id", r.mediaHandler.DownloadMedia)
	}

	// Push device routes
	userDevicesGroup := e.Group("/user-devices")
	userDevicesGroup.Use(r.authMiddleware.Authenticate)
	{
		userDevicesGroup.POST("", r.userDeviceHandler.RegisterDevice)
		userDevicesGroup.GET("", r.userDeviceHandler.GetUserDevices)
		userDevicesGroup.PUT("/:id/token", r.userDeviceHandler.UpdateFCMToken)
		userDevicesGroup.DELETE("/:id", r.userDeviceHandler.DeactivateDevice)
	}

	// Notification history
	notificationsGroup := e.Group("/notifications")
	notificationsGroup.Use(r.authMiddleware.Authenticate)
	{
		notificationsGroup.GET("", r.notificationHandler.GetNotificationHistory)
	}
}
