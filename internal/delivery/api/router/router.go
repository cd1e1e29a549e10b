// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/46h1/buzzer/internal/delivery/api/middleware"
	"github.com/46h1/buzzer/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler  *handler.ProfileHandler
	LocationHandler *handler.LocationHandler
	NearbyHandler   *handler.NearbyHandler
	BuzzHandler     *handler.BuzzHandler
	ChatHandler     *handler.ChatHandler
	DeviceHandler   *handler.DeviceHandler
	MediaHandler    *handler.MediaHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler  *handler.ProfileHandler
	locationHandler *handler.LocationHandler
	nearbyHandler   *handler.NearbyHandler
	buzzHandler     *handler.BuzzHandler
	chatHandler     *handler.ChatHandler
	deviceHandler   *handler.DeviceHandler
	mediaHandler    *handler.MediaHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler:  params.ProfileHandler,
		locationHandler: params.LocationHandler,
		nearbyHandler:   params.NearbyHandler,
		buzzHandler:     params.BuzzHandler,
		chatHandler:     params.ChatHandler,
		deviceHandler:   params.DeviceHandler,
		mediaHandler:    params.MediaHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Download URLs of profile pictures point here when the bucket is not public
	e.GET("/media/*", r.mediaHandler.GetMedia)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.PUT("", r.profileHandler.PutProfile)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("/sharing", r.profileHandler.SetLocationSharing)
		profileGroup.PUT("/picture", r.profileHandler.UploadProfilePicture)
	}

	locationGroup := apiV1.Group("/location")
	{
		locationGroup.POST("", r.locationHandler.ReportLocation)
		locationGroup.POST("/session", r.locationHandler.StartSession)
		locationGroup.DELETE("/session", r.locationHandler.StopSession)
		locationGroup.GET("/session", r.locationHandler.SessionStatus)
		locationGroup.POST("/session/position", r.locationHandler.PushPosition)
		locationGroup.POST("/session/deny", r.locationHandler.DenyPermission)
	}

	nearbyGroup := apiV1.Group("/nearby")
	{
		nearbyGroup.GET("", r.nearbyHandler.FindNearby)
		nearbyGroup.GET("/stream", r.nearbyHandler.WatchNearby)
	}

	buzzesGroup := apiV1.Group("/buzzes")
	{
		buzzesGroup.POST("", r.buzzHandler.SendBuzz)
		buzzesGroup.GET("", r.buzzHandler.ListBuzzes)
		buzzesGroup.GET("/pending", r.buzzHandler.ListPending)
		buzzesGroup.GET("/pending/stream", r.buzzHandler.StreamPending)
		buzzesGroup.POST("/:id/respond", r.buzzHandler.Respond)
	}

	chatsGroup := apiV1.Group("/chats")
	{
		chatsGroup.GET("", r.chatHandler.ListChats)
		chatsGroup.GET("/stream", r.chatHandler.StreamChats)
		chatsGroup.GET("/:id/messages", r.chatHandler.ListMessages)
		chatsGroup.POST("/:id/messages", r.chatHandler.SendMessage)
		chatsGroup.POST("/:id/read", r.chatHandler.MarkRead)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

// Module provides the handlers, the auth middleware and the route table.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		middleware.NewAuthMiddleware,
		handler.NewProfileHandler,
		handler.NewLocationHandler,
		handler.NewNearbyHandler,
		handler.NewBuzzHandler,
		handler.NewChatHandler,
		handler.NewDeviceHandler,
		handler.NewMediaHandler,
	),
)
