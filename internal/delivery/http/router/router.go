// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hifybe/internal/delivery/http/middleware"
	"hifybe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	UserHandler         *handler.UserHandler
	SongHandler         *handler.SongHandler
	PlaylistHandler     *handler.PlaylistHandler
	PlayHandler         *handler.PlayHandler
	FriendshipHandler   *handler.FriendshipHandler
	ConversationHandler *handler.ConversationHandler
	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes. Registration, login and the OAuth flows are public,
	// everything touching an existing session is not.
	userGroup := e.Group("/usuarios")
	{
		userGroup.POST("/register", r.params.AuthHandler.Register)
		userGroup.POST("/login", r.params.AuthHandler.Login)
		userGroup.GET("/auth/google", r.params.AuthHandler.GoogleLogin)
		userGroup.GET("/auth/google/callback", r.params.AuthHandler.GoogleCallback)
		userGroup.GET("/auth/spotify", r.params.AuthHandler.SpotifyLogin)
		userGroup.GET("/auth/spotify/callback", r.params.AuthHandler.SpotifyCallback)

		userGroup.GET("/me", r.params.AuthHandler.Me, auth)
		userGroup.POST("/logout", r.params.AuthHandler.Logout, auth)

		userGroup.GET("", r.params.UserHandler.ListUsers, auth)
		userGroup.GET("/:id", r.params.UserHandler.GetUser, auth)
		userGroup.PUT("/:id", r.params.UserHandler.UpdateUser, auth)
		userGroup.DELETE("/:id", r.params.UserHandler.DeleteUser, auth)
	}

	// Catalog routes
	songGroup := e.Group("/canciones")
	{
		songGroup.GET("", r.params.SongHandler.ListSongs)
		songGroup.GET("/:id", r.params.SongHandler.GetSong)
		songGroup.POST("", r.params.SongHandler.CreateSong, auth)
		songGroup.PUT("/:id", r.params.SongHandler.UpdateSong, auth)
		songGroup.DELETE("/:id", r.params.SongHandler.DeleteSong, auth)
	}

	// Playlist routes
	playlistGroup := e.Group("/playlists")
	{
		playlistGroup.GET("", r.params.PlaylistHandler.ListPlaylists)
		playlistGroup.GET("/:id", r.params.PlaylistHandler.GetPlaylist)
		playlistGroup.GET("/:id/qr", r.params.PlaylistHandler.ShareQR)
		playlistGroup.POST("", r.params.PlaylistHandler.CreatePlaylist, auth)
		playlistGroup.PUT("/:id", r.params.PlaylistHandler.UpdatePlaylist, auth)
		playlistGroup.DELETE("/:id", r.params.PlaylistHandler.DeletePlaylist, auth)
		playlistGroup.POST("/:id/canciones", r.params.PlaylistHandler.AddSong, auth)
		playlistGroup.DELETE("/:id/canciones/:cancionId", r.params.PlaylistHandler.RemoveSong, auth)
	}

	// Play-history routes
	playGroup := e.Group("/reproducciones")
	playGroup.Use(auth)
	{
		playGroup.POST("", r.params.PlayHandler.RecordPlay)
		playGroup.GET("/usuarios/:usuarioId", r.params.PlayHandler.UserHistory)
	}

	// Friendship routes
	friendGroup := e.Group("/amistades")
	friendGroup.Use(auth)
	{
		friendGroup.GET("/usuarios/:usuarioId", r.params.FriendshipHandler.ListFriends)
		friendGroup.GET("/usuarios/:usuarioId/solicitudes", r.params.FriendshipHandler.ListPendingRequests)
		friendGroup.GET("/cercanos", r.params.FriendshipHandler.NearbyFriends)
		friendGroup.POST("/solicitudes", r.params.FriendshipHandler.SendRequest)
		friendGroup.PUT("/solicitudes/:solicitudId", r.params.FriendshipHandler.RespondRequest)
		friendGroup.DELETE("/:amistadId", r.params.FriendshipHandler.RemoveFriendship)
	}

	// Conversation routes
	conversationGroup := e.Group("/conversaciones")
	conversationGroup.Use(auth)
	{
		conversationGroup.POST("", r.params.ConversationHandler.StartConversation)
		conversationGroup.GET("", r.params.ConversationHandler.ListConversations)
		conversationGroup.GET("/:id/mensajes", r.params.ConversationHandler.ListMessages)
		conversationGroup.POST("/:id/mensajes", r.params.ConversationHandler.SendMessage)
		conversationGroup.PUT("/mensajes/:mensajeId/leido", r.params.ConversationHandler.MarkMessageRead)
	}

	// Notification routes
	notificationGroup := e.Group("/notificaciones")
	notificationGroup.Use(auth)
	{
		notificationGroup.GET("", r.params.NotificationHandler.ListNotifications)
		notificationGroup.PUT("/:id/leida", r.params.NotificationHandler.MarkRead)
		notificationGroup.DELETE("/:id", r.params.NotificationHandler.DeleteNotification)
	}
}
