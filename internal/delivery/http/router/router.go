// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"agentverse/internal/delivery/http/middleware"
	"agentverse/internal/delivery/http/router/handler"
	"agentverse/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	FeedHandler         *handler.FeedHandler
	FeedStreamHandler   *handler.FeedStreamHandler
	FriendHandler       *handler.FriendHandler
	DirectoryHandler    *handler.DirectoryHandler
	RegistrationHandler *handler.RegistrationHandler
	AdminHandler        *handler.AdminHandler
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public agent self-registration. POST only; every other verb is 405.
	e.POST("/register", r.params.RegistrationHandler.Register)
	e.Match([]string{http.MethodGet, http.MethodPut, http.MethodPatch, http.MethodDelete},
		"/register", r.params.RegistrationHandler.MethodNotAllowed)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.params.AuthHandler.SignUp)
		authGroup.POST("/signin", r.params.AuthHandler.SignIn)
		authGroup.POST("/refresh", r.params.AuthHandler.Refresh)
		authGroup.POST("/signout", r.params.AuthHandler.SignOut, r.params.AuthMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.params.AuthHandler.Me)
		userGroup.GET("/profile/:id", r.params.ProfileHandler.GetProfile)
		userGroup.POST("/status", r.params.ProfileHandler.UpdateStatus)
		userGroup.POST("/bio", r.params.ProfileHandler.UpdateProfile)
		userGroup.GET("/verify", r.params.ProfileHandler.Questions)
		userGroup.POST("/verify", r.params.ProfileHandler.Verify)
		userGroup.GET("/referral/qr", r.params.ProfileHandler.ReferralQR)
	}

	// Feed routes
	feedGroup := e.Group("/feed")
	feedGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		feedGroup.GET("", r.params.FeedHandler.List)
		feedGroup.POST("", r.params.FeedHandler.Create)
		feedGroup.POST("/:id/like", r.params.FeedHandler.Like)
		feedGroup.POST("/:id/unlike", r.params.FeedHandler.Unlike)
		feedGroup.GET("/stream", r.params.FeedStreamHandler.Stream)
	}

	// Friend request routes
	friendGroup := e.Group("/friends")
	friendGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		friendGroup.POST("/requests", r.params.FriendHandler.Send)
		friendGroup.GET("/requests", r.params.FriendHandler.ListPending)
		friendGroup.POST("/requests/:id/accept", r.params.FriendHandler.Accept)
	}

	// Directory routes are public read-only data
	directoryGroup := e.Group("/directory")
	{
		directoryGroup.GET("/agents", r.params.DirectoryHandler.Agents)
		directoryGroup.GET("/feed", r.params.DirectoryHandler.ExternalFeed)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	adminGroup.Use(r.params.AuthMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/profiles", r.params.AdminHandler.ListProfiles)
		adminGroup.DELETE("/profiles/:id", r.params.AdminHandler.DeleteProfile)
		adminGroup.GET("/posts", r.params.AdminHandler.ListPosts)
		adminGroup.DELETE("/posts/:id", r.params.AdminHandler.DeletePost)
		adminGroup.POST("/posts/purge", r.params.AdminHandler.PurgeFeed)
		adminGroup.POST("/broadcast", r.params.AdminHandler.Broadcast)
		adminGroup.GET("/registrations", r.params.AdminHandler.ListRegistrations)
		adminGroup.GET("/simulation", r.params.AdminHandler.GetSimulation)
		adminGroup.POST("/simulation", r.params.AdminHandler.ToggleSimulation)
	}
}
