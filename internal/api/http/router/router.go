package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dtroode/userauth-server/internal/api/http/handler"
	"github.com/dtroode/userauth-server/internal/api/http/middleware"
	"github.com/dtroode/userauth-server/internal/logger"
	"github.com/dtroode/userauth-server/internal/model"
)

// Router represents an HTTP router for authentication operations.
// It manages route registration and middleware configuration.
type Router struct {
	authService    handler.AuthService
	userService    handler.UserService
	tokens         middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	userService handler.UserService,
	tokens middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		userService:    userService,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register registers all routes and middleware.
//
// Returns the configured gin engine.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle())

	engine.GET("/", handler.Welcome)

	authHandler := handler.NewAuth(r.authService, r.logger)
	auth := engine.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	userHandler := handler.NewUser(r.userService, r.logger)
	user := engine.Group("/user")
	user.Use(authenticate.Handle())
	{
		user.GET("/:id", userHandler.Get)
	}

	return engine
}
