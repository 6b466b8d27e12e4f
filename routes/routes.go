package routes

import (
	"net/http"
	"time"

	"cnapp/handlers"
	"cnapp/logger"
	"cnapp/middleware"
	"cnapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Auth     *services.AuthService
	Messages *services.MessageService
	// Store is pinged by /health. Nil skips the check.
	Store          handlers.Pinger
	Log            *logger.Logger
	AllowedOrigins []string
	RequireAuth    bool
}

func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(d.Log),
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:  d.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization"},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	health := handlers.NewHealthHandler(d.Store, d.Log)
	authH := handlers.NewAuthHandler(d.Auth, d.Log)
	messageH := handlers.NewMessageHandler(d.Messages, d.Log)
	userH := handlers.NewUserHandler(d.Auth, d.Log)

	// Public routes
	router.GET("/", health.Root)
	router.GET("/health", health.Health)
	router.POST("/register", authH.Register)
	router.POST("/login", authH.Login)

	// Message and user routes are open unless REQUIRE_AUTH is set.
	data := router.Group("/")
	if d.RequireAuth {
		data.Use(middleware.JWTAuthMiddleware(d.Auth))
	}
	data.POST("/messages", messageH.SendMessage)
	data.GET("/messages", messageH.GetMessages)
	data.GET("/users", userH.GetUsers)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "endpoint not found"})
	})

	return router
}
