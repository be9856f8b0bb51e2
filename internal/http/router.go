package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	// Create controllers with appropriate interfaces
	health := NewHealthController(cfg.Database, cfg.Version)
	authController := NewAuthController(cfg.AuthService)
	booksController := NewBooksController(cfg.BookStore)
	progressController := NewProgressController(cfg.ProgressStore)

	// Health endpoint
	router.GET("/health", health.Status)

	// Identity endpoints
	router.POST("/register", authController.Register)
	router.POST("/login", authController.Login)

	// Public catalog endpoints
	router.GET("/books", booksController.GetAllBooks)
	router.GET("/books/:id", booksController.GetBookByID)

	// Progress endpoints require a valid bearer token
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	protected.POST("/bookprogress", progressController.CreateProgress)
	protected.PATCH("/bookprogress/:id", progressController.UpdateProgress)
	protected.GET("/my-progress", progressController.ListMyProgress)

	return router
}
