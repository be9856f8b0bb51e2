package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/config"
	"github.com/bookworm-app/bookworm/internal/database"
	"github.com/bookworm-app/bookworm/internal/database/books"
	"github.com/bookworm-app/bookworm/internal/database/progress"
	"github.com/bookworm-app/bookworm/internal/database/users"
	http_controllers "github.com/bookworm-app/bookworm/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then shut down gracefully within the
	// configured timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting bookworm v%s", version)

	// Tokens signed with an ephemeral secret stop verifying after a restart
	if cfg.Auth.JWTSecret == "" {
		secret, err := auth.GenerateSigningSecret()
		if err != nil {
			log.Fatalf("Failed to generate signing secret: %v", err)
		}
		cfg.Auth.JWTSecret = secret
		log.Printf("Generated token signing secret (set JWT_SECRET to persist)")
	}

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Create domain repositories
	usersRepo := users.NewRepository(db.DB)
	booksRepo := books.NewRepository(db.DB)
	progressRepo := progress.NewRepository(db.DB)

	// Create auth service and middleware
	authService := auth.NewService(usersRepo, cfg.Auth)
	authMiddleware := auth.NewMiddleware([]byte(cfg.Auth.JWTSecret))

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:           db,
		BookStore:          booksRepo,
		ProgressStore:      progressRepo,
		AuthService:        authService,
		AuthMiddleware:     authMiddleware,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:            version,
	}

	router := http_controllers.NewRouter(routerCfg)

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
