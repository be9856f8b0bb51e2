package http

import (
	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/database"
)

// RouterConfig holds all dependencies needed to construct the router.
// Everything is injected explicitly; there is no process-wide state.
type RouterConfig struct {
	Database       *database.Database
	BookStore      BookStore
	ProgressStore  ProgressStore
	AuthService    AuthService
	AuthMiddleware *auth.Middleware

	CORSAllowedOrigins []string
	Version            string
}
