// Package auth provides credential verification and bearer-token
// authentication for the application.
//
// Login issues a signed, stateless HS256 JWT carrying the user id; protected
// routes verify the token with Middleware and read the user id from the Gin
// context. Passwords are stored as bcrypt hashes and compared in constant
// time; login failures are indistinguishable between unknown usernames and
// wrong passwords.
//
// # Configuration
//
//	JWT_SECRET=<random-string>  # Auto-generated at startup if empty
//	TOKEN_EXPIRY=24h            # Token lifetime
//	BCRYPT_COST=12              # bcrypt cost factor
//
// # Usage
//
//	authService := auth.NewService(usersRepo, cfg.Auth)
//	authMiddleware := auth.NewMiddleware([]byte(cfg.Auth.JWTSecret))
//
//	protected := router.Group("/")
//	protected.Use(authMiddleware.RequireAuth())
//
// Extract the user in handlers:
//
//	userID := auth.GetUserID(c)
package auth
