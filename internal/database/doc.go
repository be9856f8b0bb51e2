// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── books/           # Book catalog reads and aggregate stats
//	├── progress/        # Book progress CRUD
//	└── users/           # User management
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./bookworm.db")
//
//	// Create domain-specific repositories
//	booksRepo := books.NewRepository(db.DB)
//	progressRepo := progress.NewRepository(db.DB)
//	usersRepo := users.NewRepository(db.DB)
//
//	// Use repositories
//	book, err := booksRepo.GetBookByID(123)
//	records, err := progressRepo.ListForUser(userID)
//
// Repositories are injected into HTTP controllers through the small
// per-controller store interfaces declared in internal/http.
package database
