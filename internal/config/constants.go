package config

const (
	// DefaultDatabasePath is the default path for the application database
	DefaultDatabasePath = "./bookworm.db"

	// DefaultSeedDir is the default directory holding seed fixture files
	DefaultSeedDir = "./data"
)
