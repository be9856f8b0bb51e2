package cli

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/bookworm-app/bookworm/internal/config"
	"github.com/bookworm-app/bookworm/internal/database"
	"github.com/bookworm-app/bookworm/internal/database/books"
	"github.com/bookworm-app/bookworm/internal/database/progress"
	"github.com/bookworm-app/bookworm/internal/database/users"
	"github.com/bookworm-app/bookworm/internal/seed"
)

// SeedCommand populates the database from static JSON fixture files.
type SeedCommand struct {
	DatabasePath string
	SeedDir      string
	BcryptCost   int
}

// NewSeedCommand creates a new SeedCommand.
func NewSeedCommand() *SeedCommand {
	return &SeedCommand{}
}

// ParseFlags parses command line flags.
func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file to populate")
	fs.StringVar(&cmd.SeedDir, "dir", config.DefaultSeedDir, "Directory holding users.json, books.json and book_progress.json")
	fs.IntVar(&cmd.BcryptCost, "bcrypt-cost", 12, "bcrypt cost used when hashing seed user passwords")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Populate the database from static fixture files.\n\n")
		fmt.Fprintf(os.Stderr, "Null entries in the fixture arrays are skipped. The run stops at the\n")
		fmt.Fprintf(os.Stderr, "first error without retrying.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Seed the default database from ./data:\n")
		fmt.Fprintf(os.Stderr, "  %s seed\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Seed a specific database from another directory:\n")
		fmt.Fprintf(os.Stderr, "  %s seed -db ./bookworm.db -dir ./fixtures\n", os.Args[0])
	}

	return fs.Parse(args)
}

// Run executes the seed command.
func (cmd *SeedCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	loader := seed.NewLoader(
		users.NewRepository(db.DB),
		books.NewRepository(db.DB),
		progress.NewRepository(db.DB),
		cmd.BcryptCost,
	)

	summary, err := loader.LoadDir(cmd.SeedDir)
	if err != nil {
		return err
	}

	log.Printf("Seeding completed successfully: %d users, %d books, %d progress records",
		summary.Users, summary.Books, summary.Progress)
	return nil
}
