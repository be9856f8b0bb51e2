package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/database"
	"github.com/bookworm-app/bookworm/internal/database/books"
	"github.com/bookworm-app/bookworm/internal/database/progress"
	"github.com/bookworm-app/bookworm/internal/database/users"
	"github.com/bookworm-app/bookworm/internal/entities"
)

func setupLoaderTest(t *testing.T) (*Loader, *database.Database, func()) {
	t.Helper()

	dbPath := "./test_seed_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	loader := NewLoader(
		users.NewRepository(db.DB),
		books.NewRepository(db.DB),
		progress.NewRepository(db.DB),
		bcrypt.MinCost,
	)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return loader, db, cleanup
}

func writeFixtures(t *testing.T, usersJSON, booksJSON, progressJSON string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, UsersFile), []byte(usersJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, BooksFile), []byte(booksJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProgressFile), []byte(progressJSON), 0o644))
	return dir
}

func TestLoader_LoadDir(t *testing.T) {
	t.Run("loads fixtures and skips null entries", func(t *testing.T) {
		loader, db, cleanup := setupLoaderTest(t)
		defer cleanup()

		dir := writeFixtures(t,
			`[{"username": "reader123", "password": "password123"}, null, {"username": "bookfan42", "password": "turtlesallthewaydown"}]`,
			`[{"title": "Dune", "author": "Frank Herbert", "pageCount": 412}, null]`,
			`[null, {"userId": 1, "bookId": 1, "pageProgress": 42}]`,
		)

		summary, err := loader.LoadDir(dir)
		require.NoError(t, err)

		assert.Equal(t, 2, summary.Users)
		assert.Equal(t, 1, summary.Books)
		assert.Equal(t, 1, summary.Progress)

		// Seed passwords are stored hashed
		var stored entities.User
		require.NoError(t, db.DB.Where("username = ?", "reader123").First(&stored).Error)
		assert.NoError(t, auth.CheckPassword("password123", stored.PasswordHash))

		var record entities.BookProgress
		require.NoError(t, db.DB.First(&record).Error)
		assert.Equal(t, 42, record.PageProgress)
	})

	t.Run("missing fixture file aborts", func(t *testing.T) {
		loader, _, cleanup := setupLoaderTest(t)
		defer cleanup()

		summary, err := loader.LoadDir(t.TempDir())
		require.Error(t, err)
		assert.Contains(t, err.Error(), UsersFile)
		assert.Zero(t, summary.Users)
	})

	t.Run("malformed JSON aborts", func(t *testing.T) {
		loader, _, cleanup := setupLoaderTest(t)
		defer cleanup()

		dir := writeFixtures(t, `{not json`, `[]`, `[]`)

		_, err := loader.LoadDir(dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), UsersFile)
	})

	t.Run("dangling progress reference aborts with partial counts", func(t *testing.T) {
		loader, _, cleanup := setupLoaderTest(t)
		defer cleanup()

		dir := writeFixtures(t,
			`[{"username": "reader123", "password": "password123"}]`,
			`[{"title": "Dune", "author": "Frank Herbert", "pageCount": 412}]`,
			`[{"userId": 1, "bookId": 99, "pageProgress": 10}]`,
		)

		summary, err := loader.LoadDir(dir)
		require.Error(t, err)
		assert.Equal(t, 1, summary.Users)
		assert.Equal(t, 1, summary.Books)
		assert.Zero(t, summary.Progress)
	})
}
