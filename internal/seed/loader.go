// Package seed populates the database from static JSON fixture files.
//
// The loader is a one-shot utility invoked through the "seed" CLI command;
// it is not part of runtime request handling. Null entries inside the
// fixture arrays are skipped; the first error aborts the run without retry.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/database/books"
	"github.com/bookworm-app/bookworm/internal/database/progress"
	"github.com/bookworm-app/bookworm/internal/database/users"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// Fixture file names expected inside the seed directory.
const (
	UsersFile    = "users.json"
	BooksFile    = "books.json"
	ProgressFile = "book_progress.json"
)

// UserFixture is a seed user. The password is plaintext in the fixture and
// hashed on insert.
type UserFixture struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// BookFixture is a seed catalog entry.
type BookFixture struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"pageCount"`
}

// ProgressFixture is a seed progress record. It references users and books
// by their insertion order (1-based ids).
type ProgressFixture struct {
	UserID       uint `json:"userId"`
	BookID       uint `json:"bookId"`
	PageProgress int  `json:"pageProgress"`
}

// Summary reports how many records each fixture file produced.
type Summary struct {
	Users    int
	Books    int
	Progress int
}

// Loader inserts fixture records through the domain repositories.
type Loader struct {
	users      *users.Repository
	books      *books.Repository
	progress   *progress.Repository
	bcryptCost int
}

// NewLoader creates a seed loader.
func NewLoader(usersRepo *users.Repository, booksRepo *books.Repository, progressRepo *progress.Repository, bcryptCost int) *Loader {
	return &Loader{
		users:      usersRepo,
		books:      booksRepo,
		progress:   progressRepo,
		bcryptCost: bcryptCost,
	}
}

// LoadDir loads all three fixture files from dir. Users and books are
// inserted before progress records so the references resolve.
func (l *Loader) LoadDir(dir string) (Summary, error) {
	var summary Summary

	userFixtures, err := readFixtures[UserFixture](filepath.Join(dir, UsersFile))
	if err != nil {
		return summary, err
	}
	for _, fixture := range userFixtures {
		if fixture == nil {
			continue
		}
		hash, err := auth.HashPassword(fixture.Password, l.bcryptCost)
		if err != nil {
			return summary, fmt.Errorf("hash password for %q: %w", fixture.Username, err)
		}
		if _, err := l.users.CreateUser(fixture.Username, hash); err != nil {
			return summary, fmt.Errorf("insert user %q: %w", fixture.Username, err)
		}
		summary.Users++
	}

	bookFixtures, err := readFixtures[BookFixture](filepath.Join(dir, BooksFile))
	if err != nil {
		return summary, err
	}
	for _, fixture := range bookFixtures {
		if fixture == nil {
			continue
		}
		book := &entities.Book{
			Title:     fixture.Title,
			Author:    fixture.Author,
			PageCount: fixture.PageCount,
		}
		if err := l.books.CreateBook(book); err != nil {
			return summary, fmt.Errorf("insert book %q: %w", fixture.Title, err)
		}
		summary.Books++
	}

	progressFixtures, err := readFixtures[ProgressFixture](filepath.Join(dir, ProgressFile))
	if err != nil {
		return summary, err
	}
	for _, fixture := range progressFixtures {
		if fixture == nil {
			continue
		}
		record := &entities.BookProgress{
			UserID:       fixture.UserID,
			BookID:       fixture.BookID,
			PageProgress: fixture.PageProgress,
		}
		if err := l.progress.Create(record); err != nil {
			return summary, fmt.Errorf("insert progress for user %d book %d: %w", fixture.UserID, fixture.BookID, err)
		}
		summary.Progress++
	}

	return summary, nil
}

// readFixtures parses a JSON array of fixtures. Entries stay as pointers so
// JSON nulls decode to nil and can be skipped by the caller.
func readFixtures[T any](path string) ([]*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}

	var fixtures []*T
	if err := json.Unmarshal(data, &fixtures); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", filepath.Base(path), err)
	}

	return fixtures, nil
}
