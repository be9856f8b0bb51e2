// Package books provides database operations for the book catalog.
//
// The catalog is read-only at runtime; books are inserted by the seed
// loader only.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"database/sql"

	"gorm.io/gorm"

	"github.com/bookworm-app/bookworm/internal/entities"
)

// BookWithProgressCount is a catalog row annotated with the number of
// progress records referencing the book.
type BookWithProgressCount struct {
	entities.Book
	BookProgressCount int64 `json:"bookProgressCount"`
}

// ProgressStats holds the aggregates for a single book. Average is NULL when
// the book has no progress records, so callers can distinguish "no readers"
// from an average of zero.
type ProgressStats struct {
	Count   int64
	Average sql.NullFloat64
}

// Repository handles all book catalog database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllBooks retrieves every book annotated with its progress-record count.
func (r *Repository) GetAllBooks() ([]BookWithProgressCount, error) {
	var results []BookWithProgressCount
	err := r.db.Model(&entities.Book{}).
		Select("books.*, COUNT(book_progresses.id) AS book_progress_count").
		Joins("LEFT JOIN book_progresses ON book_progresses.book_id = books.id").
		Group("books.id").
		Order("books.id ASC").
		Scan(&results).Error
	return results, err
}

// GetBookByID retrieves a book by its ID.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.First(&book, id).Error
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetProgressStats returns the progress-record count and mean page progress
// for a book.
func (r *Repository) GetProgressStats(bookID uint) (ProgressStats, error) {
	var stats ProgressStats
	row := r.db.Model(&entities.BookProgress{}).
		Where("book_id = ?", bookID).
		Select("COUNT(*), AVG(page_progress)").
		Row()
	if err := row.Scan(&stats.Count, &stats.Average); err != nil {
		return ProgressStats{}, err
	}
	return stats, nil
}

// CreateBook inserts a catalog entry. Used by the seed loader only.
func (r *Repository) CreateBook(book *entities.Book) error {
	return r.db.Create(book).Error
}
