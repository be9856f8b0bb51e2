package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookworm-app/bookworm/internal/database/books"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// BookStore defines catalog operations used by the controller.
type BookStore interface {
	GetAllBooks() ([]books.BookWithProgressCount, error)
	GetBookByID(id uint) (*entities.Book, error)
	GetProgressStats(bookID uint) (books.ProgressStats, error)
}

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// bookDetailResponse is a book plus its progress aggregates.
// AveragePageProgress is null when the book has no progress records.
type bookDetailResponse struct {
	entities.Book
	BookProgressCount   int64    `json:"bookProgressCount"`
	AveragePageProgress *float64 `json:"averagePageProgress"`
}

// GetAllBooks returns every book annotated with its progress-record count.
// GET /books
func (bc *BooksController) GetAllBooks(c *gin.Context) {
	catalog, err := bc.store.GetAllBooks()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	if catalog == nil {
		catalog = []books.BookWithProgressCount{}
	}

	c.JSON(http.StatusOK, catalog)
}

// GetBookByID returns a single book with its progress count and mean progress.
// GET /books/:id
func (bc *BooksController) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "book")
			return
		}
		respondInternalError(c, err, "get book")
		return
	}

	stats, err := bc.store.GetProgressStats(id)
	if err != nil {
		respondInternalError(c, err, "book progress stats")
		return
	}

	resp := bookDetailResponse{
		Book:              *book,
		BookProgressCount: stats.Count,
	}
	if stats.Average.Valid {
		resp.AveragePageProgress = &stats.Average.Float64
	}

	c.JSON(http.StatusOK, resp)
}
