package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookworm-app/bookworm/internal/auth"
	"github.com/bookworm-app/bookworm/internal/entities"
)

// ProgressStore defines progress-record operations used by the controller.
type ProgressStore interface {
	Create(record *entities.BookProgress) error
	GetByID(id uint) (*entities.BookProgress, error)
	UpdatePageProgress(id uint, pageProgress int) (*entities.BookProgress, error)
	ListForUser(userID uint) ([]entities.BookProgress, error)
}

type ProgressController struct {
	store ProgressStore
}

func NewProgressController(store ProgressStore) *ProgressController {
	return &ProgressController{store: store}
}

type createProgressRequest struct {
	BookID       uint `json:"bookId" validate:"required"`
	PageProgress *int `json:"pageProgress" validate:"required,gte=0"`
}

type updateProgressRequest struct {
	PageProgress *int `json:"pageProgress" validate:"required,gte=0"`
}

// CreateProgress records a user's first progress for a book.
// POST /bookprogress
func (pc *ProgressController) CreateProgress(c *gin.Context) {
	userID := auth.GetUserID(c)

	var req createProgressRequest
	if !bindStrict(c, &req) {
		return
	}

	record := &entities.BookProgress{
		UserID:       userID,
		BookID:       req.BookID,
		PageProgress: *req.PageProgress,
	}
	if err := pc.store.Create(record); err != nil {
		// Unknown bookId fails the foreign key constraint
		respondInternalError(c, err, "create progress")
		return
	}

	respondCreated(c, record)
}

// UpdateProgress mutates an existing progress record owned by the caller.
// PATCH /bookprogress/:id
func (pc *ProgressController) UpdateProgress(c *gin.Context) {
	userID := auth.GetUserID(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req updateProgressRequest
	if !bindStrict(c, &req) {
		return
	}

	existing, err := pc.store.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondNotFound(c, "progress")
			return
		}
		respondInternalError(c, err, "get progress")
		return
	}

	// A record owned by someone else is reported exactly like a missing one,
	// so progress ids cannot be enumerated.
	if existing.UserID != userID {
		respondNotFound(c, "progress")
		return
	}

	if *req.PageProgress > existing.Book.PageCount {
		respondBadRequest(c, "page progress exceeds book page count")
		return
	}

	updated, err := pc.store.UpdatePageProgress(id, *req.PageProgress)
	if err != nil {
		respondInternalError(c, err, "update progress")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// ListMyProgress returns all progress records owned by the caller, each
// joined with its book.
// GET /my-progress
func (pc *ProgressController) ListMyProgress(c *gin.Context) {
	userID := auth.GetUserID(c)

	records, err := pc.store.ListForUser(userID)
	if err != nil {
		respondInternalError(c, err, "list progress")
		return
	}
	if records == nil {
		records = []entities.BookProgress{}
	}

	c.JSON(http.StatusOK, records)
}
