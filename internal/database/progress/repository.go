// Package progress provides database operations for book progress records.
//
// # Usage
//
//	repo := progress.NewRepository(db)
//	records, err := repo.ListForUser(userID)
package progress

import (
	"gorm.io/gorm"

	"github.com/bookworm-app/bookworm/internal/entities"
)

// Repository handles all book progress database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new progress repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new progress record.
func (r *Repository) Create(record *entities.BookProgress) error {
	return r.db.Create(record).Error
}

// GetByID retrieves a progress record with its related book.
func (r *Repository) GetByID(id uint) (*entities.BookProgress, error) {
	var record entities.BookProgress
	err := r.db.Preload("Book").First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdatePageProgress mutates the page value of an existing record in place
// and reloads it. Last write wins; concurrent updates are not coordinated.
func (r *Repository) UpdatePageProgress(id uint, pageProgress int) (*entities.BookProgress, error) {
	err := r.db.Model(&entities.BookProgress{}).
		Where("id = ?", id).
		Update("page_progress", pageProgress).Error
	if err != nil {
		return nil, err
	}
	return r.GetByID(id)
}

// ListForUser retrieves all progress records owned by a user, each joined
// with its book.
func (r *Repository) ListForUser(userID uint) ([]entities.BookProgress, error) {
	var records []entities.BookProgress
	err := r.db.Preload("Book").
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&records).Error
	return records, err
}
