package entities

import (
	"time"
)

// User is an account that owns reading progress. The password is stored as a
// bcrypt hash and never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	PasswordHash string    `gorm:"size:100;not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Book is a catalog entry. Books are created by the seed loader only and are
// immutable at runtime.
type Book struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"index;size:512" json:"title"`
	Author    string    `gorm:"index;size:256" json:"author"`
	PageCount int       `gorm:"not null" json:"pageCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookProgress records how far a user has read a book. PageProgress never
// exceeds the related book's PageCount once an update has been accepted.
type BookProgress struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"userId"`
	BookID       uint      `gorm:"index;not null" json:"bookId"`
	PageProgress int       `gorm:"not null" json:"pageProgress"`
	Book         *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	User         *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
