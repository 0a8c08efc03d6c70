// Package model defines database models
package model

import "time"

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"unique;not null" json:"email"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	FirstName    string `gorm:"not null" json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `gorm:"not null" json:"-"`
	Bio          string `gorm:"size:700" json:"bio"`

	Notes           []Note `gorm:"foreignKey:AuthorID" json:"-"`
	LikedNotes      []Note `gorm:"many2many:note_likes" json:"-"`
	BookmarkedNotes []Note `gorm:"many2many:note_bookmarks" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
