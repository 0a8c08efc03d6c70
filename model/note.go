package model

import "time"

type Note struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug     string `gorm:"uniqueIndex;not null" json:"slug"`
	AuthorID string `gorm:"index;not null" json:"-"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`

	Title string `gorm:"size:100;not null" json:"title"`
	Body  string `gorm:"type:text" json:"body"`

	Draft     bool `gorm:"default:false" json:"draft"`
	Pin       bool `gorm:"default:false" json:"pin"`
	Anonymous bool `gorm:"default:false" json:"anonymous"`

	Views int64 `gorm:"default:0" json:"views"`

	// Set when the note was created as a fork of another note
	ForkOfID *uint `json:"fork_of,omitempty"`

	SourceID *uint   `json:"-"`
	Source   *Source `gorm:"foreignKey:SourceID" json:"source,omitempty"`

	Tags      []Tag  `gorm:"many2many:note_tags" json:"tags"`
	Likes     []User `gorm:"many2many:note_likes" json:"-"`
	Bookmarks []User `gorm:"many2many:note_bookmarks" json:"-"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
