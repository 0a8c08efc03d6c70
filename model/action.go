package model

import "time"

// Action verbs
const (
	VerbNew       = "new"
	VerbCreates   = "creates"
	VerbFollows   = "follows"
	VerbBookmarks = "bookmarks"
	VerbLikes     = "likes"
	VerbDownloads = "downloads"
)

// Entity kinds an action can point at
const (
	EntityUser = "user"
	EntityNote = "note"
)

// Action is a generic activity feed record. Actor and target are polymorphic
// references expressed as an entity kind plus the entity's ID rendered as a
// string, so one table can point at both users and notes.
type Action struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	ActorType string `gorm:"size:20;index;not null" json:"actor_type"`
	ActorID   string `gorm:"index;not null" json:"actor_id"`

	Verb string `gorm:"size:20;not null" json:"verb"`

	TargetType string `gorm:"size:20;index" json:"target_type,omitempty"`
	TargetID   string `gorm:"index" json:"target_id,omitempty"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
