package model

type Tag struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"uniqueIndex;size:50;not null" json:"name"`
	Slug string `gorm:"uniqueIndex;size:50;not null" json:"slug"`

	Notes []Note `gorm:"many2many:note_tags" json:"-"`
}

// TagCount is the aggregation row returned by the top-tags query
type TagCount struct {
	Tag
	NoteCount int64 `json:"note_count"`
}
