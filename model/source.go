package model

// Source types a note can be attributed to
const (
	SourceBook    = "book"
	SourceCourse  = "course"
	SourceVideo   = "video"
	SourceArticle = "article"
	SourceLecture = "lecture"
	SourceOther   = "other"
)

// SourceTypes maps a source type to its display name
var SourceTypes = map[string]string{
	SourceBook:    "Book",
	SourceCourse:  "Course",
	SourceVideo:   "Video",
	SourceArticle: "Article",
	SourceLecture: "Lecture",
	SourceOther:   "Other",
}

type Source struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Title       string `gorm:"size:100;not null" json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Type        string `gorm:"size:20;not null;default:'other'" json:"type"`

	Notes []Note `gorm:"foreignKey:SourceID" json:"-"`
}
