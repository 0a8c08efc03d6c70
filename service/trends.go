package service

import (
	"fmt"
	"notedapp/noted/model"
	"time"

	"github.com/jellydator/ttlcache/v2"
	"gorm.io/gorm"
)

// Trends serves the expensive aggregation queries behind the welcome page
// (most viewed notes, biggest tags) from a TTL cache. Three days of staleness
// is fine for a landing page.
type Trends struct {
	db    *gorm.DB
	cache *ttlcache.Cache
}

func NewTrends(db *gorm.DB) *Trends {
	c := ttlcache.NewCache()
	c.SetTTL(72 * time.Hour)
	c.SkipTTLExtensionOnHit(true)

	return &Trends{db: db, cache: c}
}

// PopularNotes returns the n most viewed public notes
func (t *Trends) PopularNotes(n int) ([]model.Note, error) {
	key := fmt.Sprintf("popular:%d", n)

	if v, err := t.cache.Get(key); err == nil {
		return v.([]model.Note), nil
	}

	var notes []model.Note

	err := t.db.
		Preload("Tags").
		Where("draft = ?", false).
		Order("views DESC").
		Limit(n).
		Find(&notes).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to query popular notes, %w", err)
	}

	t.cache.Set(key, notes)
	return notes, nil
}

// TopTags returns the n tags carried by the most public notes
func (t *Trends) TopTags(n int) ([]model.TagCount, error) {
	key := fmt.Sprintf("toptags:%d", n)

	if v, err := t.cache.Get(key); err == nil {
		return v.([]model.TagCount), nil
	}

	var tags []model.TagCount

	err := t.db.
		Table("tags").
		Select("tags.*, COUNT(note_tags.note_id) AS note_count").
		Joins("JOIN note_tags ON note_tags.tag_id = tags.id").
		Joins("JOIN notes ON notes.id = note_tags.note_id AND notes.draft = ?", false).
		Group("tags.id").
		Order("note_count DESC").
		Limit(n).
		Find(&tags).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to query top tags, %w", err)
	}

	t.cache.Set(key, tags)
	return tags, nil
}

// Purge drops every cached aggregate. Used by tests.
func (t *Trends) Purge() {
	t.cache.Purge()
}
