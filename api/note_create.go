package api

import (
	"fmt"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type sourceBody struct {
	Title       string `json:"title" binding:"required,max=100"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type noteBody struct {
	Title     string      `json:"title" binding:"required,max=100"`
	Body      string      `json:"body"`
	Draft     bool        `json:"draft"`
	Anonymous bool        `json:"anonymous"`
	Tags      []string    `json:"tags"`
	Source    *sourceBody `json:"source"`
}

// upsertTags resolves tag names to records, creating the ones that
// don't exist yet
func (a *API) upsertTags(names []string) ([]model.Tag, error) {
	var tags []model.Tag

	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		tag := model.Tag{Name: name, Slug: service.Slugify(name)}

		err := a.DB.Where("name = ?", name).FirstOrCreate(&tag).Error
		if err != nil {
			return nil, fmt.Errorf("failed to upsert tag %q, %w", name, err)
		}

		tags = append(tags, tag)
	}

	return tags, nil
}

// upsertSource resolves an attribution source, creating it on first mention
func (a *API) upsertSource(s *sourceBody) (*model.Source, error) {
	if s == nil {
		return nil, nil
	}

	if _, ok := model.SourceTypes[s.Type]; !ok {
		s.Type = model.SourceOther
	}

	source := model.Source{
		Slug:        service.Slugify(s.Title),
		Title:       s.Title,
		Link:        s.Link,
		Description: s.Description,
		Type:        s.Type,
	}

	err := a.DB.Where("slug = ?", source.Slug).FirstOrCreate(&source).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert source %q, %w", s.Title, err)
	}

	return &source, nil
}

func (a *API) buildNote(c *gin.Context, data *noteBody, authorID string) (*model.Note, bool) {
	requestID := c.MustGet("requestID").(string)

	tags, err := a.upsertTags(data.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert tags", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	source, err := a.upsertSource(data.Source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert source", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	slug, err := service.NoteSlug(data.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate note slug", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	note := &model.Note{
		Slug:      slug,
		AuthorID:  authorID,
		Title:     data.Title,
		Body:      data.Body,
		Draft:     data.Draft,
		Anonymous: data.Anonymous,
		Tags:      tags,
	}

	if source != nil {
		note.SourceID = &source.ID
	}

	return note, true
}

// NoteCreate handles the note form, for both publishing and saving a draft
func (a *API) NoteCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data noteBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	note, ok := a.buildNote(c, &data, userID)
	if !ok {
		return
	}

	if err := a.DB.Create(note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !note.Draft {
		service.RecordAction(a.DB, userID, model.VerbCreates, model.EntityNote, strconv.FormatUint(uint64(note.ID), 10))
	}

	c.JSON(http.StatusCreated, gin.H{
		"note": note,
	})
}
