package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteList serves the home page listing: every public note, newest first by
// default, optionally filtered down to one tag or source
func (a *API) NoteList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	p, ok := parseListParams(c)
	if !ok {
		return
	}

	q := a.orderedNotes(p).Where("notes.draft = ?", false)

	if tagSlug := c.Query("tag"); tagSlug != "" {
		var tag model.Tag

		if err := a.DB.Where("slug = ?", tagSlug).First(&tag).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error":     "Tag not found",
					"requestID": requestID,
				})
				return
			}

			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up tag", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		q = q.Joins("JOIN note_tags ON note_tags.note_id = notes.id AND note_tags.tag_id = ?", tag.ID)
	}

	if sourceSlug := c.Query("source"); sourceSlug != "" {
		var source model.Source

		if err := a.DB.Where("slug = ?", sourceSlug).First(&source).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{
					"error":     "Source not found",
					"requestID": requestID,
				})
				return
			}

			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to look up source", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		q = q.Where("notes.source_id = ?", source.ID)
	}

	var notes []model.Note

	if err := q.Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"notes": stripAnonymousAuthors(notes),
		"page":  p.Page,
	})
}
