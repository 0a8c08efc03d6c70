package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SourceTypes returns the source type enum for the note form
func (a *API) SourceTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types": model.SourceTypes,
	})
}

// SourceNotes lists public notes attributed to a source
func (a *API) SourceNotes(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var source model.Source

	if err := a.DB.Where("slug = ?", c.Param("slug")).First(&source).Error; err != nil {
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

	p, ok := parseListParams(c)
	if !ok {
		return
	}

	var notes []model.Note

	err := a.orderedNotes(p).
		Where("notes.source_id = ? AND notes.draft = ?", source.ID, false).
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch source notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"source": source,
		"notes":  stripAnonymousAuthors(notes),
	})
}
