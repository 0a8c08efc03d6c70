package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TagTop returns the tags carried by the most notes
func (a *API) TagTop(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	n, err := strconv.Atoi(c.DefaultQuery("n", "7"))
	if err != nil || n <= 0 || n > 100 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "n must be between 1 and 100",
			"requestID": requestID,
		})
		return
	}

	tags, err := a.Trends.TopTags(n)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch top tags", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tags": tags,
	})
}

// TagNotes lists public notes carrying a tag
func (a *API) TagNotes(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var tag model.Tag

	if err := a.DB.Where("slug = ?", c.Param("slug")).First(&tag).Error; err != nil {
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

	p, ok := parseListParams(c)
	if !ok {
		return
	}

	var notes []model.Note

	err := a.orderedNotes(p).
		Joins("JOIN note_tags ON note_tags.note_id = notes.id AND note_tags.tag_id = ?", tag.ID).
		Where("notes.draft = ?", false).
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch tag notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tag":   tag,
		"notes": stripAnonymousAuthors(notes),
	})
}
