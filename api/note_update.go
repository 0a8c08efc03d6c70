package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteUpdate edits a note owned by the signed in user. The slug stays
// stable across edits so shared links keep working.
func (a *API) NoteUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, ok := a.noteBySlug(c, false)
	if !ok {
		return
	}

	if note.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You can only edit your own notes",
			"requestID": requestID,
		})
		return
	}

	var data noteBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	tags, err := a.upsertTags(data.Tags)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert tags", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	source, err := a.upsertSource(data.Source)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to upsert source", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	note.Title = data.Title
	note.Body = data.Body
	note.Draft = data.Draft
	note.Anonymous = data.Anonymous

	note.SourceID = nil
	if source != nil {
		note.SourceID = &source.ID
	}

	if err := a.DB.Save(note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.DB.Model(note).Association("Tags").Replace(tags); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update note tags", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	note.Tags = tags

	c.JSON(http.StatusOK, gin.H{
		"note": note,
	})
}

// NoteDelete removes a note owned by the signed in user
func (a *API) NoteDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, ok := a.noteBySlug(c, false)
	if !ok {
		return
	}

	if note.AuthorID != userID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":     "You can only delete your own notes",
			"requestID": requestID,
		})
		return
	}

	if err := a.DB.Select("Tags", "Likes", "Bookmarks").Delete(note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"deleted": true,
	})
}
