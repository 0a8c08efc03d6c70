package api

import (
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotePin flips the pin flag on one of the user's own notes
func (a *API) NotePin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, ok := a.noteBySlug(c, false)
	if !ok {
		return
	}

	if note.AuthorID != userID {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "You can only pin your own notes",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.
		Model(model.Note{}).
		Where("id = ?", note.ID).
		Update("pin", !note.Pin).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to toggle pin", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pin": !note.Pin,
	})
}
