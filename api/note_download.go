package api

import (
	"errors"
	"fmt"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NoteDownload renders a note as a file attachment in the requested format.
// The note is looked up without the draft veil: asking for a file of someone
// else's draft is a bad request, not a missing note.
func (a *API) NoteDownload(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var note model.Note

	err := a.DB.
		Preload("Tags").
		Preload("Source").
		Preload("Author").
		Where("slug = ?", c.Param("slug")).
		First(&note).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up note", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if note.Draft && note.AuthorID != userID {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Can't generate a file",
			"requestID": requestID,
		})
		return
	}

	file, err := service.BuildNoteFile(&note, c.Param("filetype"))
	if err != nil {
		if errors.Is(err, service.ErrUnknownFiletype) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Can't generate a file",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to build note file", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	service.RecordAction(a.DB, userID, model.VerbDownloads, model.EntityNote, strconv.FormatUint(uint64(note.ID), 10))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
