package api

import (
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteForkPrefill returns the fields of a note prepared for the fork form:
// title, body, tags and source carried over, everything else reset
func (a *API) NoteForkPrefill(c *gin.Context) {
	note, ok := a.noteBySlug(c, true)
	if !ok {
		return
	}

	tags := make([]string, 0, len(note.Tags))
	for _, t := range note.Tags {
		tags = append(tags, t.Name)
	}

	prefill := gin.H{
		"title":   note.Title,
		"body":    note.Body,
		"tags":    tags,
		"fork_of": note.ID,
	}

	if note.Source != nil {
		prefill["source"] = gin.H{
			"title":       note.Source.Title,
			"link":        note.Source.Link,
			"description": note.Source.Description,
			"type":        note.Source.Type,
		}
	}

	c.JSON(http.StatusOK, prefill)
}

// NoteFork creates a new note marked as a fork of an existing one
func (a *API) NoteFork(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	parent, ok := a.noteBySlug(c, false)
	if !ok {
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

	note, ok := a.buildNote(c, &data, userID)
	if !ok {
		return
	}

	note.ForkOfID = &parent.ID
	if note.SourceID == nil {
		note.SourceID = parent.SourceID
	}

	if err := a.DB.Create(note).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create fork", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !note.Draft {
		service.RecordAction(a.DB, userID, model.VerbCreates, model.EntityNote, strconv.FormatUint(uint64(note.ID), 10))
	}

	c.JSON(http.StatusCreated, gin.H{
		"note": note,
	})
}
