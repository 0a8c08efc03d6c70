package api

import (
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotePersonal returns everything the signed in user sees on their own page:
// published notes, pins, drafts and bookmarks
func (a *API) NotePersonal(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	p, ok := parseListParams(c)
	if !ok {
		return
	}

	var all []model.Note

	err := a.orderedNotes(p).
		Where("notes.author_id = ?", userID).
		Find(&all).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch personal notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var notes, pins, drafts []model.Note
	for _, n := range all {
		switch {
		case n.Draft:
			drafts = append(drafts, n)
		default:
			notes = append(notes, n)
		}

		if n.Pin {
			pins = append(pins, n)
		}
	}

	var bookmarks []model.Note

	err = a.DB.
		Preload("Tags").
		Joins("JOIN note_bookmarks ON note_bookmarks.note_id = notes.id AND note_bookmarks.user_id = ?", userID).
		Find(&bookmarks).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch bookmarks", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	sidenotes, err := a.Trends.PopularNotes(5)
	if err != nil {
		zap.L().Error("Failed to fetch sidenotes", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"notes":     notes,
		"pins":      pins,
		"drafts":    drafts,
		"bookmarks": stripAnonymousAuthors(bookmarks),
		"sidenotes": stripAnonymousAuthors(sidenotes),
	})
}
