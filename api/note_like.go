package api

import (
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/service"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// toggleRelation adds or removes the requester from a note's many2many user
// set (likes or bookmarks) and reports the resulting membership
func (a *API) toggleRelation(c *gin.Context, table string) (toggledOn bool, ok bool) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	note, found := a.noteBySlug(c, false)
	if !found {
		return false, false
	}

	var exists bool

	err := a.DB.
		Table(table).
		Select("count(*) > 0").
		Where("note_id = ? AND user_id = ?", note.ID, userID).
		Find(&exists).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check note relation", zap.Error(err), zap.String("requestID", requestID))
		return false, false
	}

	if exists {
		err = a.DB.
			Exec("DELETE FROM "+table+" WHERE note_id = ? AND user_id = ?", note.ID, userID).
			Error
	} else {
		err = a.DB.
			Exec("INSERT INTO "+table+" (note_id, user_id) VALUES (?, ?)", note.ID, userID).
			Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to toggle note relation", zap.Error(err), zap.String("requestID", requestID))
		return false, false
	}

	c.Set("noteID", strconv.FormatUint(uint64(note.ID), 10))
	return !exists, true
}

// NoteLike toggles the requester's like on a note
func (a *API) NoteLike(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	liked, ok := a.toggleRelation(c, "note_likes")
	if !ok {
		return
	}

	if liked {
		service.RecordAction(a.DB, userID, model.VerbLikes, model.EntityNote, c.GetString("noteID"))
	}

	c.JSON(http.StatusOK, gin.H{
		"liked": liked,
	})
}

// NoteBookmark toggles a note in the requester's bookmarks
func (a *API) NoteBookmark(c *gin.Context) {
	userID := c.MustGet("userID").(string)

	bookmarked, ok := a.toggleRelation(c, "note_bookmarks")
	if !ok {
		return
	}

	if bookmarked {
		service.RecordAction(a.DB, userID, model.VerbBookmarks, model.EntityNote, c.GetString("noteID"))
	}

	c.JSON(http.StatusOK, gin.H{
		"bookmarked": bookmarked,
	})
}
