package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// noteBySlug resolves the :slug path segment, answering 404 itself on a miss.
// Drafts only resolve for their author, to everyone else they don't exist.
func (a *API) noteBySlug(c *gin.Context, preload bool) (*model.Note, bool) {
	requestID := c.MustGet("requestID").(string)

	q := a.DB
	if preload {
		q = q.Preload("Tags").Preload("Source").Preload("Author")
	}

	var note model.Note

	if err := q.Where("slug = ?", c.Param("slug")).First(&note).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Note not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up note", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	if note.Draft && a.currentUserID(c) != note.AuthorID {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Note not found",
			"requestID": requestID,
		})
		return nil, false
	}

	return &note, true
}

// NoteFetch returns note details and bumps the view counter. The increment
// is a single SQL expression so concurrent reads can't lose updates.
func (a *API) NoteFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	note, ok := a.noteBySlug(c, true)
	if !ok {
		return
	}

	me := a.currentUserID(c)

	if me != note.AuthorID {
		err := a.DB.
			Model(model.Note{}).
			Where("id = ?", note.ID).
			UpdateColumn("views", gorm.Expr("views + 1")).
			Error
		if err != nil {
			zap.L().Error("Failed to bump view counter", zap.Error(err), zap.String("requestID", requestID))
		} else {
			note.Views++
		}
	}

	var likes, bookmarks int64
	a.DB.Table("note_likes").Where("note_id = ?", note.ID).Count(&likes)
	a.DB.Table("note_bookmarks").Where("note_id = ?", note.ID).Count(&bookmarks)

	var liked, bookmarked bool
	if me != "" {
		a.DB.Table("note_likes").
			Select("count(*) > 0").
			Where("note_id = ? AND user_id = ?", note.ID, me).
			Find(&liked)
		a.DB.Table("note_bookmarks").
			Select("count(*) > 0").
			Where("note_id = ? AND user_id = ?", note.ID, me).
			Find(&bookmarked)
	}

	if note.Anonymous {
		note.Author = nil
	}

	sidenotes, err := a.Trends.PopularNotes(5)
	if err != nil {
		zap.L().Error("Failed to fetch sidenotes", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusOK, gin.H{
		"note":       note,
		"likes":      likes,
		"bookmarks":  bookmarks,
		"liked":      liked,
		"bookmarked": bookmarked,
		"sidenotes":  stripAnonymousAuthors(sidenotes),
	})
}
