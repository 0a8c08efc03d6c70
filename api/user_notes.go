package api

import (
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserNotes lists the public notes of a user's profile. Visiting your own
// profile this way redirects to the personal notes view instead, the public
// listing is for everyone else.
func (a *API) UserNotes(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	user, ok := a.userByParam(c)
	if !ok {
		return
	}

	if a.currentUserID(c) == user.ID {
		c.Redirect(http.StatusFound, "/api/notes/personal")
		return
	}

	p, ok := parseListParams(c)
	if !ok {
		return
	}

	var notes []model.Note

	err := a.orderedNotes(p).
		Where("notes.author_id = ? AND notes.draft = ? AND notes.anonymous = ?", user.ID, false, false).
		Find(&notes).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch profile notes", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var pins []model.Note
	for _, n := range notes {
		if n.Pin {
			pins = append(pins, n)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user.Username,
		"notes": notes,
		"pins":  pins,
	})
}
