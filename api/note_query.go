package api

import (
	"net/http"
	"notedapp/noted/model"
	"slices"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

// Accepted values of the `order` query param. The names come from the
// frontend's sort dropdown.
var validOrders = []string{"-datetime_created", "views", "likes"}

// listParams carries pagination and ordering extracted from the query string
type listParams struct {
	Order string
	Page  int
	Limit int
}

// parseListParams validates order/page/limit. It answers 400 itself and
// returns false when something is off.
func parseListParams(c *gin.Context) (listParams, bool) {
	requestID := c.MustGet("requestID").(string)

	p := listParams{
		Order: c.DefaultQuery("order", "-datetime_created"),
	}

	if !slices.Contains(validOrders, p.Order) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Unknown order option",
			"requestID": requestID,
		})
		return p, false
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Page must be a non-negative integer",
			"requestID": requestID,
		})
		return p, false
	}
	p.Page = page

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(viper.GetInt("app.page_size"))))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Limit must be bigger than 0",
			"requestID": requestID,
		})
		return p, false
	}

	if max := viper.GetInt("app.page_size"); limit > max {
		limit = max
	}
	p.Limit = limit

	return p, true
}

// orderedNotes builds the base note query for the given order option
func (a *API) orderedNotes(p listParams) *gorm.DB {
	q := a.DB.
		Model(&model.Note{}).
		Preload("Tags").
		Preload("Source").
		Preload("Author").
		Offset(p.Page * p.Limit).
		Limit(p.Limit)

	switch p.Order {
	case "views":
		return q.Order("notes.views DESC")
	case "likes":
		return q.
			Select("notes.*").
			Joins("LEFT JOIN note_likes ON note_likes.note_id = notes.id").
			Group("notes.id").
			Order("COUNT(note_likes.user_id) DESC")
	default:
		return q.Order("notes.created_at DESC")
	}
}

// stripAnonymousAuthors hides authorship of anonymous notes before they
// leave the API
func stripAnonymousAuthors(notes []model.Note) []model.Note {
	for i := range notes {
		if notes[i].Anonymous {
			notes[i].Author = nil
		}
	}

	return notes
}
