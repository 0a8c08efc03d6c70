package api

import (
	"net/http"
	"notedapp/noted/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NoteWelcome serves the landing page payload for visitors who aren't
// signed in: trending notes and the biggest tags. The route sits behind the
// response cache, the aggregates behind the trends cache.
func (a *API) NoteWelcome(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	trends, err := a.Trends.PopularNotes(6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch trends", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	tags, err := a.Trends.TopTags(7)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch top tags", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"trends":       stripAnonymousAuthors(trends),
		"tags":         tags,
		"source_types": model.SourceTypes,
	})
}
