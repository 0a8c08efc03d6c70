package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AJAXOnly rejects requests that don't carry the X-Requested-With header the
// frontend sets on its fetch calls. The toggle endpoints are GET based and
// shouldn't be reachable by following a plain link.
func AJAXOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Requested-With") != "XMLHttpRequest" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "This endpoint only accepts AJAX requests",
			})
			return
		}

		c.Next()
	}
}
