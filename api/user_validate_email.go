package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserValidateEmail tells the signup form whether an email is already taken
func (a *API) UserValidateEmail(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	email := c.Query("email")
	if err := validators.EmailValidator(email); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var taken bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", email).
		Find(&taken)
	if r.Error != nil && !errors.Is(r.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if email is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_taken": taken,
	})
}
