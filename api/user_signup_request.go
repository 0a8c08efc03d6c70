package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/pkg/security"
	"notedapp/noted/validators"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type signupRequestBody struct {
	Email string `json:"email"`
}

// UserSignupRequest starts registration: it signs the email into a token,
// stores it and mails out the signup link
func (a *API) UserSignupRequest(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data signupRequestBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		zap.L().Debug("Invalid email", zap.Error(err), zap.String("requestID", requestID))

		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	var taken bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		Find(&taken)
	if r.Error != nil && !errors.Is(r.Error, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check if email is registered", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if taken {
		c.JSON(http.StatusConflict, gin.H{
			"error":     "This email is already registered. Please sign in or use a different email",
			"requestID": requestID,
		})
		return
	}

	maxAge := viper.GetDuration("security.signup_token_max_age")
	token := security.SignEmail(data.Email, viper.GetString("security.jwt_secret"))

	err := a.DB.Create(&model.SignupToken{
		Token:     token,
		Email:     data.Email,
		ExpiresAt: time.Now().Add(maxAge),
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to store signup token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := a.Mail.EnqueueSignupMail(token, data.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to send signup mail", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"msg": "sent",
	})
}
