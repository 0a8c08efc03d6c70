package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/pkg/security"
	"notedapp/noted/service"
	"notedapp/noted/validators"
	"time"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const idCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

type signupBody struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
}

// resolveSignupToken checks the token's signature, age and single-use flag.
// An empty email return means the caller has already been answered: dead
// signup links redirect home instead of erroring.
func (a *API) resolveSignupToken(c *gin.Context) string {
	token := c.Param("token")

	email, err := security.UnsignEmail(
		token,
		viper.GetString("security.jwt_secret"),
		viper.GetDuration("security.signup_token_max_age"),
	)
	if err != nil {
		c.Redirect(http.StatusFound, "/")
		return ""
	}

	var record model.SignupToken

	if err := a.DB.Where("token = ?", token).First(&record).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return ""
	}

	if record.Used || time.Now().After(record.ExpiresAt) {
		c.Redirect(http.StatusFound, "/")
		return ""
	}

	return email
}

// UserSignupForm resolves a signup token so the frontend can render the
// registration form with the email filled in
func (a *API) UserSignupForm(c *gin.Context) {
	email := a.resolveSignupToken(c)
	if email == "" {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": email,
	})
}

// UserSignup finishes registration: validates the name and password,
// generates the @first.name username and creates the account
func (a *API) UserSignup(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	email := a.resolveSignupToken(c)
	if email == "" {
		return
	}

	var data signupBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	if err := validators.NameValidator(data.FirstName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	if data.LastName != "" {
		if err := validators.NameValidator(data.LastName); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
			return
		}
	}

	if err := validators.PasswordValidator(data.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	username, err := service.GenerateUsername(a.DB, data.FirstName)
	if err != nil {
		if errors.Is(err, service.ErrFirstNameNotSet) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "First name can't be empty",
				"requestID": requestID,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate username", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	hash, err := a.Hasher.Hash(data.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	userID, err := gonanoid.Generate(idCharset, 16)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate user ID", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user := model.User{
		ID:           userID,
		Email:        email,
		Username:     username,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		PasswordHash: hash,
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		return tx.Model(model.SignupToken{}).
			Where("token = ?", c.Param("token")).
			Update("used", true).
			Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	service.RecordAction(a.DB, userID, model.VerbNew, "", "")

	if err := setAuthCookies(c, userID); err != nil {
		zap.L().Error("Failed to set auth cookie after signup", zap.Error(err), zap.String("requestID", requestID))
	}

	c.JSON(http.StatusCreated, gin.H{
		"userID":   userID,
		"username": username,
	})
}
