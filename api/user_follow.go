package api

import (
	"errors"
	"net/http"
	"notedapp/noted/model"
	"notedapp/noted/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserFollow toggles a follow edge towards the addressed user
func (a *API) UserFollow(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	target, ok := a.userByParam(c)
	if !ok {
		return
	}

	if target.ID == userID {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "You can't follow yourself",
			"requestID": requestID,
		})
		return
	}

	var contact model.Contact

	err := a.DB.
		Where("follower_id = ? AND followed_id = ?", userID, target.ID).
		First(&contact).
		Error

	switch {
	case err == nil:
		if err := a.DB.Delete(&contact).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to delete follow edge", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"following": false,
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		err := a.DB.Create(&model.Contact{
			FollowerID: userID,
			FollowedID: target.ID,
		}).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to create follow edge", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		service.RecordAction(a.DB, userID, model.VerbFollows, model.EntityUser, target.ID)

		c.JSON(http.StatusOK, gin.H{
			"following": true,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to check follow edge", zap.Error(err), zap.String("requestID", requestID))
	}
}

// UserFollowers lists who follows the addressed user
func (a *API) UserFollowers(c *gin.Context) {
	a.followList(c, "followed_id", "follower_id")
}

// UserFollowing lists who the addressed user follows
func (a *API) UserFollowing(c *gin.Context) {
	a.followList(c, "follower_id", "followed_id")
}

func (a *API) followList(c *gin.Context, whereCol, selectCol string) {
	requestID := c.MustGet("requestID").(string)

	user, ok := a.userByParam(c)
	if !ok {
		return
	}

	var ids []string

	err := a.DB.
		Model(model.Contact{}).
		Where(whereCol+" = ?", user.ID).
		Order("created_at DESC").
		Pluck(selectCol, &ids).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch follow list", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var users []model.User
	if len(ids) > 0 {
		err = a.DB.
			Select("id", "username", "first_name", "last_name", "bio").
			Where("id IN ?", ids).
			Find(&users).
			Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to fetch follow list users", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
	})
}
