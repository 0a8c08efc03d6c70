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

// userByParam resolves the :username path segment to a user record,
// answering 404 itself when nobody matches
func (a *API) userByParam(c *gin.Context) (*model.User, bool) {
	requestID := c.MustGet("requestID").(string)
	username := service.Unslugify(c.Param("username"))

	var user model.User

	if err := a.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return &user, true
}

func (a *API) followCounts(userID string) (followers, following int64) {
	a.DB.Model(model.Contact{}).Where("followed_id = ?", userID).Count(&followers)
	a.DB.Model(model.Contact{}).Where("follower_id = ?", userID).Count(&following)
	return
}

// UserProfile returns the public profile of a user
func (a *API) UserProfile(c *gin.Context) {
	user, ok := a.userByParam(c)
	if !ok {
		return
	}

	followers, following := a.followCounts(user.ID)

	var isFollowing bool
	if me := a.currentUserID(c); me != "" && me != user.ID {
		a.DB.Model(model.Contact{}).
			Select("count(*) > 0").
			Where("follower_id = ? AND followed_id = ?", me, user.ID).
			Find(&isFollowing)
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"bio":        user.Bio,
			"created_at": user.CreatedAt,
		},
		"followers":    followers,
		"following":    following,
		"is_following": isFollowing,
	})
}

// UserMe returns the signed in user's own record
func (a *API) UserMe(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var user model.User

	if err := a.DB.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch own user record", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	followers, following := a.followCounts(userID)

	c.JSON(http.StatusOK, gin.H{
		"user":      user,
		"followers": followers,
		"following": following,
	})
}
