package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const authCookieAge = 60 * 60 * 24 * 30

func makeToken(c *jwt.MapClaims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

// setAuthCookies signs the user in by dropping the JWT cookie plus a
// non-HTTPOnly marker the frontend can read
func setAuthCookies(c *gin.Context, userID string) error {
	authToken, err := makeToken(&jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	if err != nil {
		return err
	}

	ssl := viper.GetBool("host.ssl.enabled")

	c.SetCookie("auth_token", authToken, authCookieAge, "/", "", ssl, true)
	c.SetCookie("logged_in", "1", authCookieAge, "/", "", ssl, false)

	return nil
}

// currentUserID resolves the requester's user ID from the auth cookie
// without requiring auth. Public routes use it to branch on identity,
// an empty string means anonymous.
func (a *API) currentUserID(c *gin.Context) string {
	tokenStr, err := c.Cookie("auth_token")
	if err != nil {
		return ""
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}

		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}

	userID, _ := claims["user_id"].(string)
	return userID
}
