package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"notedapp/noted/model"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

var testDBCounter int64

// newTestAPI spins up the real router against a throwaway in-memory
// database
func newTestAPI(t *testing.T) *API {
	t.Helper()

	gin.SetMode(gin.TestMode)

	viper.Set("app.log_level", "error")
	viper.Set("app.page_size", 100)
	viper.Set("host.domain", "localhost")
	viper.Set("host.cors", []string{"http://localhost:5173"})
	viper.Set("host.ssl.enabled", false)
	viper.Set("db.driver", "sqlite")
	viper.Set("db.dsn", fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBCounter, 1)))
	viper.Set("security.jwt_secret", "test-secret")
	viper.Set("security.rate_limit", 1000)
	viper.Set("security.signup_token_max_age", "48h")
	viper.Set("mail.sender", "")
	viper.Set("cache.redis.enabled", false)

	a, err := NewRouter()
	require.NoError(t, err)

	t.Cleanup(func() {
		if a.Sweeper != nil {
			a.Sweeper.Stop()
		}
	})

	return a
}

// createUser inserts a user directly and returns it together with a valid
// auth cookie
func createUser(t *testing.T, a *API, email, firstName, username, password string) (*model.User, *http.Cookie) {
	t.Helper()

	hash, err := a.Hasher.Hash(password)
	require.NoError(t, err)

	id, err := gonanoid.New(16)
	require.NoError(t, err)

	user := &model.User{
		ID:           id,
		Email:        email,
		Username:     username,
		FirstName:    firstName,
		PasswordHash: hash,
	}
	require.NoError(t, a.DB.Create(user).Error)

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"type":    "auth",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}

	token, err := makeToken(&claims)
	require.NoError(t, err)

	return user, &http.Cookie{Name: "auth_token", Value: token}
}

func do(a *API, method, path string, body string, opts ...func(*http.Request)) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	for _, o := range opts {
		o(req)
	}

	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)

	return w
}

func asAJAX(req *http.Request) {
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
}

func withCookie(c *http.Cookie) func(*http.Request) {
	return func(req *http.Request) {
		req.AddCookie(c)
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var m map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))

	return m
}
