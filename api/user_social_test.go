package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnProfileRedirects(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "some@email.qq", "Some Name", "@some.name", "easypass123")

	w := do(a, "GET", "/api/users/some.name/notes", "", withCookie(cookie))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/api/notes/personal", w.Header().Get("Location"))
}

func TestProfileNotesOfOtherUser(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, visitor := createUser(t, a, "visitor@email.qq", "Other Name", "@other.name", "easypass123")

	createNote(t, a, author, `{"title":"Public","body":"x"}`)
	createNote(t, a, author, `{"title":"Hidden draft","body":"x","draft":true}`)
	createNote(t, a, author, `{"title":"Nameless","body":"x","anonymous":true}`)

	w := do(a, "GET", "/api/users/some.name/notes", "", withCookie(visitor))
	require.Equal(t, http.StatusOK, w.Code)

	notes := decode(t, w)["notes"].([]any)
	require.Len(t, notes, 1)
	assert.Equal(t, "Public", notes[0].(map[string]any)["title"])
}

func TestProfileUnknownUser(t *testing.T) {
	a := newTestAPI(t)

	w := do(a, "GET", "/api/users/nobody/notes", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(a, "GET", "/api/users/nobody", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFollowToggle(t *testing.T) {
	a := newTestAPI(t)
	_, follower := createUser(t, a, "follower@email.qq", "Some Name", "@some.name", "easypass123")
	createUser(t, a, "followed@email.qq", "Other Name", "@other.name", "easypass123")

	w := do(a, "GET", "/api/users/other.name/follow", "", withCookie(follower), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["following"])

	w = do(a, "GET", "/api/users/other.name/followers", "")
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["users"].([]any)
	require.Len(t, users, 1)
	assert.Equal(t, "@some.name", users[0].(map[string]any)["username"])

	w = do(a, "GET", "/api/users/other.name/follow", "", withCookie(follower), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["following"])
}

func TestUserProfile(t *testing.T) {
	a := newTestAPI(t)
	createUser(t, a, "some@email.qq", "Some Name", "@some.name", "easypass123")
	_, visitor := createUser(t, a, "other@email.qq", "Other Name", "@other.name", "easypass123")

	do(a, "GET", "/api/users/some.name/follow", "", withCookie(visitor), asAJAX)

	w := do(a, "GET", "/api/users/some.name", "", withCookie(visitor))
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "@some.name", body["user"].(map[string]any)["username"])
	assert.EqualValues(t, 1, body["followers"])
	assert.EqualValues(t, 0, body["following"])
	assert.Equal(t, true, body["is_following"])

	w = do(a, "GET", "/api/users/some.name", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["is_following"])
}

func TestFollowSelf(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "some@email.qq", "Some Name", "@some.name", "easypass123")

	w := do(a, "GET", "/api/users/some.name/follow", "", withCookie(cookie), asAJAX)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestActionFeedFollowedOnly(t *testing.T) {
	a := newTestAPI(t)
	_, meCookie := createUser(t, a, "me@email.qq", "Some Name", "@some.name", "easypass123")
	otherUser, otherCookie := createUser(t, a, "followed@email.qq", "Other Name", "@other.name", "easypass123")
	strangerUser, strangerCookie := createUser(t, a, "stranger@email.qq", "Third Name", "@third.name", "easypass123")

	do(a, "GET", "/api/users/other.name/follow", "", withCookie(meCookie), asAJAX)

	createNote(t, a, otherCookie, `{"title":"Followed note","body":"x"}`)
	createNote(t, a, strangerCookie, `{"title":"Stranger note","body":"x"}`)

	w := do(a, "GET", "/api/actions", "", withCookie(meCookie))
	require.Equal(t, http.StatusOK, w.Code)

	actions := decode(t, w)["actions"].([]any)
	require.NotEmpty(t, actions)

	sawFollowed := false
	for _, raw := range actions {
		action := raw.(map[string]any)
		assert.NotEqual(t, strangerUser.ID, action["actor_id"], "stranger activity must not leak into the feed")
		if action["actor_id"] == otherUser.ID && action["verb"] == "creates" {
			sawFollowed = true
		}
	}
	assert.True(t, sawFollowed)
}

func TestPersonalNotesView(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "some@email.qq", "Some Name", "@some.name", "easypass123")

	createNote(t, a, cookie, `{"title":"Published","body":"x"}`)
	createNote(t, a, cookie, `{"title":"Draft","body":"x","draft":true}`)

	w := do(a, "GET", "/api/notes/personal", "", withCookie(cookie))
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Len(t, body["notes"], 1)
	assert.Len(t, body["drafts"], 1)
}
