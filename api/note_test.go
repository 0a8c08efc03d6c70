package api

import (
	"net/http"
	"notedapp/noted/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createNote(t *testing.T, a *API, c *http.Cookie, body string) map[string]any {
	t.Helper()

	w := do(a, "POST", "/api/notes", body, withCookie(c))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return decode(t, w)["note"].(map[string]any)
}

func TestNoteCreateAndFetch(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")

	note := createNote(t, a, cookie,
		`{"title":"My Note","body":"Hello","tags":["go","testing"],"source":{"title":"The Go Book","type":"book"}}`)

	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug, "")
	require.Equal(t, http.StatusOK, w.Code)

	got := decode(t, w)["note"].(map[string]any)
	assert.Equal(t, "My Note", got["title"])
	assert.Len(t, got["tags"], 2)
	assert.Equal(t, "The Go Book", got["source"].(map[string]any)["title"])
}

func TestNoteViewsIncrement(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, reader := createUser(t, a, "reader@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Counted","body":"x"}`)
	slug := note["slug"].(string)

	// The author's own visits don't count
	do(a, "GET", "/api/notes/"+slug, "", withCookie(author))

	var views int64
	require.NoError(t, a.DB.Model(model.Note{}).Where("slug = ?", slug).Pluck("views", &views).Error)
	assert.EqualValues(t, 0, views)

	do(a, "GET", "/api/notes/"+slug, "", withCookie(reader))
	do(a, "GET", "/api/notes/"+slug, "")

	require.NoError(t, a.DB.Model(model.Note{}).Where("slug = ?", slug).Pluck("views", &views).Error)
	assert.EqualValues(t, 2, views)
}

func TestDraftHiddenFromOthers(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, reader := createUser(t, a, "reader@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Secret","body":"x","draft":true}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug, "", withCookie(reader))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(a, "GET", "/api/notes/"+slug, "", withCookie(author))
	assert.Equal(t, http.StatusOK, w.Code)

	// Drafts stay out of the public listing
	w = do(a, "GET", "/api/notes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode(t, w)["notes"])
}

func TestNoteListOrder(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")

	first := createNote(t, a, cookie, `{"title":"First","body":"x"}`)
	createNote(t, a, cookie, `{"title":"Second","body":"x"}`)

	require.NoError(t, a.DB.Model(model.Note{}).
		Where("slug = ?", first["slug"]).
		Update("views", 10).Error)

	w := do(a, "GET", "/api/notes?order=views", "")
	require.Equal(t, http.StatusOK, w.Code)

	notes := decode(t, w)["notes"].([]any)
	require.Len(t, notes, 2)
	assert.Equal(t, "First", notes[0].(map[string]any)["title"])

	w = do(a, "GET", "/api/notes?order=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteLikeToggle(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, liker := createUser(t, a, "liker@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Likeable","body":"x"}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/like", "", withCookie(liker), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["liked"])

	w = do(a, "GET", "/api/notes/"+slug+"/like", "", withCookie(liker), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["liked"])

	// Not an AJAX call -> 400
	w = do(a, "GET", "/api/notes/"+slug+"/like", "", withCookie(liker))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteBookmarkToggle(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, user := createUser(t, a, "reader@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Keeper","body":"x"}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/bookmark", "", withCookie(user), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["bookmarked"])

	w = do(a, "GET", "/api/notes/"+slug+"/bookmark", "", withCookie(user), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decode(t, w)["bookmarked"])
}

func TestNotePinAuthorOnly(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, other := createUser(t, a, "other@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Pinnable","body":"x"}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/pin", "", withCookie(author), asAJAX)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["pin"])

	w = do(a, "GET", "/api/notes/"+slug+"/pin", "", withCookie(other), asAJAX)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteDownload(t *testing.T) {
	a := newTestAPI(t)
	_, cookie := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")

	note := createNote(t, a, cookie, `{"title":"My Note","body":"Hello"}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/download/md", "", withCookie(cookie))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="my-note.md"`, w.Header().Get("Content-Disposition"))
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
	assert.Contains(t, w.Body.String(), "# My Note")

	w = do(a, "GET", "/api/notes/"+slug+"/download/exe", "", withCookie(cookie))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(a, "GET", "/api/notes/no-such-note/download/md", "", withCookie(cookie))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteDownloadDraft(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, other := createUser(t, a, "other@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Draft Note","body":"wip","draft":true}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/download/md", "", withCookie(author))
	assert.Equal(t, http.StatusOK, w.Code)

	// Someone else's draft is a bad request, not a missing note
	w = do(a, "GET", "/api/notes/"+slug+"/download/md", "", withCookie(other))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestNoteFork(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, forker := createUser(t, a, "forker@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Original","body":"x","tags":["go"]}`)
	slug := note["slug"].(string)

	w := do(a, "GET", "/api/notes/"+slug+"/fork", "", withCookie(forker))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Original", decode(t, w)["title"])

	w = do(a, "POST", "/api/notes/"+slug+"/fork",
		`{"title":"Original","body":"tweaked"}`, withCookie(forker))
	require.Equal(t, http.StatusCreated, w.Code)

	fork := decode(t, w)["note"].(map[string]any)
	assert.EqualValues(t, note["id"], fork["fork_of"])
}

func TestNoteUpdateAndDelete(t *testing.T) {
	a := newTestAPI(t)
	_, author := createUser(t, a, "author@email.qq", "Some Name", "@some.name", "easypass123")
	_, other := createUser(t, a, "other@email.qq", "Other Name", "@other.name", "easypass123")

	note := createNote(t, a, author, `{"title":"Before","body":"x"}`)
	slug := note["slug"].(string)

	w := do(a, "PUT", "/api/notes/"+slug, `{"title":"After","body":"y"}`, withCookie(other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(a, "PUT", "/api/notes/"+slug, `{"title":"After","body":"y"}`, withCookie(author))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "After", decode(t, w)["note"].(map[string]any)["title"])

	w = do(a, "DELETE", "/api/notes/"+slug, "", withCookie(other))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(a, "DELETE", "/api/notes/"+slug, "", withCookie(author))
	require.Equal(t, http.StatusOK, w.Code)

	w = do(a, "GET", "/api/notes/"+slug, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNoteRequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	w := do(a, "POST", "/api/notes", `{"title":"Nope","body":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
