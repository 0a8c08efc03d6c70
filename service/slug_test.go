package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Hello World":        "hello-world",
		"  Spaces   around ": "spaces-around",
		"C# and Go!":         "c-and-go",
		"already-a-slug":     "already-a-slug",
		"ALL CAPS 123":       "all-caps-123",
		"":                   "",
		"!!!":                "",
	}

	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), in)
	}
}

func TestNoteSlug(t *testing.T) {
	a, err := NoteSlug("My Note")
	require.NoError(t, err)
	b, err := NoteSlug("My Note")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a, "my-note-"))
	assert.NotEqual(t, a, b)
}

func TestNoteSlugUntitled(t *testing.T) {
	s, err := NoteSlug("!!!")
	require.NoError(t, err)
	assert.Len(t, s, 6)
}
