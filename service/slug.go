package service

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const slugCharset = "abcdefghijklmnopqrstuvwxyz0123456789"

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single dash
func Slugify(s string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// NoteSlug builds a unique slug for a note from its title. Titles repeat
// all the time so a short random suffix keeps slugs collision free without
// a read-check-insert loop.
func NoteSlug(title string) (string, error) {
	suffix, err := gonanoid.Generate(slugCharset, 6)
	if err != nil {
		return "", err
	}

	slug := Slugify(title)
	if slug == "" {
		return suffix, nil
	}

	return slug + "-" + suffix, nil
}
