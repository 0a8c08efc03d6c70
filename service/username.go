// Package service holds the business logic that sits between the handlers
// and the database
package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrFirstNameNotSet is returned when a username is requested for a user
// whose first name was never filled in. Callers must treat this as a bug in
// the signup flow, not as user input error.
var ErrFirstNameNotSet = errors.New("first name is not set")

// GenerateUsername derives a unique handle from a person's first name:
// "Some Name" becomes "@some.name". When the handle is taken the smallest
// free numeric suffix starting at 2 is appended, so the second "Some Name"
// gets "@some.name2".
func GenerateUsername(db *gorm.DB, firstName string) (string, error) {
	words := strings.Fields(firstName)
	if len(words) == 0 {
		return "", ErrFirstNameNotSet
	}

	base := "@" + strings.ToLower(strings.Join(words, "."))

	var taken []string

	err := db.
		Table("users").
		Where("username LIKE ?", base+"%").
		Pluck("username", &taken).
		Error
	if err != nil {
		return "", fmt.Errorf("failed to look up colliding usernames, %w", err)
	}

	if len(taken) == 0 {
		return base, nil
	}

	set := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		set[t] = struct{}{}
	}

	if _, ok := set[base]; !ok {
		return base, nil
	}

	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s%d", base, n)
		if _, ok := set[candidate]; !ok {
			return candidate, nil
		}
	}
}

// Unslugify turns a profile path segment back into the stored username.
// Usernames live in URLs without their "@" prefix.
func Unslugify(slug string) string {
	if strings.HasPrefix(slug, "@") {
		return slug
	}

	return "@" + slug
}
