package validators

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrNameEmpty        = errors.New("no name provided")
	ErrNameTooShort     = errors.New("name must be at least 3 characters long")
	ErrNameTooLong      = errors.New("name is too long")
	ErrNameNotAlpha     = errors.New("name should contain only latin letters")
	ErrNameTooManyWords = errors.New("name should include no more than 3 words")
)

// NameValidator checks a person's full name: letters and spaces only,
// at most three words
func NameValidator(n string) error {
	if n == "" {
		return ErrNameEmpty
	}

	if len(n) < 3 {
		return ErrNameTooShort
	}

	if len(n) > 50 {
		return ErrNameTooLong
	}

	for _, r := range n {
		if r == ' ' {
			continue
		}

		if r > unicode.MaxASCII || !unicode.IsLetter(r) {
			return ErrNameNotAlpha
		}
	}

	if len(strings.Fields(n)) > 3 {
		return ErrNameTooManyWords
	}

	return nil
}
