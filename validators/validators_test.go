package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("some@email.qq"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
	assert.ErrorIs(t, EmailValidator("missing@domain@twice"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("easypass123"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
}

func TestNameValidator(t *testing.T) {
	assert.NoError(t, NameValidator("Some Name"))
	assert.NoError(t, NameValidator("One Two Three"))

	assert.ErrorIs(t, NameValidator(""), ErrNameEmpty)
	assert.ErrorIs(t, NameValidator("Al"), ErrNameTooShort)
	assert.ErrorIs(t, NameValidator(strings.Repeat("a", 51)), ErrNameTooLong)
	assert.ErrorIs(t, NameValidator("R2D2"), ErrNameNotAlpha)
	assert.ErrorIs(t, NameValidator("Name With-Dash"), ErrNameNotAlpha)
	assert.ErrorIs(t, NameValidator("One Two Three Four"), ErrNameTooManyWords)
}
