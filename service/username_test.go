package service

import (
	"fmt"
	"notedapp/noted/model"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbCounter int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:servicetest%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		model.User{},
		model.Note{},
		model.Source{},
		model.Tag{},
		model.Contact{},
		model.Action{},
		model.SignupToken{},
	))

	return db
}

func addUser(t *testing.T, db *gorm.DB, username, email string) *model.User {
	t.Helper()

	u := &model.User{
		ID:           username + "-id",
		Email:        email,
		Username:     username,
		FirstName:    "Some Name",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(u).Error)

	return u
}

func TestGenerateUsernameUnique(t *testing.T) {
	db := newTestDB(t)

	username, err := GenerateUsername(db, "Some Name")
	require.NoError(t, err)
	assert.Equal(t, "@some.name", username)
}

func TestGenerateUsernameTaken(t *testing.T) {
	db := newTestDB(t)
	addUser(t, db, "@some.name", "first@email.qq")

	username, err := GenerateUsername(db, "Some Name")
	require.NoError(t, err)
	assert.Equal(t, "@some.name2", username)
}

func TestGenerateUsernameManyTaken(t *testing.T) {
	db := newTestDB(t)
	addUser(t, db, "@some.name", "a@email.qq")
	addUser(t, db, "@some.name2", "b@email.qq")
	addUser(t, db, "@some.name3", "c@email.qq")

	username, err := GenerateUsername(db, "Some Name")
	require.NoError(t, err)
	assert.Equal(t, "@some.name4", username)
}

func TestGenerateUsernamePrefixCollision(t *testing.T) {
	db := newTestDB(t)
	// A longer username sharing the prefix must not block the base handle
	addUser(t, db, "@some.namelong", "a@email.qq")

	username, err := GenerateUsername(db, "Some Name")
	require.NoError(t, err)
	assert.Equal(t, "@some.name", username)
}

func TestGenerateUsernameFirstNameEmpty(t *testing.T) {
	db := newTestDB(t)

	_, err := GenerateUsername(db, "")
	assert.ErrorIs(t, err, ErrFirstNameNotSet)

	_, err = GenerateUsername(db, "   ")
	assert.ErrorIs(t, err, ErrFirstNameNotSet)
}

func TestUnslugify(t *testing.T) {
	assert.Equal(t, "@some.name", Unslugify("some.name"))
	assert.Equal(t, "@some.name", Unslugify("@some.name"))
}
