// Package db opens the database connection and keeps the schema migrated
package db

import (
	"errors"
	"fmt"
	"notedapp/noted/model"
	"notedapp/noted/pkg/util"
	"os"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// checkMountedDB makes sure the sqlite file already exists so a container
// doesn't silently create a throwaway database inside its own filesystem
func checkMountedDB(dsn string) error {
	if _, err := os.Stat(dsn); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("SQLite database file not mounted, please use docker volumes to mount it to /app/%s", dsn)
	}

	return nil
}

func New() (*gorm.DB, error) {
	var dial gorm.Dialector

	dsn := viper.GetString("db.dsn")

	switch viper.GetString("db.driver") {
	case "postgres":
		dial = postgres.Open(dsn)
	default:
		// If running in a docker container don't allow the sqlite file to be created.
		// The host should instead mount it using volumes
		if util.IsRunningInDocker() {
			if err := checkMountedDB(dsn); err != nil {
				return nil, err
			}
		}

		dial = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dial)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}

	err = db.AutoMigrate(
		model.User{},
		model.Note{},
		model.Source{},
		model.Tag{},
		model.Contact{},
		model.Action{},
		model.SignupToken{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to automigrate tables, %w", err)
	}

	return db, nil
}
