package service

import (
	"notedapp/noted/model"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SweepSignupTokens deletes signup tokens that expired or were already spent
func SweepSignupTokens(db *gorm.DB) {
	r := db.
		Where("expires_at < ? OR used = ?", time.Now(), true).
		Delete(model.SignupToken{})
	if r.Error != nil {
		zap.L().Error("Failed to sweep signup tokens", zap.Error(r.Error))
		return
	}

	if r.RowsAffected > 0 {
		zap.L().Debug("Swept stale signup tokens", zap.Int64("count", r.RowsAffected))
	}
}

// StartTokenSweeper schedules an hourly sweep of stale signup tokens.
// The returned cron is already started.
func StartTokenSweeper(db *gorm.DB) *cron.Cron {
	c := cron.New()

	c.AddFunc("@hourly", func() {
		SweepSignupTokens(db)
	})

	c.Start()
	zap.L().Debug("Signup token sweeper attached")

	return c
}
