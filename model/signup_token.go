package model

import "time"

// SignupToken is a signed, time-stamped token mailed out to verify an email
// address before the account exists
type SignupToken struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Token     string `gorm:"uniqueIndex;not null" json:"token"`
	Email     string `gorm:"index;not null" json:"email"`
	Used      bool   `gorm:"default:false" json:"used"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
