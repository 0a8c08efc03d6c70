package model

import "time"

// Contact is a directed follow edge between two users
type Contact struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowerID string `gorm:"index;uniqueIndex:uk_follower_followed;not null" json:"follower_id"`
	FollowedID string `gorm:"index;uniqueIndex:uk_follower_followed;not null" json:"followed_id"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
}
