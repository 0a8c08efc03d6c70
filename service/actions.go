package service

import (
	"fmt"
	"notedapp/noted/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RecordAction appends a row to the activity feed. Feed writes ride along
// other requests and must never fail them, so errors are logged and swallowed.
func RecordAction(db *gorm.DB, actorID, verb, targetType, targetID string) {
	err := db.Create(&model.Action{
		ActorType:  model.EntityUser,
		ActorID:    actorID,
		Verb:       verb,
		TargetType: targetType,
		TargetID:   targetID,
	}).Error
	if err != nil {
		zap.L().Error("Failed to record action",
			zap.String("actor", actorID),
			zap.String("verb", verb),
			zap.Error(err))
	}
}

// ActionFeed returns recent actions for a user's feed: activity of the
// people they follow, their own excluded. Users following nobody get the
// site-wide firehose instead so the feed page is never empty.
func ActionFeed(db *gorm.DB, userID string, limit int) ([]model.Action, error) {
	var followedIDs []string

	err := db.
		Table("contacts").
		Where("follower_id = ?", userID).
		Pluck("followed_id", &followedIDs).
		Error
	if err != nil {
		return nil, fmt.Errorf("failed to query followed users, %w", err)
	}

	q := db.
		Model(model.Action{}).
		Where("actor_id <> ?", userID).
		Order("created_at DESC").
		Limit(limit)

	if len(followedIDs) > 0 {
		q = q.Where("actor_type = ? AND actor_id IN ?", model.EntityUser, followedIDs)
	}

	var actions []model.Action
	if err := q.Find(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to query actions, %w", err)
	}

	return actions, nil
}
