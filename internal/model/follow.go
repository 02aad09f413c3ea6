package model

import "time"

type UserFollow struct {
	FollowerID  uint64    `gorm:"primaryKey" json:"followerId"`
	FollowingID uint64    `gorm:"primaryKey;index:idx_following_id" json:"followingId"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (UserFollow) TableName() string {
	return "user_follows"
}

type TopicFollow struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	TopicID   uint64    `gorm:"primaryKey;index:idx_topic_id" json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (TopicFollow) TableName() string {
	return "topic_follows"
}
