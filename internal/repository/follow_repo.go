package repository

import (
	"Ripple/internal/model"
	"context"

	"gorm.io/gorm"
)

type FollowRepo interface {
	CreateUserFollow(ctx context.Context, followerID, followingID uint64) error
	DeleteUserFollow(ctx context.Context, followerID, followingID uint64) (int64, error)
	ExistsUserFollow(ctx context.Context, followerID, followingID uint64) (bool, error)
	CountFollowers(ctx context.Context, userID uint64) (int64, error)
	CountFollowing(ctx context.Context, userID uint64) (int64, error)
	CreateTopicFollow(ctx context.Context, userID, topicID uint64) error
	DeleteTopicFollow(ctx context.Context, userID, topicID uint64) (int64, error)
	ExistsTopicFollow(ctx context.Context, userID, topicID uint64) (bool, error)
	GetFollowedTopicIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{
		db: db,
	}
}

func (s *FollowRepoImpl) CreateUserFollow(ctx context.Context, followerID, followingID uint64) error {
	return s.db.WithContext(ctx).Create(&model.UserFollow{
		FollowerID:  followerID,
		FollowingID: followingID,
	}).Error
}

func (s *FollowRepoImpl) DeleteUserFollow(ctx context.Context, followerID, followingID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&model.UserFollow{})
	return result.RowsAffected, result.Error
}

func (s *FollowRepoImpl) ExistsUserFollow(ctx context.Context, followerID, followingID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowRepoImpl) CountFollowers(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("following_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *FollowRepoImpl) CountFollowing(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.UserFollow{}).
		Where("follower_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *FollowRepoImpl) CreateTopicFollow(ctx context.Context, userID, topicID uint64) error {
	return s.db.WithContext(ctx).Create(&model.TopicFollow{
		UserID:  userID,
		TopicID: topicID,
	}).Error
}

func (s *FollowRepoImpl) DeleteTopicFollow(ctx context.Context, userID, topicID uint64) (int64, error) {
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Delete(&model.TopicFollow{})
	return result.RowsAffected, result.Error
}

func (s *FollowRepoImpl) ExistsTopicFollow(ctx context.Context, userID, topicID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&model.TopicFollow{}).
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		Count(&count).Error
	return count > 0, err
}

func (s *FollowRepoImpl) GetFollowedTopicIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	err := s.db.WithContext(ctx).
		Model(&model.TopicFollow{}).
		Where("user_id = ?", userID).
		Pluck("topic_id", &ids).Error
	return ids, err
}
