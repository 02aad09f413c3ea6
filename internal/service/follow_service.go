package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/kafka"
	"Ripple/internal/repository"
	"context"
	"fmt"
)

type FollowService interface {
	FollowUser(ctx context.Context, followerID, targetID uint64) (*dto.FollowStatusDTO, error)
	UnfollowUser(ctx context.Context, followerID, targetID uint64) (*dto.FollowStatusDTO, error)
	FollowTopic(ctx context.Context, userID, topicID uint64) (*dto.TopicDTO, error)
	UnfollowTopic(ctx context.Context, userID, topicID uint64) error
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
	topicRepo  repository.TopicRepo
	producer   kafka.EventProducer
}

func NewFollowService(
	followRepo repository.FollowRepo,
	userRepo repository.UserRepo,
	topicRepo repository.TopicRepo,
	producer kafka.EventProducer,
) FollowService {
	return &FollowServiceImpl{
		followRepo: followRepo,
		userRepo:   userRepo,
		topicRepo:  topicRepo,
		producer:   producer,
	}
}

// FollowUser 开关式关注，重复调用即取消关注，只有新建关注才发通知
func (s *FollowServiceImpl) FollowUser(ctx context.Context, followerID, targetID uint64) (*dto.FollowStatusDTO, error) {
	if followerID == targetID {
		return nil, ErrUserFollowSelf
	}

	target, err := s.userRepo.GetUserById(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrUserNotFound
	}

	exists, err := s.followRepo.ExistsUserFollow(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	if exists {
		if _, err = s.followRepo.DeleteUserFollow(ctx, followerID, targetID); err != nil {
			return nil, err
		}
		return s.followStatus(ctx, followerID, targetID, false)
	}

	if err = s.followRepo.CreateUserFollow(ctx, followerID, targetID); err != nil {
		return nil, err
	}

	follower, err := s.userRepo.GetUserById(ctx, followerID)
	if err == nil && follower != nil {
		s.producer.PublishEngagement(&kafka.EngagementEvent{
			Type:       kafka.EventNewFollower,
			ActorID:    followerID,
			ReceiverID: targetID,
			Content:    fmt.Sprintf("%s 关注了你", follower.Username),
		})
	}

	return s.followStatus(ctx, followerID, targetID, true)
}

func (s *FollowServiceImpl) UnfollowUser(ctx context.Context, followerID, targetID uint64) (*dto.FollowStatusDTO, error) {
	if _, err := s.followRepo.DeleteUserFollow(ctx, followerID, targetID); err != nil {
		return nil, err
	}
	return s.followStatus(ctx, followerID, targetID, false)
}

func (s *FollowServiceImpl) followStatus(ctx context.Context, followerID, targetID uint64, isFollowing bool) (*dto.FollowStatusDTO, error) {
	status := &dto.FollowStatusDTO{
		IsFollowing: isFollowing,
		Follower:    dto.FollowPartyDTO{UserID: followerID},
		Target:      dto.FollowPartyDTO{UserID: targetID},
	}
	var err error
	if status.Follower.Followers, err = s.followRepo.CountFollowers(ctx, followerID); err != nil {
		return nil, err
	}
	if status.Follower.Following, err = s.followRepo.CountFollowing(ctx, followerID); err != nil {
		return nil, err
	}
	if status.Target.Followers, err = s.followRepo.CountFollowers(ctx, targetID); err != nil {
		return nil, err
	}
	if status.Target.Following, err = s.followRepo.CountFollowing(ctx, targetID); err != nil {
		return nil, err
	}
	return status, nil
}

// FollowTopic 开关式关注话题
func (s *FollowServiceImpl) FollowTopic(ctx context.Context, userID, topicID uint64) (*dto.TopicDTO, error) {
	topic, err := s.topicRepo.GetTopicById(ctx, topicID)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}

	exists, err := s.followRepo.ExistsTopicFollow(ctx, userID, topicID)
	if err != nil {
		return nil, err
	}
	if exists {
		if _, err = s.followRepo.DeleteTopicFollow(ctx, userID, topicID); err != nil {
			return nil, err
		}
	} else {
		if err = s.followRepo.CreateTopicFollow(ctx, userID, topicID); err != nil {
			return nil, err
		}
	}

	return &dto.TopicDTO{ID: topic.ID, Title: topic.Title, IsFollowed: !exists}, nil
}

func (s *FollowServiceImpl) UnfollowTopic(ctx context.Context, userID, topicID uint64) error {
	_, err := s.followRepo.DeleteTopicFollow(ctx, userID, topicID)
	return err
}
