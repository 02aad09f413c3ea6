package repository

import (
	"Ripple/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type TopicRepo interface {
	GetTopicById(ctx context.Context, id uint64) (*model.Topic, error)
	GetTopicByTitle(ctx context.Context, title string) (*model.Topic, error)
	CreateTopic(ctx context.Context, topic *model.Topic) error
	ListTopics(ctx context.Context) ([]*model.Topic, error)
}

type TopicRepoImpl struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepo {
	return &TopicRepoImpl{
		db: db,
	}
}

func (s *TopicRepoImpl) GetTopicById(ctx context.Context, id uint64) (*model.Topic, error) {
	var topic model.Topic
	err := s.db.WithContext(ctx).First(&topic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (s *TopicRepoImpl) GetTopicByTitle(ctx context.Context, title string) (*model.Topic, error) {
	var topic model.Topic
	err := s.db.WithContext(ctx).Where("title = ?", title).First(&topic).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &topic, nil
}

func (s *TopicRepoImpl) CreateTopic(ctx context.Context, topic *model.Topic) error {
	return s.db.WithContext(ctx).Create(topic).Error
}

func (s *TopicRepoImpl) ListTopics(ctx context.Context) ([]*model.Topic, error) {
	var topics []*model.Topic
	err := s.db.WithContext(ctx).Order("title ASC").Find(&topics).Error
	if err != nil {
		return nil, err
	}
	return topics, nil
}
