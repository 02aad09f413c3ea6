package service

import (
	"Ripple/internal/model"
	"Ripple/internal/pkg/kafka"
	"context"
)

// fakeUserRepo 内存实现，按 ID / 邮箱 / 用户名索引
type fakeUserRepo struct {
	users   map[uint64]*model.User
	updates map[uint64]map[string]interface{}
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	repo := &fakeUserRepo{
		users:   map[uint64]*model.User{},
		updates: map[uint64]map[string]interface{}{},
	}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (s *fakeUserRepo) GetUserById(_ context.Context, id uint64) (*model.User, error) {
	return s.users[id], nil
}

func (s *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, nil
}

func (s *fakeUserRepo) CreateUser(_ context.Context, user *model.User) error {
	user.ID = uint64(len(s.users) + 1)
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserRepo) UpdateUser(_ context.Context, id uint64, updates map[string]interface{}) error {
	s.updates[id] = updates
	return nil
}

func (s *fakeUserRepo) UpdateUserPassword(_ context.Context, id uint64, passwordHash string) error {
	if user, ok := s.users[id]; ok {
		user.Password = passwordHash
	}
	return nil
}

func (s *fakeUserRepo) UpdateUserBlocked(_ context.Context, id uint64, blocked bool) (int64, error) {
	user, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	user.Blocked = blocked
	return 1, nil
}

func (s *fakeUserRepo) AnonymizeUser(_ context.Context, id uint64, username, email, passwordHash string) error {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	user.Username = username
	user.Email = email
	user.Password = passwordHash
	return nil
}

type fakeFollowRepo struct {
	userFollows  map[[2]uint64]bool
	topicFollows map[[2]uint64]bool
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{
		userFollows:  map[[2]uint64]bool{},
		topicFollows: map[[2]uint64]bool{},
	}
}

func (s *fakeFollowRepo) CreateUserFollow(_ context.Context, followerID, followingID uint64) error {
	s.userFollows[[2]uint64{followerID, followingID}] = true
	return nil
}

func (s *fakeFollowRepo) DeleteUserFollow(_ context.Context, followerID, followingID uint64) (int64, error) {
	key := [2]uint64{followerID, followingID}
	if !s.userFollows[key] {
		return 0, nil
	}
	delete(s.userFollows, key)
	return 1, nil
}

func (s *fakeFollowRepo) ExistsUserFollow(_ context.Context, followerID, followingID uint64) (bool, error) {
	return s.userFollows[[2]uint64{followerID, followingID}], nil
}

func (s *fakeFollowRepo) CountFollowers(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for key := range s.userFollows {
		if key[1] == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeFollowRepo) CountFollowing(_ context.Context, userID uint64) (int64, error) {
	var count int64
	for key := range s.userFollows {
		if key[0] == userID {
			count++
		}
	}
	return count, nil
}

func (s *fakeFollowRepo) CreateTopicFollow(_ context.Context, userID, topicID uint64) error {
	s.topicFollows[[2]uint64{userID, topicID}] = true
	return nil
}

func (s *fakeFollowRepo) DeleteTopicFollow(_ context.Context, userID, topicID uint64) (int64, error) {
	key := [2]uint64{userID, topicID}
	if !s.topicFollows[key] {
		return 0, nil
	}
	delete(s.topicFollows, key)
	return 1, nil
}

func (s *fakeFollowRepo) ExistsTopicFollow(_ context.Context, userID, topicID uint64) (bool, error) {
	return s.topicFollows[[2]uint64{userID, topicID}], nil
}

func (s *fakeFollowRepo) GetFollowedTopicIDs(_ context.Context, userID uint64) ([]uint64, error) {
	var ids []uint64
	for key := range s.topicFollows {
		if key[0] == userID {
			ids = append(ids, key[1])
		}
	}
	return ids, nil
}

type fakeTopicRepo struct {
	topics map[uint64]*model.Topic
}

func newFakeTopicRepo(topics ...*model.Topic) *fakeTopicRepo {
	repo := &fakeTopicRepo{topics: map[uint64]*model.Topic{}}
	for _, topic := range topics {
		repo.topics[topic.ID] = topic
	}
	return repo
}

func (s *fakeTopicRepo) GetTopicById(_ context.Context, id uint64) (*model.Topic, error) {
	return s.topics[id], nil
}

func (s *fakeTopicRepo) GetTopicByTitle(_ context.Context, title string) (*model.Topic, error) {
	for _, topic := range s.topics {
		if topic.Title == title {
			return topic, nil
		}
	}
	return nil, nil
}

func (s *fakeTopicRepo) CreateTopic(_ context.Context, topic *model.Topic) error {
	topic.ID = uint64(len(s.topics) + 1)
	s.topics[topic.ID] = topic
	return nil
}

func (s *fakeTopicRepo) ListTopics(_ context.Context) ([]*model.Topic, error) {
	topics := make([]*model.Topic, 0, len(s.topics))
	for _, topic := range s.topics {
		topics = append(topics, topic)
	}
	return topics, nil
}

type fakeRecoveryRepo struct {
	recoveries map[string]*model.PasswordRecovery
}

func newFakeRecoveryRepo() *fakeRecoveryRepo {
	return &fakeRecoveryRepo{recoveries: map[string]*model.PasswordRecovery{}}
}

func (s *fakeRecoveryRepo) CreateRecovery(_ context.Context, recovery *model.PasswordRecovery) error {
	s.recoveries[recovery.Token] = recovery
	return nil
}

func (s *fakeRecoveryRepo) GetValidRecovery(_ context.Context, token string) (*model.PasswordRecovery, error) {
	return s.recoveries[token], nil
}

func (s *fakeRecoveryRepo) DeleteByUser(_ context.Context, userID uint64) error {
	for token, recovery := range s.recoveries {
		if recovery.UserID == userID {
			delete(s.recoveries, token)
		}
	}
	return nil
}

func (s *fakeRecoveryRepo) DeleteExpired(_ context.Context) (int64, error) {
	return 0, nil
}

type fakeMailService struct {
	sentTo     []string
	sentTokens []string
}

func (s *fakeMailService) SendRecoveryMail(_ context.Context, email string, token string) error {
	s.sentTo = append(s.sentTo, email)
	s.sentTokens = append(s.sentTokens, token)
	return nil
}

type fakeProducer struct {
	events []*kafka.EngagementEvent
}

func (s *fakeProducer) PublishEngagement(event *kafka.EngagementEvent) {
	s.events = append(s.events, event)
}

func (s *fakeProducer) Close() error {
	return nil
}
