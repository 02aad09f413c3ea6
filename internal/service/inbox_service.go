package service

import (
	"Ripple/internal/api/dto"
	"Ripple/internal/pkg/mongo"
	"context"
	"errors"

	mongodrv "go.mongodb.org/mongo-driver/mongo"
)

const defaultInboxPageSize = 20

type InboxService interface {
	GetNotifications(ctx context.Context, userID uint64, queryDTO *dto.InboxQueryDTO) ([]*dto.InboxMessageDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, msgID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
}

type InboxServiceImpl struct {
	inboxRepo mongo.InboxRepo
}

func NewInboxService(inboxRepo mongo.InboxRepo) InboxService {
	return &InboxServiceImpl{
		inboxRepo: inboxRepo,
	}
}

func (s *InboxServiceImpl) GetNotifications(ctx context.Context, userID uint64, queryDTO *dto.InboxQueryDTO) ([]*dto.InboxMessageDTO, error) {
	limit := queryDTO.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultInboxPageSize
	}
	offset := queryDTO.Offset
	if offset < 0 {
		offset = 0
	}

	messages, err := s.inboxRepo.GetNotificationList(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	messageDTOs := make([]*dto.InboxMessageDTO, 0, len(messages))
	for _, msg := range messages {
		messageDTOs = append(messageDTOs, &dto.InboxMessageDTO{
			ID:        msg.ID.Hex(),
			ActorID:   msg.ActorID,
			Type:      msg.Type,
			PostID:    msg.PostID,
			CommentID: msg.CommentID,
			Content:   msg.Content,
			IsRead:    msg.IsRead,
			CreatedAt: msg.CreatedAt,
		})
	}
	return messageDTOs, nil
}

func (s *InboxServiceImpl) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	err := s.inboxRepo.MarkAsRead(ctx, userID, msgID)
	if err != nil {
		if errors.Is(err, mongodrv.ErrNoDocuments) || errors.Is(err, mongodrv.ErrInvalidIndexValue) {
			return ErrInboxNotFound
		}
		return err
	}
	return nil
}

func (s *InboxServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.inboxRepo.MarkAllAsRead(ctx, userID)
}

func (s *InboxServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.inboxRepo.GetUnreadCount(ctx, userID)
}
