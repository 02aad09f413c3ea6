package kafka

import (
	"Ripple/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// NotifyHandler 消费互动事件并写入用户收件箱
type NotifyHandler struct {
	inboxRepo mongo.InboxRepo
}

func NewNotifyHandler(inboxRepo mongo.InboxRepo) *NotifyHandler {
	return &NotifyHandler{
		inboxRepo: inboxRepo,
	}
}

func (s *NotifyHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer setup")
	return nil
}

func (s *NotifyHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("engagement consumer cleanup")
	return nil
}

func (s *NotifyHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-engagement consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-engagement process batch error", "err", err)
		return err
	}
	return nil
}

func (s *NotifyHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event EngagementEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		// 坏消息直接丢弃，重试也不会变好
		log.Error("unmarshal engagement event failed", "err", err)
		return nil
	}

	// 自己触发的互动不生成通知
	if event.ActorID == event.ReceiverID {
		return nil
	}

	return s.inboxRepo.CreateNotification(ctx, &mongo.InboxModel{
		ReceiverID: event.ReceiverID,
		ActorID:    event.ActorID,
		Type:       event.Type,
		PostID:     event.PostID,
		CommentID:  event.CommentID,
		Content:    event.Content,
		CreatedAt:  event.OccurredAt,
	})
}
