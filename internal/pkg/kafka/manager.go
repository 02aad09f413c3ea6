package kafka

import (
	"Ripple/internal/api/config"
	"Ripple/internal/pkg/mongo"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// ConsumerManager 管理所有 Kafka 消费者
type ConsumerManager struct {
	engagementConsumer sarama.ConsumerGroup
	engagementHandler  sarama.ConsumerGroupHandler
}

func NewConsumerManager(cfg *config.Config, inboxRepo mongo.InboxRepo) (*ConsumerManager, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	engagementConsumer, err := sarama.NewConsumerGroup(cfg.Kafka.Brokers, cfg.KafkaConsumer.EngagementGroupID, saramaCfg)
	if err != nil {
		return nil, err
	}
	engagementHandler := NewNotifyHandler(inboxRepo)

	return &ConsumerManager{
		engagementConsumer: engagementConsumer,
		engagementHandler:  engagementHandler,
	}, nil
}

// Start 启动所有消费者
func (m *ConsumerManager) Start(ctx context.Context, cfg *config.Config) error {
	go func() {
		topic := cfg.KafkaConsumer.EngagementTopic
		log.Info("Engagement consumer started", "topic", topic)
		for {
			if err := m.engagementConsumer.Consume(ctx, []string{topic}, m.engagementHandler); err != nil {
				log.Error("Error from consumer", "err", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

// Stop 关闭所有消费者
func (m *ConsumerManager) Stop() {
	if err := m.engagementConsumer.Close(); err != nil {
		log.Error("Error closing engagement consumer", "err", err)
	}
}
