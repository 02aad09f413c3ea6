package kafka

import (
	"Ripple/internal/api/config"
	log "log/slog"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
)

// EventProducer 互动事件生产者
type EventProducer interface {
	PublishEngagement(event *EngagementEvent)
	Close() error
}

type EventProducerImpl struct {
	producer sarama.SyncProducer
	topic    string
}

func NewEventProducer(cfg *config.Config) (EventProducer, error) {
	saramaCfg := newSaramaConfig(cfg.Kafka)

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaCfg)
	if err != nil {
		return nil, err
	}

	return &EventProducerImpl{
		producer: producer,
		topic:    cfg.KafkaConsumer.EngagementTopic,
	}, nil
}

// PublishEngagement 投递互动事件，失败只记日志不影响主流程
func (s *EventProducerImpl) PublishEngagement(event *EngagementEvent) {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Error("marshal engagement event failed", "err", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		// 同一接收者的通知落在同一分区，保证顺序
		Key:   sarama.StringEncoder(strconv.FormatUint(event.ReceiverID, 10)),
		Value: sarama.ByteEncoder(payload),
	}

	if _, _, err = s.producer.SendMessage(msg); err != nil {
		log.Error("publish engagement event failed", "err", err, "type", event.Type)
	}
}

func (s *EventProducerImpl) Close() error {
	return s.producer.Close()
}
