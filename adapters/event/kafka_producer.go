package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/hoangtran/portfolio-api/internal/config"
)

const TopicContentEvents = "content.events"

type ContentEventType string

const (
	ContentEventTypeCreated  ContentEventType = "created"
	ContentEventTypeUpdated  ContentEventType = "updated"
	ContentEventTypeDeleted  ContentEventType = "deleted"
	ContentEventTypeUpserted ContentEventType = "upserted"
)

type ContentEventPayload struct {
	EventType ContentEventType `json:"event_type"`
	Entity    string           `json:"entity"`
	EntityID  uuid.UUID        `json:"entity_id"`
}

// Publisher is what the write path needs from the event layer. Mutating use
// cases publish through it in the background and never fail a write on a
// broker problem.
type Publisher interface {
	PublishContentEvent(ctx context.Context, payload ContentEventPayload) error
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContentEventsWriter: contentWriter}, nil
}

func (c *KafkaProducerClient) PublishContentEvent(ctx context.Context, payload ContentEventPayload) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal content event failed: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.Entity),
		Value: value,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write content event failed: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
}
