package main

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/hoangtran/portfolio-api/adapters/event"
	"github.com/hoangtran/portfolio-api/adapters/persistence"
	"github.com/hoangtran/portfolio-api/internal/application/usecase/portfolio"
	"github.com/hoangtran/portfolio-api/internal/config"
	"github.com/hoangtran/portfolio-api/pkg/logger"
)

// The worker consumes content events and drops the cached portfolio snapshot
// so reads pick up mutations without waiting for the TTL.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	log := logger.NewZapLogger(cfg.App.Env)
	log.Info("starting portfolio worker", zap.String("env", cfg.App.Env))

	redisClient, err := persistence.NewRedisClient(cfg, log)
	if err != nil {
		log.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	invalidateCacheUC := portfolio.NewInvalidateCacheUseCase(redisClient, log)

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContentEvents,
		GroupID:  "portfolio-cache-invalidator",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Info("worker listening", zap.String("topic", event.TopicContentEvents))

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Error("failed to read message from Kafka", err)
			continue
		}

		var payload event.ContentEventPayload
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Error("failed to unmarshal content event, skipping", err)
			commitMessage(consumer, msg, log)
			continue
		}

		log.Info("processing content event",
			zap.String("event_type", string(payload.EventType)),
			zap.String("entity", payload.Entity),
		)

		if err := invalidateCacheUC.Execute(ctx); err != nil {
			log.Error("failed to invalidate snapshot cache", err)
			continue
		}

		commitMessage(consumer, msg, log)
	}
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message, log logger.Logger) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Error("failed to commit message", err)
	}
}
