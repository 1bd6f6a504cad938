package producers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/ferreteria-cash-recon/internal/config"
)

const writeTimeout = 10 * time.Second

type DayClosedMessageProducer struct {
	logger *slog.Logger
	writer KafkaWriter // Interface for testability
	topic  string
}

// Creates a new day-closed event producer and ensures the topic exists
func NewDayClosedMessageProducer(ctx context.Context, logger *slog.Logger, cfg *config.KafkaConfig) (*DayClosedMessageProducer, error) {
	if cfg.ClosingsTopic == "" {
		return nil, fmt.Errorf("kafka closings topic is not configured")
	}

	conn, err := kafka.Dial("tcp", cfg.Brokers)
	if err != nil {
		return nil, fmt.Errorf("failed to dial kafka for day-closed producer: %w", err)
	}
	defer conn.Close()

	err = createKafkaTopicIfNotExists(conn, cfg.ClosingsTopic, cfg.NumPartitions, cfg.ReplicationFactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure closings topic %s exists for day-closed producer: %w", cfg.ClosingsTopic, err)
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers),
		Topic:        cfg.ClosingsTopic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        true, // Closing the day must not block on the broker
		WriteTimeout: writeTimeout,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("Failed to write messages asynchronously", "topic", cfg.ClosingsTopic, "error", err, "count", len(messages))
			} else {
				logger.Debug("Successfully wrote messages asynchronously", "topic", cfg.ClosingsTopic, "count", len(messages))
			}
		},
	}

	return &DayClosedMessageProducer{
		logger: logger,
		writer: writer,
		topic:  cfg.ClosingsTopic,
	}, nil
}

func (p *DayClosedMessageProducer) Publish(ctx context.Context, key string, value interface{}) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal message value for day-closed producer: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: jsonValue,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to publish day-closed message",
			"topic", p.topic,
			"key", key,
			"error", err,
		)
		return fmt.Errorf("failed to publish message to %s via day-closed producer: %w", p.topic, err)
	}

	p.logger.Debug("Published day-closed message",
		"topic", p.topic,
		"key", key,
	)
	return nil
}

func (p *DayClosedMessageProducer) Close() error {
	p.logger.Info("Closing day-closed Kafka message producer", "topic", p.topic)
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("failed to close day-closed kafka writer for topic %s: %w", p.topic, err)
	}
	return nil
}
