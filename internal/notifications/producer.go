package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hallbook/internal/shared/config"
	"hallbook/pkg/logger"

	"github.com/IBM/sarama"
)

// Producer publishes booking lifecycle events for downstream consumers
// (email, SMS, reporting).
type Producer interface {
	Publish(ctx context.Context, event BookingEvent) error
	Close() error
}

type kafkaProducer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
}

// NewProducer connects a synchronous Kafka producer. When Kafka is
// disabled in config a no-op producer is returned so callers never need
// to branch.
func NewProducer(cfg *config.Config, log *logger.Logger) (Producer, error) {
	if !cfg.Kafka.Enabled {
		return &noopProducer{}, nil
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = cfg.Kafka.ProducerRetryMax
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(cfg.Kafka.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &kafkaProducer{
		producer: producer,
		topic:    cfg.Kafka.BookingTopic,
		log:      log,
	}, nil
}

func (p *kafkaProducer) Publish(_ context.Context, event BookingEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.BookingID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	p.log.Debug("published booking event",
		"type", event.Type,
		"booking_id", event.BookingID,
		"partition", partition,
		"offset", offset,
	)
	return nil
}

func (p *kafkaProducer) Close() error {
	return p.producer.Close()
}

// noopProducer drops events when Kafka is disabled.
type noopProducer struct{}

func (n *noopProducer) Publish(context.Context, BookingEvent) error { return nil }
func (n *noopProducer) Close() error                                { return nil }
