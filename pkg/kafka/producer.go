package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"

	"github.com/Ramsey-B/juniper/pkg/tracing"
)

// Producer handles Kafka event emission
type Producer struct {
	writer *kafka.Writer
	logger ectologger.Logger
	topic  string
}

// ProducerConfig holds Kafka producer configuration
type ProducerConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
	Compression  string
}

// NewProducer creates a new Kafka producer
func NewProducer(cfg ProducerConfig, logger ectologger.Logger) *Producer {
	compression := kafka.Snappy
	switch cfg.Compression {
	case "gzip":
		compression = kafka.Gzip
	case "lz4":
		compression = kafka.Lz4
	case "zstd":
		compression = kafka.Zstd
	case "none":
		compression = 0
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.LeastBytes{},
		BatchSize:              cfg.BatchSize,
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(cfg.RequiredAcks),
		Compression:            compression,
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		writer: writer,
		logger: logger,
		topic:  cfg.Topic,
	}
}

// Close closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// ComponentEvent represents a component lifecycle event
type ComponentEvent struct {
	EventType     string          `json:"event_type"` // component.created, component.updated, component.deleted, schedule.generated
	TenantID      string          `json:"tenant_id"`
	ComponentID   string          `json:"component_id"`
	ComponentType string          `json:"component_type"`
	ItineraryID   string          `json:"itinerary_id"`
	Data          json.RawMessage `json:"data,omitempty"`
	ChildCount    int             `json:"child_count,omitempty"`
	Timestamp     time.Time       `json:"timestamp"`
}

// PublishComponentEvent publishes a component lifecycle event to Kafka
func (p *Producer) PublishComponentEvent(ctx context.Context, event *ComponentEvent) error {
	ctx, span := tracing.StartSpan(ctx, "kafka.Producer.PublishComponentEvent")
	defer span.End()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.ComponentID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
			{Key: "tenant_id", Value: []byte(event.TenantID)},
			{Key: "component_type", Value: []byte(event.ComponentType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.WithContext(ctx).WithError(err).Error("Failed to publish component event")
		return err
	}

	p.logger.WithContext(ctx).WithFields(map[string]any{
		"event_type":     event.EventType,
		"component_id":   event.ComponentID,
		"component_type": event.ComponentType,
	}).Debug("Published component event")

	return nil
}
