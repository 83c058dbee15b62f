package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	writer messageWriter
	logger logger.Logger
}

// NewKafkaPublisher writes asynchronously: WriteMessages returns once the
// message is queued and delivery failures are only logged.
func NewKafkaPublisher(brokers []string, log logger.Logger) (*KafkaPublisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        TopicPortfolioEvents,
		Balancer:     &kafka.LeastBytes{},
		Async:        true,
		BatchTimeout: 50 * time.Millisecond,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("Failed to deliver analytics events", err, zap.Int("count", len(messages)))
			}
		},
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", TopicPortfolioEvents))
	return &KafkaPublisher{writer: writer, logger: log}, nil
}

func (p *KafkaPublisher) Publish(ctx context.Context, e analytics.Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal analytics event: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(string(e.Type) + ":" + e.Resource),
		Value: value,
		Time:  e.OccurredAt,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	err := p.writer.Close()
	p.logger.Info("Closed Kafka Producer")
	return err
}

// NoopPublisher drops every event. Used when analytics is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, analytics.Event) error { return nil }

// NewPublisher returns a Kafka publisher when analytics is enabled, and a
// no-op one otherwise. The close function is always safe to call.
func NewPublisher(cfg config.Config, log logger.Logger) (service.EventPublisher, func() error, error) {
	if !cfg.Features.EnableAnalytics {
		return NoopPublisher{}, func() error { return nil }, nil
	}
	p, err := NewKafkaPublisher(cfg.Kafka.Brokers, log)
	if err != nil {
		return nil, nil, err
	}
	return p, p.Close, nil
}

// DecodeEvent parses a message written by KafkaPublisher.
func DecodeEvent(msg kafka.Message) (analytics.Event, error) {
	var e analytics.Event
	if err := json.Unmarshal(msg.Value, &e); err != nil {
		return analytics.Event{}, fmt.Errorf("decode analytics event: %w", err)
	}
	if e.Type == "" {
		return analytics.Event{}, fmt.Errorf("decode analytics event: missing type")
	}
	return e, nil
}
