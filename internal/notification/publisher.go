package notification

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// Publisher hands domain events to the message bus.
type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NewPublisher returns a Kafka publisher, or a no-op one when no brokers are configured.
func NewPublisher(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		log.Info().Msg("📭 no Kafka brokers configured, domain events are not published")
		return NopPublisher{}
	}
	log.Info().Strs("brokers", brokers).Str("topic", topic).Msg("📬 Kafka publisher ready")
	return NewKafkaPublisher(brokers, topic)
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
		// requests never wait on the broker
		Async: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Warn().Err(err).Int("count", len(messages)).Msg("kafka delivery failed")
			}
		},
	}}
}

func (p *kafkaPublisher) Publish(ctx context.Context, msg Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Key()),
		Value: value,
		Time:  msg.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(msg.Type)},
		},
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NopPublisher drops every message.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Message) error { return nil }
func (NopPublisher) Close() error                          { return nil }

// Emit publishes msg and only logs failures; a broken bus never fails the request.
func Emit(ctx context.Context, p Publisher, msg Message) {
	if p == nil {
		return
	}
	if msg.OccurredAt.IsZero() {
		msg.OccurredAt = time.Now().UTC()
	}
	if err := p.Publish(ctx, msg); err != nil {
		log.Warn().Err(err).Str("type", msg.Type).Msg("publish domain event failed")
	}
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
