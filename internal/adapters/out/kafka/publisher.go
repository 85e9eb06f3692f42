// Package kafka delivers staged outbox messages to a Kafka topic.
package kafka

import (
	"context"

	"fulfillment/internal/core/ports"

	skafka "github.com/segmentio/kafka-go"
)

// Writer defines the subset of segmentio kafka.Writer we need. This makes the publisher testable.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// Publisher writes outbox messages to a Kafka topic. Messages are keyed by
// event name so consumers can partition on it. The payload is the JSON the
// outbox staged at commit time; the publisher does not re-encode it.
type Publisher struct {
	writer Writer
}

// NewPublisher creates a Publisher that writes to the provided broker and topic.
func NewPublisher(brokerURL string, topic string) *Publisher {
	w := &skafka.Writer{
		Addr:     skafka.TCP(brokerURL),
		Topic:    topic,
		Balancer: &skafka.LeastBytes{},
	}
	return &Publisher{writer: w}
}

// NewPublisherWithWriter allows injecting a test writer.
func NewPublisherWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// Publish writes the messages to the topic in a single batch.
func (p *Publisher) Publish(ctx context.Context, messages []ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	kafkaMessages := make([]skafka.Message, 0, len(messages))
	for _, message := range messages {
		kafkaMessages = append(kafkaMessages, skafka.Message{
			Key:   []byte(message.EventName),
			Value: message.Payload,
		})
	}

	return p.writer.WriteMessages(ctx, kafkaMessages...)
}

// Close closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
