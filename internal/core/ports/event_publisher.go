package ports

import (
	"context"
)

// EventPublisher defines the contract for delivering staged outbox messages
// to the message broker. Implementations must be safe for repeated delivery
// of the same message: the relay guarantees at-least-once, not exactly-once.
type EventPublisher interface {
	// Publish delivers the messages to the broker.
	Publish(ctx context.Context, messages []OutboxMessage) error
}
