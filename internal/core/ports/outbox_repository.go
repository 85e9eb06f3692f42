package ports

import (
	"context"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event staged for publication. Messages are
// written in the same transaction as the state change they describe and
// relayed to the broker afterwards, so consumers never observe an event for
// a change that rolled back.
type OutboxMessage struct {
	// ID uniquely identifies the message row
	ID uuid.UUID

	// EventName is the domain event's name, used as the broker message key
	EventName string

	// AggregateID is the identifier of the order the event belongs to
	AggregateID int64

	// Payload is the JSON-encoded event
	Payload []byte
}

// OutboxRepository defines the persistence contract for staged events.
type OutboxRepository interface {
	// Append stages messages for publication within the current transaction.
	Append(ctx context.Context, messages []OutboxMessage) error

	// GetUnpublished retrieves staged messages that have not been relayed
	// yet, oldest first, up to the given limit.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that the given messages reached the broker.
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}
