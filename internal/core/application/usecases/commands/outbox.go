package commands

import (
	"context"
	"encoding/json"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// stageEvents converts the aggregate's recorded events into outbox messages
// and appends them within the current transaction. Must be called after all
// mutations succeeded and before Commit.
func stageEvents(ctx context.Context, outbox ports.OutboxRepository, events []order.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:          uuid.New(),
			EventName:   event.EventName(),
			AggregateID: event.AggregateID(),
			Payload:     payload,
		})
	}

	return outbox.Append(ctx, messages)
}
