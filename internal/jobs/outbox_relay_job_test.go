package jobs

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutbox struct {
	pending   []ports.OutboxMessage
	published []uuid.UUID
	getErr    error
	markErr   error
}

func (f *fakeOutbox) Append(_ context.Context, messages []ports.OutboxMessage) error {
	f.pending = append(f.pending, messages...)
	return nil
}

func (f *fakeOutbox) GetUnpublished(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if len(f.pending) > limit {
		return f.pending[:limit], nil
	}
	return f.pending, nil
}

func (f *fakeOutbox) MarkPublished(_ context.Context, ids []uuid.UUID) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.published = append(f.published, ids...)
	return nil
}

type fakePublisher struct {
	batches [][]ports.OutboxMessage
	err     error
}

func (f *fakePublisher) Publish(_ context.Context, messages []ports.OutboxMessage) error {
	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, messages)
	return nil
}

// relayOnce runs a single relay pass without starting the cron schedule.
func relayOnce(t *testing.T, outbox ports.OutboxRepository, publisher ports.EventPublisher) error {
	t.Helper()
	job := NewOutboxRelayJob(outbox, publisher, slog.New(slog.DiscardHandler))
	return job.relay(context.Background())
}

func TestOutboxRelayJob_Relay(t *testing.T) {
	t.Run("should publish pending messages and mark them", func(t *testing.T) {
		first := uuid.New()
		second := uuid.New()
		outbox := &fakeOutbox{pending: []ports.OutboxMessage{
			{ID: first, EventName: "OrderCreated", Payload: []byte(`{"orderId":0}`)},
			{ID: second, EventName: "StatusChanged", Payload: []byte(`{"orderId":0,"status":"Priced"}`)},
		}}
		publisher := &fakePublisher{}

		err := relayOnce(t, outbox, publisher)
		require.NoError(t, err)

		require.Len(t, publisher.batches, 1)
		assert.Len(t, publisher.batches[0], 2)
		assert.Equal(t, []uuid.UUID{first, second}, outbox.published)
	})

	t.Run("should do nothing when the outbox is empty", func(t *testing.T) {
		outbox := &fakeOutbox{}
		publisher := &fakePublisher{}

		require.NoError(t, relayOnce(t, outbox, publisher))
		assert.Empty(t, publisher.batches)
		assert.Empty(t, outbox.published)
	})

	t.Run("should not mark messages when publishing fails", func(t *testing.T) {
		outbox := &fakeOutbox{pending: []ports.OutboxMessage{
			{ID: uuid.New(), EventName: "OrderCreated", Payload: []byte(`{}`)},
		}}
		publisher := &fakePublisher{err: errors.New("broker unavailable")}

		require.Error(t, relayOnce(t, outbox, publisher))
		assert.Empty(t, outbox.published, "unpublished messages must stay pending for the next tick")
	})
}
