package kafka_test

import (
	"context"
	"errors"
	"testing"

	"fulfillment/internal/adapters/out/kafka"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	skafka "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []skafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...skafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublisher_Publish(t *testing.T) {
	t.Run("should write one kafka message per outbox message", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(writer)

		err := publisher.Publish(t.Context(), []ports.OutboxMessage{
			{ID: uuid.New(), EventName: "OrderCreated", AggregateID: 0, Payload: []byte(`{"orderId":0}`)},
			{ID: uuid.New(), EventName: "StatusChanged", AggregateID: 0, Payload: []byte(`{"orderId":0,"status":"Priced"}`)},
		})

		require.NoError(t, err)
		require.Len(t, writer.messages, 2)
		assert.Equal(t, []byte("OrderCreated"), writer.messages[0].Key)
		assert.JSONEq(t, `{"orderId":0}`, string(writer.messages[0].Value))
		assert.Equal(t, []byte("StatusChanged"), writer.messages[1].Key)
	})

	t.Run("should do nothing for an empty batch", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(writer)

		require.NoError(t, publisher.Publish(t.Context(), nil))
		assert.Empty(t, writer.messages)
	})

	t.Run("should propagate writer errors", func(t *testing.T) {
		writer := &fakeWriter{err: errors.New("broker unavailable")}
		publisher := kafka.NewPublisherWithWriter(writer)

		err := publisher.Publish(t.Context(), []ports.OutboxMessage{
			{ID: uuid.New(), EventName: "OrderCreated", Payload: []byte(`{}`)},
		})

		require.Error(t, err)
	})
}

func TestPublisher_Close(t *testing.T) {
	t.Run("should close the underlying writer", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := kafka.NewPublisherWithWriter(writer)

		require.NoError(t, publisher.Close())
		assert.True(t, writer.closed)
	})
}
