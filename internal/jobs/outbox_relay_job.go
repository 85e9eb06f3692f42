package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// relayBatchSize bounds how many staged messages one tick picks up.
const relayBatchSize = 100

// OutboxRelayJob drains the transactional outbox into the message broker.
// Runs every second: reads staged messages, publishes them, and marks them
// published. If publishing succeeds but marking fails, the next tick
// publishes the batch again, so delivery is at-least-once.
type OutboxRelayJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new job relaying staged events to the broker.
func NewOutboxRelayJob(outbox ports.OutboxRepository, publisher ports.EventPublisher, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.relay(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relay(ctx context.Context) error {
	messages, err := j.outbox.GetUnpublished(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	if len(messages) == 0 {
		return nil
	}

	if err = j.publisher.Publish(ctx, messages); err != nil {
		return err
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}

	return j.outbox.MarkPublished(ctx, ids)
}
