// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second to deliver committed domain events
// from the transactional outbox to the message broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *", running every second so
// consumers see events shortly after the owning transaction commits.
//
// # Error Handling
//
// Relay failures are logged and retried on the next tick. Because messages
// are only marked published after the broker accepted them, a crash between
// publish and mark results in redelivery, never in loss.
package jobs
