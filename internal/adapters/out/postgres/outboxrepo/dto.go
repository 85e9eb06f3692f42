// Package outboxrepo persists staged domain events for the transactional
// outbox. Rows are written in the same transaction as the state change they
// describe and flipped to published once the relay delivers them.
package outboxrepo

import (
	"time"

	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for staged outbox messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventName   string
	AggregateID int64
	Payload     []byte
	Published   bool      `gorm:"index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

func fromMessage(message ports.OutboxMessage) MessageDTO {
	return MessageDTO{
		ID:          message.ID,
		EventName:   message.EventName,
		AggregateID: message.AggregateID,
		Payload:     message.Payload,
	}
}

func toMessage(dto MessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID,
		EventName:   dto.EventName,
		AggregateID: dto.AggregateID,
		Payload:     dto.Payload,
	}
}
