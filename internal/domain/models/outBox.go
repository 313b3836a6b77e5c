package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is an event intent written in the same transaction as the
// order row it describes.
type OutboxMessage struct {
	EventID     string     `json:"event_id" db:"event_id"`
	AggregateID string     `json:"aggregate_id" db:"aggregate_id"`
	EventType   EventType  `json:"event_type" db:"event_type"`
	Topic       string     `json:"topic" db:"topic"`
	Key         string     `json:"key" db:"msg_key"`
	Payload     []byte     `json:"payload" db:"payload"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	SentAt      *time.Time `json:"sent_at,omitempty" db:"sent_at"`
}

func NewOutboxMessage(topic string, event OrderEvent, now time.Time) (*OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal order event: %w", err)
	}

	return &OutboxMessage{
		EventID:     uuid.NewString(),
		AggregateID: event.OrderID,
		EventType:   event.EventType,
		Topic:       topic,
		Key:         event.OrderID,
		Payload:     payload,
		CreatedAt:   now,
	}, nil
}
