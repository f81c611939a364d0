package entities

import (
	"time"

	"github.com/google/uuid"
)

// LoggedEvent is a published domain event kept in the append-only events log.
type LoggedEvent struct {
	ID          uuid.UUID `db:"event_id"`
	PublishedAt time.Time `db:"published_at"`
	EventName   string    `db:"event_name"`
	Payload     []byte    `db:"event_payload"`
}
