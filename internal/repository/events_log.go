package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

// EventsLogRepo is the append-only log of every published domain event.
type EventsLogRepo struct {
	conn
}

func NewEventsLogRepo(db *sqlx.DB) *EventsLogRepo {
	return &EventsLogRepo{conn: newConn(db)}
}

func (r *EventsLogRepo) SaveEvent(ctx context.Context, event entities.LoggedEvent) error {
	_, err := r.tr(ctx).ExecContext(ctx, `
		INSERT INTO events_log (event_id, published_at, event_name, event_payload)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING`,
		event.ID, event.PublishedAt, event.EventName, string(event.Payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save event %s: %w", event.EventName, err)
	}

	return nil
}
