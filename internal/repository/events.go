package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const eventColumns = `id, name, description, location, start_date, end_date, image_url,
	website_url, currency, rating, review_count, active, created_at, updated_at`

// EventsRepo stores bookable tour events. Published domain events are kept by
// EventsLogRepo.
type EventsRepo struct {
	conn
}

func NewEventsRepo(db *sqlx.DB) *EventsRepo {
	return &EventsRepo{conn: newConn(db)}
}

func (r *EventsRepo) List(ctx context.Context, f EventFilter) ([]entities.TourEvent, error) {
	var w where
	if f.Location != "" {
		w.add("location ILIKE ?", like(f.Location))
	}
	if f.Active != nil {
		w.add("active = ?", *f.Active)
	}
	if f.DateFrom != nil {
		w.add("start_date >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		w.add("start_date <= ?", *f.DateTo)
	}
	if f.Search != "" {
		w.add("(name ILIKE ? OR description ILIKE ? OR location ILIKE ?)", like(f.Search), like(f.Search), like(f.Search))
	}

	query, args := w.query("SELECT "+eventColumns+" FROM events", "ORDER BY start_date ASC")

	events := []entities.TourEvent{}
	if err := r.tr(ctx).SelectContext(ctx, &events, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

func (r *EventsRepo) Get(ctx context.Context, id int64) (*entities.TourEvent, error) {
	var event entities.TourEvent
	err := r.tr(ctx).GetContext(ctx, &event, "SELECT "+eventColumns+" FROM events WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "event", id)
	}

	return &event, nil
}

func (r *EventsRepo) Create(ctx context.Context, event *entities.TourEvent) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO events (
			name, description, location, start_date, end_date, image_url, website_url, currency, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, rating, review_count, created_at, updated_at`,
		event.Name,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.ImageURL,
		event.WebsiteURL,
		event.Currency,
		event.Active,
	).Scan(&event.ID, &event.Rating, &event.ReviewCount, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *EventsRepo) Update(ctx context.Context, event *entities.TourEvent) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		UPDATE events SET
			name = $2, description = $3, location = $4, start_date = $5, end_date = $6,
			image_url = $7, website_url = $8, currency = $9, active = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING rating, review_count, created_at, updated_at`,
		event.ID,
		event.Name,
		event.Description,
		event.Location,
		event.StartDate,
		event.EndDate,
		event.ImageURL,
		event.WebsiteURL,
		event.Currency,
		event.Active,
	).Scan(&event.Rating, &event.ReviewCount, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return notFound(err, "event", event.ID)
	}

	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete event %d: %w", id, err)
	}

	return mustAffect(res, "event", id)
}
