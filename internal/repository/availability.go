package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const availabilityColumns = `id, package_id, event_id, date, total_slots, booked_slots, price, active, created_at, updated_at`

// AvailabilityRepo is the per-day slot ledger. booked_slots only grows, and only
// through Reserve.
type AvailabilityRepo struct {
	conn
}

func NewAvailabilityRepo(db *sqlx.DB) *AvailabilityRepo {
	return &AvailabilityRepo{conn: newConn(db)}
}

func targetColumn(target entities.BookingTarget) string {
	if target.Kind == entities.TargetEvent {
		return "event_id"
	}

	return "package_id"
}

// Find returns the active ledger row for the target and calendar day.
func (r *AvailabilityRepo) Find(ctx context.Context, target entities.BookingTarget, date entities.Date) (*entities.Availability, error) {
	var a entities.Availability
	err := r.tr(ctx).GetContext(ctx, &a, `
		SELECT `+availabilityColumns+`
		FROM availability
		WHERE `+targetColumn(target)+` = $1 AND date = $2 AND active`,
		target.ID, entities.NewDate(date.Time),
	)
	if err != nil {
		return nil, notFound(err, "availability for "+target.String()+" on", date)
	}

	return &a, nil
}

// Check reports whether the target has at least slots free on date. A missing row
// means no capacity.
func (r *AvailabilityRepo) Check(ctx context.Context, target entities.BookingTarget, date entities.Date, slots int) (bool, error) {
	a, err := r.Find(ctx, target, date)
	if errors.Is(err, entities.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return a.Remaining() >= slots, nil
}

// Reserve books slots with a single conditional update, so concurrent callers can
// never push booked_slots past total_slots. It returns false when the row is
// missing or has too few free slots.
func (r *AvailabilityRepo) Reserve(ctx context.Context, target entities.BookingTarget, date entities.Date, slots int) (bool, error) {
	var id int64
	err := r.tr(ctx).QueryRowxContext(ctx, `
		UPDATE availability
		SET booked_slots = booked_slots + $3, updated_at = NOW()
		WHERE `+targetColumn(target)+` = $1 AND date = $2 AND active
			AND booked_slots + $3 <= total_slots
		RETURNING id`,
		target.ID, entities.NewDate(date.Time), slots,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to reserve %d slots for %s: %w", slots, target, err)
	}

	return true, nil
}

func (r *AvailabilityRepo) List(ctx context.Context, f AvailabilityFilter) ([]entities.Availability, error) {
	var w where
	w.add("active")
	if f.PackageID != nil {
		w.add("package_id = ?", *f.PackageID)
	}
	if f.EventID != nil {
		w.add("event_id = ?", *f.EventID)
	}
	if f.From != nil {
		w.add("date >= ?", *f.From)
	}
	if f.To != nil {
		w.add("date <= ?", *f.To)
	}

	query, args := w.query("SELECT "+availabilityColumns+" FROM availability", "ORDER BY date ASC")

	rows := []entities.Availability{}
	if err := r.tr(ctx).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}

	return rows, nil
}

func (r *AvailabilityRepo) Get(ctx context.Context, id int64) (*entities.Availability, error) {
	var a entities.Availability
	err := r.tr(ctx).GetContext(ctx, &a, "SELECT "+availabilityColumns+" FROM availability WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "availability", id)
	}

	return &a, nil
}

func (r *AvailabilityRepo) Create(ctx context.Context, a *entities.Availability) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO availability (package_id, event_id, date, total_slots, booked_slots, price, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		a.PackageID,
		a.EventID,
		a.Date,
		a.TotalSlots,
		a.BookedSlots,
		a.Price,
		a.Active,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("availability for %s already exists: %w", a.Date, entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}

	return nil
}

// Update changes capacity, price and the active flag. booked_slots is left to
// Reserve; the table constraint rejects a total below what is already booked.
func (r *AvailabilityRepo) Update(ctx context.Context, a *entities.Availability) error {
	err := r.tr(ctx).GetContext(ctx, a, `
		UPDATE availability
		SET total_slots = $2, price = $3, active = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING `+availabilityColumns,
		a.ID,
		a.TotalSlots,
		a.Price,
		a.Active,
	)
	if isCheckViolation(err) {
		return fmt.Errorf("total slots below booked slots: %w", entities.ErrConflict)
	}
	if err != nil {
		return notFound(err, "availability", a.ID)
	}

	return nil
}
