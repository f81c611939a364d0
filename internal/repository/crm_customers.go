package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"tours/internal/entities"
)

const customerColumns = `id, user_id, email, first_name, last_name, phone, company, customer_type,
	status, source, tags, notes, assigned_to, total_spent, total_bookings, last_booking_date,
	created_at, updated_at`

type CustomersRepo struct {
	conn
}

func NewCustomersRepo(db *sqlx.DB) *CustomersRepo {
	return &CustomersRepo{conn: newConn(db)}
}

func (r *CustomersRepo) List(ctx context.Context, f CustomerFilter) ([]entities.Customer, error) {
	var w where
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.CustomerType != "" {
		w.add("customer_type = ?", f.CustomerType)
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = ?", f.AssignedTo)
	}
	if f.Search != "" {
		w.add("(email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR company ILIKE ?)",
			like(f.Search), like(f.Search), like(f.Search), like(f.Search))
	}

	query, args := w.query("SELECT "+customerColumns+" FROM customers", "ORDER BY created_at DESC")

	customers := []entities.Customer{}
	if err := r.tr(ctx).SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return customers, nil
}

func (r *CustomersRepo) Get(ctx context.Context, id int64) (*entities.Customer, error) {
	var c entities.Customer
	err := r.tr(ctx).GetContext(ctx, &c, "SELECT "+customerColumns+" FROM customers WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "customer", id)
	}

	return &c, nil
}

func (r *CustomersRepo) Create(ctx context.Context, c *entities.Customer) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO customers (
			user_id, email, first_name, last_name, phone, company, customer_type,
			status, source, tags, notes, assigned_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, total_spent, total_bookings, created_at, updated_at`,
		c.UserID, c.Email, c.FirstName, c.LastName, c.Phone, c.Company, c.CustomerType,
		c.Status, c.Source, c.Tags, c.Notes, c.AssignedTo,
	).Scan(&c.ID, &c.TotalSpent, &c.TotalBookings, &c.CreatedAt, &c.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("customer %s already exists: %w", c.Email, entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

func (r *CustomersRepo) Update(ctx context.Context, c *entities.Customer) error {
	err := r.tr(ctx).GetContext(ctx, c, `
		UPDATE customers SET
			first_name = $2, last_name = $3, phone = $4, company = $5, customer_type = $6,
			status = $7, source = $8, tags = $9, notes = $10, assigned_to = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING `+customerColumns,
		c.ID, c.FirstName, c.LastName, c.Phone, c.Company, c.CustomerType,
		c.Status, c.Source, c.Tags, c.Notes, c.AssignedTo,
	)
	if err != nil {
		return notFound(err, "customer", c.ID)
	}

	return nil
}

func (r *CustomersRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM customers WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}

	return mustAffect(res, "customer", id)
}

// RecordBooking upserts the customer behind a confirmed booking and logs a booking
// interaction. Totals move only the first time a booking is recorded, so replays of
// the same booking are no-ops.
func (r *CustomersRepo) RecordBooking(
	ctx context.Context,
	c entities.Customer,
	bookingID int64,
	amount decimal.Decimal,
	bookedAt time.Time,
	subject string,
) (recorded bool, err error) {
	var customerID int64
	err = r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO customers (user_id, email, first_name, last_name, phone, source)
		VALUES ($1, $2, $3, $4, $5, 'booking')
		ON CONFLICT (email) DO UPDATE SET
			user_id = COALESCE(customers.user_id, EXCLUDED.user_id),
			phone = COALESCE(NULLIF(customers.phone, ''), EXCLUDED.phone),
			updated_at = NOW()
		RETURNING id`,
		c.UserID, c.Email, c.FirstName, c.LastName, c.Phone,
	).Scan(&customerID)
	if err != nil {
		return false, fmt.Errorf("failed to upsert customer %s: %w", c.Email, err)
	}

	res, err := r.tr(ctx).ExecContext(ctx, `
		INSERT INTO customer_interactions (customer_id, interaction_type, subject, booking_id)
		VALUES ($1, 'booking', $2, $3)
		ON CONFLICT (booking_id) DO NOTHING`,
		customerID, subject, bookingID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to record booking interaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	_, err = r.tr(ctx).ExecContext(ctx, `
		UPDATE customers SET
			total_spent = total_spent + $2,
			total_bookings = total_bookings + 1,
			last_booking_date = GREATEST(COALESCE(last_booking_date, $3), $3),
			updated_at = NOW()
		WHERE id = $1`,
		customerID, amount, bookedAt,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update totals of customer %d: %w", customerID, err)
	}

	return true, nil
}

func (r *CustomersRepo) Interactions(ctx context.Context, customerID int64) ([]entities.CustomerInteraction, error) {
	interactions := []entities.CustomerInteraction{}
	err := r.tr(ctx).SelectContext(ctx, &interactions, `
		SELECT id, customer_id, interaction_type, subject, description, booking_id, created_by, created_at
		FROM customer_interactions
		WHERE customer_id = $1
		ORDER BY created_at DESC`,
		customerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions of customer %d: %w", customerID, err)
	}

	return interactions, nil
}

// Recipients resolves the customers matching a campaign audience.
func (r *CustomersRepo) Recipients(ctx context.Context, audience entities.CampaignAudience) ([]entities.Recipient, error) {
	var w where
	w.add("status <> 'blacklisted'")
	if len(audience.CustomerTypes) > 0 {
		w.add("customer_type = ANY(?)", pq.Array(audience.CustomerTypes))
	}
	if len(audience.Statuses) > 0 {
		w.add("status = ANY(?)", pq.Array(audience.Statuses))
	}
	if len(audience.Tags) > 0 {
		w.add("jsonb_exists_any(tags, ?)", pq.Array(audience.Tags))
	}

	query, args := w.query("SELECT email, first_name, last_name FROM customers", "ORDER BY id")

	recipients := []entities.Recipient{}
	if err := r.tr(ctx).SelectContext(ctx, &recipients, query, args...); err != nil {
		return nil, fmt.Errorf("failed to resolve campaign recipients: %w", err)
	}

	return recipients, nil
}
