package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const bookingColumns = `id, user_id, package_id, event_id, travel_date, adults, children,
	contact_name, contact_email, contact_phone, hotel_category, flight_included,
	total_amount, currency, status, payment_status, order_id, payment_id,
	special_requests, created_at, updated_at`

const travelerColumns = `id, booking_id, type, first_name, last_name, date_of_birth, gender,
	nationality, passport_number, passport_expiry, dietary_requirements, medical_conditions,
	emergency_contact_name, emergency_contact_phone, special_requests, created_at`

type BookingsRepo struct {
	conn
}

func NewBookingsRepo(db *sqlx.DB) *BookingsRepo {
	return &BookingsRepo{conn: newConn(db)}
}

// Create inserts the booking and its travelers. Callers wrap it in a transaction
// when the two must land together.
func (r *BookingsRepo) Create(ctx context.Context, b *entities.Booking) error {
	query, args, err := sqlx.Named(`
		INSERT INTO bookings (
			user_id, package_id, event_id, travel_date, adults, children,
			contact_name, contact_email, contact_phone, hotel_category, flight_included,
			total_amount, currency, status, payment_status, order_id, payment_id, special_requests
		) VALUES (
			:user_id, :package_id, :event_id, :travel_date, :adults, :children,
			:contact_name, :contact_email, :contact_phone, :hotel_category, :flight_included,
			:total_amount, :currency, :status, :payment_status, :order_id, :payment_id, :special_requests
		) RETURNING id, created_at, updated_at`, b)
	if err != nil {
		return fmt.Errorf("failed to bind booking: %w", err)
	}

	err = r.tr(ctx).QueryRowxContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("booking for order %v already exists: %w", b.OrderID, entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	for i := range b.Travelers {
		b.Travelers[i].BookingID = b.ID
		if err := r.addTraveler(ctx, &b.Travelers[i]); err != nil {
			return err
		}
	}

	return nil
}

func (r *BookingsRepo) addTraveler(ctx context.Context, t *entities.Traveler) error {
	query, args, err := sqlx.Named(`
		INSERT INTO travelers (
			booking_id, type, first_name, last_name, date_of_birth, gender, nationality,
			passport_number, passport_expiry, dietary_requirements, medical_conditions,
			emergency_contact_name, emergency_contact_phone, special_requests
		) VALUES (
			:booking_id, :type, :first_name, :last_name, :date_of_birth, :gender, :nationality,
			:passport_number, :passport_expiry, :dietary_requirements, :medical_conditions,
			:emergency_contact_name, :emergency_contact_phone, :special_requests
		) RETURNING id, created_at`, t)
	if err != nil {
		return fmt.Errorf("failed to bind traveler: %w", err)
	}

	err = r.tr(ctx).QueryRowxContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add traveler to booking %d: %w", t.BookingID, err)
	}

	return nil
}

func (r *BookingsRepo) Get(ctx context.Context, id int64) (*entities.Booking, error) {
	var b entities.Booking
	err := r.tr(ctx).GetContext(ctx, &b, "SELECT "+bookingColumns+" FROM bookings WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "booking", id)
	}

	if err := r.loadTravelers(ctx, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingsRepo) GetByOrderID(ctx context.Context, orderID string) (*entities.Booking, error) {
	var b entities.Booking
	err := r.tr(ctx).GetContext(ctx, &b, "SELECT "+bookingColumns+" FROM bookings WHERE order_id = $1", orderID)
	if err != nil {
		return nil, notFound(err, "booking for order", orderID)
	}

	if err := r.loadTravelers(ctx, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingsRepo) List(ctx context.Context, f BookingFilter) ([]entities.Booking, error) {
	var w where
	if f.UserID != "" {
		w.add("user_id = ?", f.UserID)
	}
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}

	query, args := w.query("SELECT "+bookingColumns+" FROM bookings", "ORDER BY created_at DESC")

	bookings := []entities.Booking{}
	if err := r.tr(ctx).SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// Cancel moves a non-terminal booking to cancelled.
func (r *BookingsRepo) Cancel(ctx context.Context, id int64) (*entities.Booking, error) {
	var b entities.Booking
	err := r.tr(ctx).GetContext(ctx, &b, `
		UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ($2, $3)
		RETURNING `+bookingColumns,
		id, entities.BookingCancelled, entities.BookingFailed,
	)
	if err != nil {
		return nil, notFound(err, "cancellable booking", id)
	}

	return &b, nil
}

func (r *BookingsRepo) loadTravelers(ctx context.Context, b *entities.Booking) error {
	travelers := []entities.Traveler{}
	err := r.tr(ctx).SelectContext(ctx, &travelers,
		"SELECT "+travelerColumns+" FROM travelers WHERE booking_id = $1 ORDER BY id", b.ID)
	if err != nil {
		return fmt.Errorf("failed to load travelers of booking %d: %w", b.ID, err)
	}
	b.Travelers = travelers

	return nil
}
