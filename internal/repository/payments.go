package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const paymentColumns = `id, booking_id, user_id, order_id, payment_id, signature, amount, currency,
	status, method, draft, failure_reason, created_at, updated_at`

type PaymentsRepo struct {
	conn
}

func NewPaymentsRepo(db *sqlx.DB) *PaymentsRepo {
	return &PaymentsRepo{conn: newConn(db)}
}

func (r *PaymentsRepo) Create(ctx context.Context, p *entities.Payment) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO payments (user_id, order_id, amount, currency, status, draft)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		p.UserID,
		p.OrderID,
		p.Amount,
		p.Currency,
		p.Status,
		p.Draft,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payment for order %s: %w", p.OrderID, err)
	}

	return nil
}

// GetByOrderIDForUpdate locks the payment row until the surrounding transaction
// ends, so concurrent confirmations of one order run one after another.
func (r *PaymentsRepo) GetByOrderIDForUpdate(ctx context.Context, orderID string) (*entities.Payment, error) {
	var p entities.Payment
	err := r.tr(ctx).GetContext(ctx, &p,
		"SELECT "+paymentColumns+" FROM payments WHERE order_id = $1 FOR UPDATE", orderID)
	if err != nil {
		return nil, notFound(err, "payment for order", orderID)
	}

	return &p, nil
}

func (r *PaymentsRepo) MarkPaid(ctx context.Context, orderID, paymentID, signature string, bookingID int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE payments
		SET status = $2, payment_id = $3, signature = $4, booking_id = $5, updated_at = NOW()
		WHERE order_id = $1`,
		orderID, entities.PaymentPaid, paymentID, signature, bookingID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order %s paid: %w", orderID, err)
	}

	return mustAffect(res, "payment for order", orderID)
}

// MarkFailed records a gateway failure. Paid orders are left untouched.
func (r *PaymentsRepo) MarkFailed(ctx context.Context, orderID, paymentID, reason string) error {
	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE payments
		SET status = $2, payment_id = NULLIF($3, ''), failure_reason = $4, updated_at = NOW()
		WHERE order_id = $1 AND status <> $5`,
		orderID, entities.PaymentFailed, paymentID, reason, entities.PaymentPaid,
	)
	if err != nil {
		return fmt.Errorf("failed to mark order %s failed: %w", orderID, err)
	}

	return mustAffect(res, "unpaid payment for order", orderID)
}
