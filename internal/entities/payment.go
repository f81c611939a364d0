package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentState string

const (
	PaymentCreated   PaymentState = "created"
	PaymentAttempted PaymentState = "attempted"
	PaymentPaid      PaymentState = "paid"
	PaymentFailed    PaymentState = "failed"
)

// Payment is one attempted gateway order.
type Payment struct {
	ID            int64           `db:"id" json:"id"`
	BookingID     *int64          `db:"booking_id" json:"bookingId,omitempty"`
	UserID        string          `db:"user_id" json:"userId"`
	OrderID       string          `db:"order_id" json:"orderId"`
	PaymentID     *string         `db:"payment_id" json:"paymentId,omitempty"`
	Signature     *string         `db:"signature" json:"-"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	Currency      string          `db:"currency" json:"currency"`
	Status        PaymentState    `db:"status" json:"status"`
	Method        *string         `db:"method" json:"method,omitempty"`
	Draft         BookingDraft    `db:"draft" json:"-"`
	FailureReason *string         `db:"failure_reason" json:"failureReason,omitempty"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

// GatewayOrder is what the payment gateway returns for a newly opened order.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
}

type PaymentConfirmation struct {
	OrderID   string
	PaymentID string
	Signature string
}
