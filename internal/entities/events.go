package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Event interface {
	IsInternal() bool
}

type BookingConfirmed_v1 struct {
	Header EventHeader `json:"header"`

	BookingID    int64           `json:"booking_id"`
	UserID       string          `json:"user_id"`
	Target       BookingTarget   `json:"target"`
	TargetName   string          `json:"target_name"`
	TravelDate   *Date           `json:"travel_date,omitempty"`
	Adults       int             `json:"adults"`
	Children     int             `json:"children"`
	ContactName  string          `json:"contact_name"`
	ContactEmail string          `json:"contact_email"`
	ContactPhone string          `json:"contact_phone"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Currency     string          `json:"currency"`
	OrderID      string          `json:"order_id"`
	PaymentID    string          `json:"payment_id"`
	ConfirmedAt  time.Time       `json:"confirmed_at"`
}

func (e BookingConfirmed_v1) IsInternal() bool {
	return false
}

type BookingCancelled_v1 struct {
	Header EventHeader `json:"header"`

	BookingID    int64     `json:"booking_id"`
	UserID       string    `json:"user_id"`
	ContactEmail string    `json:"contact_email"`
	CancelledAt  time.Time `json:"cancelled_at"`
}

func (e BookingCancelled_v1) IsInternal() bool {
	return false
}

type ContactQueryCreated_v1 struct {
	Header EventHeader `json:"header"`

	QueryID   int64     `json:"query_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (e ContactQueryCreated_v1) IsInternal() bool {
	return false
}
