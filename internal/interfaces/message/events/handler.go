package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"tours/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_notifier.go -package=mocks tours/internal/interfaces/message/events Notifier
type Notifier interface {
	BookingConfirmed(ctx context.Context, evt entities.BookingConfirmed_v1)
	ContactQueryCreated(ctx context.Context, evt entities.ContactQueryCreated_v1)
}

//go:generate mockgen -destination=mocks/mock_customers_repository.go -package=mocks tours/internal/interfaces/message/events CustomersRepository
type CustomersRepository interface {
	RecordBooking(
		ctx context.Context,
		c entities.Customer,
		bookingID int64,
		amount decimal.Decimal,
		bookedAt time.Time,
		subject string,
	) (bool, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event entities.LoggedEvent) error
}

type Handler struct {
	notifier  Notifier
	customers CustomersRepository
}

func NewHandler(
	notifier Notifier,
	customers CustomersRepository,
) *Handler {
	return &Handler{
		notifier:  notifier,
		customers: customers,
	}
}
