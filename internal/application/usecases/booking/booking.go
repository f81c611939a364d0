package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tours/internal/entities"
	"tours/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_packages_repo.go -package=mocks tours/internal/application/usecases/booking PackagesRepo
type PackagesRepo interface {
	Get(ctx context.Context, id int64) (*entities.TourPackage, error)
}

//go:generate mockgen -destination=mocks/mock_events_repo.go -package=mocks tours/internal/application/usecases/booking EventsRepo
type EventsRepo interface {
	Get(ctx context.Context, id int64) (*entities.TourEvent, error)
}

//go:generate mockgen -destination=mocks/mock_availability_repo.go -package=mocks tours/internal/application/usecases/booking AvailabilityRepo
type AvailabilityRepo interface {
	Find(ctx context.Context, target entities.BookingTarget, date entities.Date) (*entities.Availability, error)
	Check(ctx context.Context, target entities.BookingTarget, date entities.Date, slots int) (bool, error)
	Reserve(ctx context.Context, target entities.BookingTarget, date entities.Date, slots int) (bool, error)
}

//go:generate mockgen -destination=mocks/mock_bookings_repo.go -package=mocks tours/internal/application/usecases/booking BookingsRepo
type BookingsRepo interface {
	Create(ctx context.Context, b *entities.Booking) error
	Get(ctx context.Context, id int64) (*entities.Booking, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]entities.Booking, error)
	Cancel(ctx context.Context, id int64) (*entities.Booking, error)
}

//go:generate mockgen -destination=mocks/mock_payments_repo.go -package=mocks tours/internal/application/usecases/booking PaymentsRepo
type PaymentsRepo interface {
	Create(ctx context.Context, p *entities.Payment) error
	GetByOrderIDForUpdate(ctx context.Context, orderID string) (*entities.Payment, error)
	MarkPaid(ctx context.Context, orderID, paymentID, signature string, bookingID int64) error
	MarkFailed(ctx context.Context, orderID, paymentID, reason string) error
}

//go:generate mockgen -destination=mocks/mock_payment_gateway.go -package=mocks tours/internal/application/usecases/booking PaymentGateway
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*entities.GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// EventPublisher publishes into the transaction carried by ctx, when there is one.
//
//go:generate mockgen -destination=mocks/mock_event_publisher.go -package=mocks tours/internal/application/usecases/booking EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

const (
	serializationFailure = "40001"
	txAttempts           = 3
)

var (
	ordersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "booking_payment_orders_created_total",
		Help: "Total number of payment orders opened with the gateway",
	})
	bookingsConfirmedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_confirmed_total",
		Help: "Total number of bookings confirmed after payment",
	}, []string{"target"})
	verificationsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "booking_payment_verifications_rejected_total",
		Help: "Total number of payment confirmations that did not produce a booking",
	}, []string{"reason"})
)

type BookingUsecase struct {
	packages     PackagesRepo
	events       EventsRepo
	availability AvailabilityRepo
	bookings     BookingsRepo
	payments     PaymentsRepo
	gateway      PaymentGateway
	publisher    EventPublisher
	trManager    trm.Manager
}

func NewBookingUsecase(
	packages PackagesRepo,
	events EventsRepo,
	availability AvailabilityRepo,
	bookings BookingsRepo,
	payments PaymentsRepo,
	gateway PaymentGateway,
	publisher EventPublisher,
	trManager trm.Manager,
) *BookingUsecase {
	return &BookingUsecase{
		packages:     packages,
		events:       events,
		availability: availability,
		bookings:     bookings,
		payments:     payments,
		gateway:      gateway,
		publisher:    publisher,
		trManager:    trManager,
	}
}

// inTx runs fn in one serializable, cancelable transaction and retries it when
// Postgres reports a serialization failure.
func (u *BookingUsecase) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return WithRetry(txAttempts, func(ctx context.Context) error {
		return u.trManager.DoWithSettings(
			ctx,
			trmsql.MustSettings(
				settings.Must(settings.WithCancelable(true)),
				trmsql.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelSerializable}),
			),
			fn,
		)
	})(ctx)
}

func WithRetry(attempts int, f func(context.Context) error) func(context.Context) error {
	return func(ctx context.Context) error {
		var lastErr error
		for i := 0; i < attempts; i++ {
			err := f(ctx)
			if err == nil {
				return nil
			}

			var pgErr *pq.Error
			if errors.As(err, &pgErr) && pgErr.Code == serializationFailure {
				log.FromContext(ctx).WithError(err).Infof("serialization failure, attempt %d of %d", i+1, attempts)
				lastErr = err
				continue
			}

			return err
		}

		return lastErr
	}
}
