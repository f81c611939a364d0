package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
	"tours/internal/interfaces/message/events"
	"tours/internal/interfaces/message/events/mocks"
)

func confirmedBooking() entities.BookingConfirmed_v1 {
	return entities.BookingConfirmed_v1{
		Header:       entities.NewEventHeaderWithIdempotencyKey("booking-confirmed-order_1"),
		BookingID:    11,
		UserID:       "user-1",
		Target:       entities.PackageTarget(3),
		TargetName:   "Kerala Backwaters",
		ContactName:  "Meera  Nair",
		ContactEmail: " Meera@Example.com ",
		ContactPhone: "+91 99999 00000",
		TotalAmount:  decimal.RequireFromString("12000.50"),
		Currency:     "INR",
		OrderID:      "order_1",
		PaymentID:    "pay_1",
		ConfirmedAt:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRecordCustomerBookingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomersRepository(ctrl)

	evt := confirmedBooking()
	customers.EXPECT().
		RecordBooking(
			gomock.Any(),
			entities.Customer{
				UserID:    pointer.To("user-1"),
				Email:     "meera@example.com",
				FirstName: "Meera",
				LastName:  "Nair",
				Phone:     "+91 99999 00000",
			},
			int64(11),
			evt.TotalAmount,
			evt.ConfirmedAt,
			"Booking #11 - Kerala Backwaters",
		).
		Return(true, nil)

	h := events.NewHandler(mocks.NewMockNotifier(ctrl), customers)
	err := h.RecordCustomerBookingHandler().Handle(context.Background(), &evt)
	require.NoError(t, err)
}

func TestRecordCustomerBookingHandler_replay_is_not_an_error(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomersRepository(ctrl)

	evt := confirmedBooking()
	customers.EXPECT().
		RecordBooking(gomock.Any(), gomock.Any(), int64(11), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil)

	h := events.NewHandler(mocks.NewMockNotifier(ctrl), customers)
	require.NoError(t, h.RecordCustomerBookingHandler().Handle(context.Background(), &evt))
}

func TestRecordCustomerBookingHandler_storage_error_is_retried(t *testing.T) {
	ctrl := gomock.NewController(t)
	customers := mocks.NewMockCustomersRepository(ctrl)

	evt := confirmedBooking()
	customers.EXPECT().
		RecordBooking(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection reset"))

	h := events.NewHandler(mocks.NewMockNotifier(ctrl), customers)
	err := h.RecordCustomerBookingHandler().Handle(context.Background(), &evt)
	assert.ErrorContains(t, err, "connection reset")
}

func TestNotifyHandlers_never_fail(t *testing.T) {
	ctrl := gomock.NewController(t)
	notifier := mocks.NewMockNotifier(ctrl)

	booking := confirmedBooking()
	query := entities.ContactQueryCreated_v1{QueryID: 5, Email: "a@example.com"}

	notifier.EXPECT().BookingConfirmed(gomock.Any(), booking)
	notifier.EXPECT().ContactQueryCreated(gomock.Any(), query)

	h := events.NewHandler(notifier, mocks.NewMockCustomersRepository(ctrl))
	require.NoError(t, h.NotifyBookingConfirmedHandler().Handle(context.Background(), &booking))
	require.NoError(t, h.NotifyContactQueryHandler().Handle(context.Background(), &query))
}
