package repository_test

import (
	"context"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
	"tours/internal/repository"
)

func TestBookingsRepo_CreateWithTravelers(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingsRepo(db)
	user := createUser(t)
	pkg := createPackage(t)
	date := futureDate(40)

	b := &entities.Booking{
		UserID:        user.ID,
		PackageID:     pointer.ToInt64(pkg.ID),
		TravelDate:    &date,
		Adults:        1,
		Children:      1,
		ContactName:   "Asha Rao",
		ContactEmail:  user.Email,
		HotelCategory: entities.HotelThreeStar,
		TotalAmount:   decimal.RequireFromString("1700.00"),
		Currency:      "INR",
		Status:        entities.BookingPending,
		PaymentStatus: entities.BookingUnpaid,
		Travelers: []entities.Traveler{
			{Type: entities.TravelerAdult, FirstName: "Asha", LastName: "Rao"},
			{Type: entities.TravelerChild, FirstName: "Mira", LastName: "Rao"},
		},
	}
	require.NoError(t, repo.Create(ctx, b))
	require.NotZero(t, b.ID)

	got, err := repo.Get(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PackageTarget(pkg.ID), got.Target())
	assert.Equal(t, date.String(), got.TravelDate.String())
	assert.True(t, got.TotalAmount.Equal(b.TotalAmount))
	require.Len(t, got.Travelers, 2)
	assert.Equal(t, entities.TravelerAdult, got.Travelers[0].Type)
	assert.Equal(t, entities.TravelerChild, got.Travelers[1].Type)

	list, err := repo.List(ctx, repository.BookingFilter{UserID: user.ID})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)

	cancelled, err := repo.Cancel(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.BookingCancelled, cancelled.Status)

	_, err = repo.Cancel(ctx, b.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestBookingsRepo_OrderIDIsUnique(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewBookingsRepo(db)
	user := createUser(t)
	evt := createEvent(t)
	orderID := "order_" + uuid.NewString()

	newBooking := func() *entities.Booking {
		return &entities.Booking{
			UserID:        user.ID,
			EventID:       pointer.ToInt64(evt.ID),
			Adults:        2,
			ContactName:   "Asha Rao",
			ContactEmail:  user.Email,
			HotelCategory: entities.HotelThreeStar,
			TotalAmount:   decimal.NewFromInt(1000),
			Currency:      "INR",
			Status:        entities.BookingConfirmed,
			PaymentStatus: entities.BookingPaid,
			OrderID:       pointer.ToString(orderID),
			PaymentID:     pointer.ToString("pay_" + uuid.NewString()),
		}
	}

	first := newBooking()
	require.NoError(t, repo.Create(ctx, first))

	err := repo.Create(ctx, newBooking())
	assert.ErrorIs(t, err, entities.ErrConflict)

	got, err := repo.GetByOrderID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = repo.GetByOrderID(ctx, "order_missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPaymentsRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewPaymentsRepo(db)
	user := createUser(t)
	pkg := createPackage(t)
	orderID := "order_" + uuid.NewString()

	draft := entities.BookingDraft{
		PackageID:     pointer.ToInt64(pkg.ID),
		Adults:        2,
		ContactName:   "Asha Rao",
		ContactEmail:  user.Email,
		HotelCategory: entities.HotelThreeStar,
	}
	p := &entities.Payment{
		UserID:   user.ID,
		OrderID:  orderID,
		Amount:   decimal.NewFromInt(2000),
		Currency: "INR",
		Status:   entities.PaymentCreated,
		Draft:    draft,
	}
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByOrderIDForUpdate(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentCreated, got.Status)
	assert.Equal(t, 2, got.Draft.Adults)
	assert.Equal(t, pkg.ID, *got.Draft.PackageID)

	require.NoError(t, repo.MarkFailed(ctx, orderID, "pay_1", "card declined"))

	b := &entities.Booking{
		UserID:        user.ID,
		PackageID:     pointer.ToInt64(pkg.ID),
		Adults:        2,
		ContactName:   "Asha Rao",
		ContactEmail:  user.Email,
		HotelCategory: entities.HotelThreeStar,
		TotalAmount:   p.Amount,
		Currency:      "INR",
		Status:        entities.BookingConfirmed,
		PaymentStatus: entities.BookingPaid,
		OrderID:       pointer.ToString(orderID),
		PaymentID:     pointer.ToString("pay_2"),
	}
	require.NoError(t, repository.NewBookingsRepo(db).Create(ctx, b))
	require.NoError(t, repo.MarkPaid(ctx, orderID, "pay_2", "sig", b.ID))

	got, err = repo.GetByOrderIDForUpdate(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, entities.PaymentPaid, got.Status)
	assert.Equal(t, b.ID, *got.BookingID)

	err = repo.MarkFailed(ctx, orderID, "pay_3", "late failure")
	assert.ErrorIs(t, err, entities.ErrNotFound, "paid orders cannot be failed")

	_, err = repo.GetByOrderIDForUpdate(ctx, "order_missing")
	assert.ErrorIs(t, err, entities.ErrNotFound)
}
