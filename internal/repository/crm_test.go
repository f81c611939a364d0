package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
	"tours/internal/repository"
)

func TestCustomersRepo_RecordBookingIsIdempotent(t *testing.T) {
	ctx := context.Background()
	customers := repository.NewCustomersRepo(db)
	user := createUser(t)
	pkg := createPackage(t)

	b := &entities.Booking{
		UserID:        user.ID,
		PackageID:     pointer.ToInt64(pkg.ID),
		Adults:        1,
		ContactName:   "Asha Rao",
		ContactEmail:  user.Email,
		HotelCategory: entities.HotelThreeStar,
		TotalAmount:   decimal.NewFromInt(1000),
		Currency:      "INR",
		Status:        entities.BookingConfirmed,
		PaymentStatus: entities.BookingPaid,
	}
	require.NoError(t, repository.NewBookingsRepo(db).Create(ctx, b))

	customer := entities.Customer{
		UserID:    pointer.ToString(user.ID),
		Email:     user.Email,
		FirstName: "Asha",
		LastName:  "Rao",
	}

	for i, want := range []bool{true, false} {
		recorded, err := customers.RecordBooking(ctx, customer, b.ID, b.TotalAmount, time.Now(), "Kerala Backwaters")
		require.NoError(t, err)
		assert.Equal(t, want, recorded, "attempt %d", i+1)
	}

	list, err := customers.List(ctx, repository.CustomerFilter{Search: user.Email})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].TotalBookings)
	assert.True(t, list[0].TotalSpent.Equal(decimal.NewFromInt(1000)))

	interactions, err := customers.Interactions(ctx, list[0].ID)
	require.NoError(t, err)
	require.Len(t, interactions, 1)
	assert.Equal(t, b.ID, *interactions[0].BookingID)
}

func TestCustomersRepo_Recipients(t *testing.T) {
	ctx := context.Background()
	customers := repository.NewCustomersRepo(db)
	tag := "tag-" + uuid.NewString()

	vip := &entities.Customer{
		Email:        uuid.NewString() + "@example.com",
		FirstName:    "Vip",
		CustomerType: "vip",
		Status:       "active",
		Tags:         entities.StringList{tag},
	}
	other := &entities.Customer{
		Email:        uuid.NewString() + "@example.com",
		FirstName:    "Other",
		CustomerType: "individual",
		Status:       "active",
	}
	require.NoError(t, customers.Create(ctx, vip))
	require.NoError(t, customers.Create(ctx, other))

	recipients, err := customers.Recipients(ctx, entities.CampaignAudience{Tags: []string{tag}})
	require.NoError(t, err)
	require.Len(t, recipients, 1)
	assert.Equal(t, vip.Email, recipients[0].Email)
}

func TestEmailCampaignsRepo_SendingIsClaimedOnce(t *testing.T) {
	ctx := context.Background()
	campaigns := repository.NewEmailCampaignsRepo(db)

	c := &entities.EmailCampaign{
		Name:    "Monsoon offers",
		Subject: "Hello {{first_name}}",
		Content: "<p>Offers inside</p>",
		Status:  entities.CampaignDraft,
	}
	require.NoError(t, campaigns.Create(ctx, c))

	claimed, err := campaigns.StartSending(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, claimed)

	claimed, err = campaigns.StartSending(ctx, c.ID)
	require.NoError(t, err)
	assert.False(t, claimed)

	for _, delivered := range []bool{true, false, true, true} {
		require.NoError(t, campaigns.RecordDelivery(ctx, c.ID, delivered))
	}

	sent, failed, err := campaigns.FinishSending(ctx, c.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Equal(t, 1, failed)

	got, err := campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.CampaignSent, got.Status)
	assert.Equal(t, 3, got.SentCount)
	assert.Equal(t, 1, got.FailedCount)
	assert.NotNil(t, got.SentAt)

	got.Name = "edited"
	assert.ErrorIs(t, campaigns.Update(ctx, got), entities.ErrNotFound)

	_, _, err = campaigns.FinishSending(ctx, c.ID, time.Now())
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestEmailCampaignsRepo_StuckSendingCanBeFinished(t *testing.T) {
	ctx := context.Background()
	campaigns := repository.NewEmailCampaignsRepo(db)

	c := &entities.EmailCampaign{
		Name:    "Diwali getaways",
		Subject: "Hello",
		Content: "<p>Offers</p>",
		Status:  entities.CampaignDraft,
	}
	require.NoError(t, campaigns.Create(ctx, c))

	claimed, err := campaigns.StartSending(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, claimed)
	require.NoError(t, campaigns.RecordDelivery(ctx, c.ID, false))

	// the delivery that claimed it never finished; a later one closes it
	got, err := campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, entities.CampaignSending, got.Status)

	sent, failed, err := campaigns.FinishSending(ctx, c.ID, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 1, failed)

	got, err = campaigns.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.CampaignFailed, got.Status)
}

func TestDashboardRepo_Stats(t *testing.T) {
	ctx := context.Background()
	dashboard := repository.NewDashboardRepo(db)

	before, err := dashboard.Stats(ctx)
	require.NoError(t, err)

	createPackage(t)
	createUser(t)

	after, err := dashboard.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, before.TotalPackages+1, after.TotalPackages)
	assert.Equal(t, before.ActivePackages+1, after.ActivePackages)
	assert.Equal(t, before.TotalUsers+1, after.TotalUsers)
}
