package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/application/services"
	"tours/internal/application/services/mocks"
	"tours/internal/entities"
)

type catalogFixture struct {
	packages     *mocks.MockPackagesRepo
	events       *mocks.MockEventsRepo
	availability *mocks.MockAvailabilityRepo
	svc          *services.CatalogService
}

func newCatalogFixture(t *testing.T) *catalogFixture {
	ctrl := gomock.NewController(t)
	f := &catalogFixture{
		packages:     mocks.NewMockPackagesRepo(ctrl),
		events:       mocks.NewMockEventsRepo(ctrl),
		availability: mocks.NewMockAvailabilityRepo(ctrl),
	}
	f.svc = services.NewCatalogService(f.packages, f.events, f.availability, nil)

	return f
}

func fromJSON[T any](body string) services.Decode[T] {
	return func(dst *T) error {
		return json.Unmarshal([]byte(body), dst)
	}
}

func storedPackage() *entities.TourPackage {
	return &entities.TourPackage{
		ID:                5,
		Name:              "Kerala Backwaters",
		Destination:       "Kerala",
		DurationDays:      5,
		MinPassengerCount: 2,
		MaxPassengerCount: 12,
		StartingPrice:     decimal.NewFromInt(15000),
		Currency:          "INR",
		Inclusions:        entities.StringList{"Houseboat", "Breakfast"},
		PricingTiers: entities.PricingTiers{
			entities.HotelThreeStar: {
				entities.WithoutFlights: {Price: decimal.NewFromInt(15000)},
			},
			entities.HotelFourFiveStar: {
				entities.WithoutFlights: {Price: decimal.NewFromInt(22000)},
			},
		},
		Active: true,
	}
}

func TestCatalogService_CreatePackage_defaults(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.TourPackage) error {
		assert.True(t, p.Active)
		assert.Equal(t, "INR", p.Currency)
		assert.Equal(t, 1, p.MinPassengerCount)
		p.ID = 9
		return nil
	})

	pkg, err := f.svc.CreatePackage(context.Background(), fromJSON[entities.TourPackage](`{
		"name": "Goa Beaches",
		"destination": "Goa",
		"startingPrice": "1000"
	}`))
	require.NoError(t, err)
	assert.Equal(t, int64(9), pkg.ID)
	assert.True(t, pkg.Active)
}

func TestCatalogService_CreatePackage_keeps_explicit_values(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.TourPackage) error {
		assert.False(t, p.Active)
		assert.Equal(t, "USD", p.Currency)
		assert.Equal(t, 4, p.MinPassengerCount)
		assert.Zero(t, p.ID)
		return nil
	})

	_, err := f.svc.CreatePackage(context.Background(), fromJSON[entities.TourPackage](`{
		"id": 77,
		"name": "Bali Escape",
		"destination": "Bali",
		"startingPrice": 45000,
		"currency": "USD",
		"minPassengerCount": 4,
		"active": false
	}`))
	require.NoError(t, err)
}

func TestCatalogService_CreatePackage_validation(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "missing name",
			body:  `{"destination": "Goa", "startingPrice": 1000}`,
			field: "name",
		},
		{
			name:  "free package",
			body:  `{"name": "Goa", "destination": "Goa", "startingPrice": 0}`,
			field: "startingPrice",
		},
		{
			name:  "max below min",
			body:  `{"name": "Goa", "destination": "Goa", "startingPrice": 10, "minPassengerCount": 5, "maxPassengerCount": 2}`,
			field: "maxPassengerCount",
		},
		{
			name:  "bad image url",
			body:  `{"name": "Goa", "destination": "Goa", "startingPrice": 10, "imageUrl": "not a url"}`,
			field: "imageUrl",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCatalogFixture(t)

			_, err := f.svc.CreatePackage(context.Background(), fromJSON[entities.TourPackage](tc.body))

			var verr validation.Errors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tc.field)
		})
	}
}

func TestCatalogService_UpdatePackage_changes_only_sent_fields(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Get(gomock.Any(), int64(5)).Return(storedPackage(), nil)
	f.packages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.TourPackage) error {
		assert.Equal(t, int64(5), p.ID)
		assert.True(t, p.Featured)
		assert.Equal(t, "Kerala Backwaters", p.Name)
		assert.Equal(t, "Kerala", p.Destination)
		assert.Equal(t, 2, p.MinPassengerCount)
		assert.True(t, p.StartingPrice.Equal(decimal.NewFromInt(15000)))
		assert.Equal(t, entities.StringList{"Houseboat", "Breakfast"}, p.Inclusions)
		assert.True(t, p.Active)
		return nil
	})

	pkg, err := f.svc.UpdatePackage(context.Background(), 5, fromJSON[entities.TourPackage](`{"id": 99, "featured": true}`))
	require.NoError(t, err)
	assert.Equal(t, int64(5), pkg.ID)
}

func TestCatalogService_UpdatePackage_replaces_pricing_tiers(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Get(gomock.Any(), int64(5)).Return(storedPackage(), nil)
	f.packages.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p *entities.TourPackage) error {
		require.Len(t, p.PricingTiers, 1)
		tier, ok := p.PricingTiers.Lookup(entities.HotelThreeStar, entities.WithFlights)
		require.True(t, ok)
		assert.True(t, tier.Price.Equal(decimal.NewFromInt(21000)))
		return nil
	})

	_, err := f.svc.UpdatePackage(context.Background(), 5, fromJSON[entities.TourPackage](`{
		"pricingTiers": {"3_star": {"with_flights": {"price": "21000"}}}
	}`))
	require.NoError(t, err)
}

func TestCatalogService_UpdatePackage_rejects_invalid_result(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Get(gomock.Any(), int64(5)).Return(storedPackage(), nil)

	_, err := f.svc.UpdatePackage(context.Background(), 5, fromJSON[entities.TourPackage](`{"maxPassengerCount": 1}`))

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "maxPassengerCount")
}

func TestCatalogService_UpdatePackage_not_found(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Get(gomock.Any(), int64(404)).Return(nil, entities.ErrNotFound)

	_, err := f.svc.UpdatePackage(context.Background(), 404, fromJSON[entities.TourPackage](`{"featured": true}`))
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestCatalogService_CreateEvent_defaults(t *testing.T) {
	f := newCatalogFixture(t)

	f.events.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entities.TourEvent) error {
		assert.True(t, e.Active)
		assert.Equal(t, "INR", e.Currency)
		return nil
	})

	_, err := f.svc.CreateEvent(context.Background(), fromJSON[entities.TourEvent](`{
		"name": "Sunburn Festival",
		"location": "Goa",
		"startDate": "2025-12-28T16:00:00Z"
	}`))
	require.NoError(t, err)
}

func TestCatalogService_CreateEvent_end_before_start(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.CreateEvent(context.Background(), fromJSON[entities.TourEvent](`{
		"name": "Sunburn Festival",
		"location": "Goa",
		"startDate": "2025-12-28T16:00:00Z",
		"endDate": "2025-12-27T16:00:00Z"
	}`))

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "endDate")
}

func TestCatalogService_UpdateEvent_changes_only_sent_fields(t *testing.T) {
	f := newCatalogFixture(t)

	stored := &entities.TourEvent{
		ID:        3,
		Name:      "Hornbill Festival",
		Location:  "Kohima",
		StartDate: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Currency:  "INR",
		Active:    true,
	}
	f.events.EXPECT().Get(gomock.Any(), int64(3)).Return(stored, nil)
	f.events.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entities.TourEvent) error {
		assert.False(t, e.Active)
		assert.Equal(t, "Hornbill Festival", e.Name)
		assert.Equal(t, "Kohima", e.Location)
		assert.Equal(t, stored.StartDate, e.StartDate)
		return nil
	})

	_, err := f.svc.UpdateEvent(context.Background(), 3, fromJSON[entities.TourEvent](`{"active": false}`))
	require.NoError(t, err)
}

func TestCatalogService_CreateAvailability_defaults(t *testing.T) {
	f := newCatalogFixture(t)

	f.availability.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.Availability) error {
		assert.True(t, a.Active)
		assert.Zero(t, a.BookedSlots)
		assert.Equal(t, "2025-03-10", a.Date.String())
		assert.Equal(t, pointer.ToInt64(5), a.PackageID)
		return nil
	})

	_, err := f.svc.CreateAvailability(context.Background(), fromJSON[entities.Availability](`{
		"packageId": 5,
		"date": "2025-03-10",
		"totalSlots": 20,
		"bookedSlots": 7
	}`))
	require.NoError(t, err)
}

func TestCatalogService_CreateAvailability_validation(t *testing.T) {
	testCases := []struct {
		name  string
		body  string
		field string
	}{
		{
			name:  "no target",
			body:  `{"date": "2025-03-10", "totalSlots": 20}`,
			field: "packageId",
		},
		{
			name:  "both targets",
			body:  `{"packageId": 1, "eventId": 2, "date": "2025-03-10", "totalSlots": 20}`,
			field: "packageId",
		},
		{
			name:  "no date",
			body:  `{"packageId": 1, "totalSlots": 20}`,
			field: "date",
		},
		{
			name:  "no slots",
			body:  `{"packageId": 1, "date": "2025-03-10"}`,
			field: "totalSlots",
		},
		{
			name:  "negative price",
			body:  `{"eventId": 2, "date": "2025-03-10", "totalSlots": 20, "price": "-5"}`,
			field: "price",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCatalogFixture(t)

			_, err := f.svc.CreateAvailability(context.Background(), fromJSON[entities.Availability](tc.body))

			var verr validation.Errors
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr, tc.field)
		})
	}
}

func TestCatalogService_UpdateAvailability_changes_only_sent_fields(t *testing.T) {
	f := newCatalogFixture(t)

	stored := &entities.Availability{
		ID:          11,
		PackageID:   pointer.ToInt64(5),
		Date:        entities.NewDate(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
		TotalSlots:  20,
		BookedSlots: 6,
		Price:       decimal.NewNullDecimal(decimal.NewFromInt(900)),
		Active:      true,
	}
	f.availability.EXPECT().Get(gomock.Any(), int64(11)).Return(stored, nil)
	f.availability.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *entities.Availability) error {
		assert.Equal(t, int64(11), a.ID)
		assert.Equal(t, 30, a.TotalSlots)
		assert.Equal(t, 6, a.BookedSlots)
		assert.Equal(t, "2025-03-10", a.Date.String())
		assert.True(t, a.Price.Valid)
		assert.True(t, a.Active)
		return nil
	})

	row, err := f.svc.UpdateAvailability(context.Background(), 11, fromJSON[entities.Availability](`{
		"totalSlots": 30,
		"bookedSlots": 0,
		"date": "2026-01-01"
	}`))
	require.NoError(t, err)
	assert.Equal(t, 24, row.Remaining())
}

func TestCatalogService_UpdateAvailability_rejects_zero_slots(t *testing.T) {
	f := newCatalogFixture(t)

	f.availability.EXPECT().Get(gomock.Any(), int64(11)).Return(&entities.Availability{
		ID:         11,
		EventID:    pointer.ToInt64(2),
		TotalSlots: 20,
		Active:     true,
	}, nil)

	_, err := f.svc.UpdateAvailability(context.Background(), 11, fromJSON[entities.Availability](`{"totalSlots": 0}`))

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "totalSlots")
}

func TestCatalogService_PackagePrice(t *testing.T) {
	f := newCatalogFixture(t)

	f.packages.EXPECT().Get(gomock.Any(), int64(5)).Return(storedPackage(), nil).Times(2)

	quote, err := f.svc.PackagePrice(context.Background(), 5, "", false)
	require.NoError(t, err)
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(15000)))
	assert.True(t, quote.ChildrenPrice.Equal(decimal.NewFromInt(10500)))

	quote, err = f.svc.PackagePrice(context.Background(), 5, entities.HotelFourFiveStar, false)
	require.NoError(t, err)
	assert.True(t, quote.Price.Equal(decimal.NewFromInt(22000)))
}

func TestCatalogService_PackagePrice_unknown_category(t *testing.T) {
	f := newCatalogFixture(t)

	_, err := f.svc.PackagePrice(context.Background(), 5, "7_star", true)

	var verr validation.Errors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr, "hotelCategory")
}
