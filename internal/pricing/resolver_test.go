package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"tours/internal/entities"
	"tours/internal/pricing"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func nd(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(d(s))
}

func TestResolve_FlatFallback(t *testing.T) {
	pkg := entities.TourPackage{
		StartingPrice:      d("1000"),
		StrikeThroughPrice: nd("1299.99"),
	}

	testCases := []struct {
		name           string
		pkg            entities.TourPackage
		category       entities.HotelCategory
		flightIncluded bool
	}{
		{name: "no tiers", pkg: pkg, category: entities.HotelThreeStar},
		{name: "unknown category", pkg: withTiers(pkg), category: "7_star"},
		{
			name: "missing flight option",
			pkg: func() entities.TourPackage {
				p := pkg
				p.PricingTiers = entities.PricingTiers{
					entities.HotelThreeStar: {entities.WithoutFlights: {Price: d("800")}},
				}
				return p
			}(),
			category:       entities.HotelThreeStar,
			flightIncluded: true,
		},
		{
			name: "zero tier price",
			pkg: func() entities.TourPackage {
				p := pkg
				p.PricingTiers = entities.PricingTiers{
					entities.HotelThreeStar: {entities.WithFlights: {Price: d("0")}},
				}
				return p
			}(),
			category:       entities.HotelThreeStar,
			flightIncluded: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := pricing.Resolve(tc.pkg, tc.category, tc.flightIncluded)

			assert.Equal(t, "1000.00", q.Price.StringFixed(2))
			assert.Equal(t, "700.00", q.ChildrenPrice.StringFixed(2))
			assert.True(t, q.StrikeThroughPrice.Valid)
			assert.Equal(t, "1299.99", q.StrikeThroughPrice.Decimal.StringFixed(2))
			assert.Equal(t, "909.99", q.ChildrenStrikeThroughPrice.Decimal.StringFixed(2))
		})
	}
}

func TestResolve_NoStrikeThrough(t *testing.T) {
	q := pricing.Resolve(entities.TourPackage{StartingPrice: d("999.99")}, entities.HotelThreeStar, false)

	assert.Equal(t, "699.99", q.ChildrenPrice.StringFixed(2))
	assert.False(t, q.StrikeThroughPrice.Valid)
	assert.False(t, q.ChildrenStrikeThroughPrice.Valid)
}

func TestResolve_Tier(t *testing.T) {
	pkg := withTiers(entities.TourPackage{StartingPrice: d("1000")})

	q := pricing.Resolve(pkg, entities.HotelFourFiveStar, true)
	assert.Equal(t, "2500.00", q.Price.StringFixed(2))
	assert.Equal(t, "3000.00", q.StrikeThroughPrice.Decimal.StringFixed(2))
	assert.Equal(t, "1200.00", q.ChildrenPrice.StringFixed(2))
	assert.Equal(t, "1500.00", q.ChildrenStrikeThroughPrice.Decimal.StringFixed(2))

	q = pricing.Resolve(pkg, entities.HotelThreeStar, false)
	assert.Equal(t, "1500.00", q.Price.StringFixed(2))
	assert.Equal(t, "1050.00", q.ChildrenPrice.StringFixed(2), "missing children price uses the 70% rule")
	assert.False(t, q.StrikeThroughPrice.Valid)
}

func TestTotal(t *testing.T) {
	q := pricing.Resolve(entities.TourPackage{StartingPrice: d("1000")}, entities.HotelThreeStar, false)

	assert.Equal(t, "2000.00", pricing.Total(q, 2, 0).StringFixed(2))
	assert.Equal(t, "2700.00", pricing.Total(q, 2, 1).StringFixed(2))
	assert.Equal(t, int64(270000), pricing.MinorUnits(pricing.Total(q, 2, 1)))
}

func withTiers(pkg entities.TourPackage) entities.TourPackage {
	pkg.PricingTiers = entities.PricingTiers{
		entities.HotelThreeStar: {
			entities.WithoutFlights: {Price: d("1500")},
		},
		entities.HotelFourFiveStar: {
			entities.WithFlights: {
				Price:                      d("2500"),
				StrikethroughPrice:         nd("3000"),
				ChildrenPrice:              nd("1200"),
				ChildrenStrikethroughPrice: nd("1500"),
			},
		},
	}
	return pkg
}
