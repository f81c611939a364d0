package pricing

import (
	"github.com/shopspring/decimal"

	"tours/internal/entities"
)

var childrenRatio = decimal.NewFromFloat(0.7)

// Quote is the per-person price for one hotel category and flight option.
type Quote struct {
	Price                      decimal.Decimal     `json:"price"`
	StrikeThroughPrice         decimal.NullDecimal `json:"strikeThroughPrice"`
	ChildrenPrice              decimal.Decimal     `json:"childrenPrice"`
	ChildrenStrikeThroughPrice decimal.NullDecimal `json:"childrenStrikeThroughPrice"`
}

// Resolve picks the package price for a category and flight option. Missing tiers,
// categories or options fall back to the package's flat starting price; it never
// fails.
func Resolve(pkg entities.TourPackage, category entities.HotelCategory, flightIncluded bool) Quote {
	tier, ok := pkg.PricingTiers.Lookup(category, entities.FlightOptionFor(flightIncluded))
	if !ok || !tier.Price.IsPositive() {
		return flat(pkg.StartingPrice, pkg.StrikeThroughPrice)
	}

	q := flat(tier.Price, tier.StrikethroughPrice)
	if tier.ChildrenPrice.Valid {
		q.ChildrenPrice = tier.ChildrenPrice.Decimal
	}
	if tier.ChildrenStrikethroughPrice.Valid {
		q.ChildrenStrikeThroughPrice = tier.ChildrenStrikethroughPrice
	}

	return q
}

// FromUnitPrice quotes an event seat priced per person on its availability row.
func FromUnitPrice(price decimal.Decimal) Quote {
	return flat(price, decimal.NullDecimal{})
}

func Total(q Quote, adults, children int) decimal.Decimal {
	return q.Price.Mul(decimal.NewFromInt(int64(adults))).
		Add(q.ChildrenPrice.Mul(decimal.NewFromInt(int64(children)))).
		Round(2)
}

// MinorUnits converts an amount to the gateway's smallest currency unit.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

func flat(price decimal.Decimal, strikeThrough decimal.NullDecimal) Quote {
	q := Quote{
		Price:         price,
		ChildrenPrice: ChildrenPrice(price),
	}
	if strikeThrough.Valid {
		q.StrikeThroughPrice = strikeThrough
		q.ChildrenStrikeThroughPrice = decimal.NewNullDecimal(ChildrenPrice(strikeThrough.Decimal))
	}

	return q
}

func ChildrenPrice(adult decimal.Decimal) decimal.Decimal {
	return adult.Mul(childrenRatio).Round(2)
}
