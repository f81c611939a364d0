package entities

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type HotelCategory string

const (
	HotelThreeStar    HotelCategory = "3_star"
	HotelFourFiveStar HotelCategory = "4_5_star"
)

type FlightOption string

const (
	WithFlights    FlightOption = "with_flights"
	WithoutFlights FlightOption = "without_flights"
)

func FlightOptionFor(flightIncluded bool) FlightOption {
	if flightIncluded {
		return WithFlights
	}

	return WithoutFlights
}

// PricingTier is one cell of the package price matrix. Children values are
// optional and fall back to the 70% rule.
type PricingTier struct {
	Price                      decimal.Decimal     `json:"price"`
	StrikethroughPrice         decimal.NullDecimal `json:"strikethrough_price"`
	ChildrenPrice              decimal.NullDecimal `json:"children_price"`
	ChildrenStrikethroughPrice decimal.NullDecimal `json:"children_strikethrough_price"`
}

// PricingTiers maps hotel category to flight option to tier.
type PricingTiers map[HotelCategory]map[FlightOption]PricingTier

func (p PricingTiers) Lookup(category HotelCategory, option FlightOption) (PricingTier, bool) {
	byFlight, ok := p[category]
	if !ok {
		return PricingTier{}, false
	}

	tier, ok := byFlight[option]
	return tier, ok
}

// UnmarshalJSON replaces the whole matrix. Decoding into an existing map would
// otherwise keep categories the new body leaves out.
func (p *PricingTiers) UnmarshalJSON(b []byte) error {
	var tiers map[HotelCategory]map[FlightOption]PricingTier
	if err := json.Unmarshal(b, &tiers); err != nil {
		return err
	}
	*p = tiers

	return nil
}

func (p PricingTiers) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}

	return jsonValue(map[HotelCategory]map[FlightOption]PricingTier(p))
}

func (p *PricingTiers) Scan(src any) error {
	return scanJSON(src, (*map[HotelCategory]map[FlightOption]PricingTier)(p))
}

type TourPackage struct {
	ID                 int64               `db:"id" json:"id"`
	Name               string              `db:"name" json:"name"`
	ProductName        string              `db:"product_name" json:"productName"`
	Description        string              `db:"description" json:"description"`
	Overview           string              `db:"overview" json:"overview"`
	Destination        string              `db:"destination" json:"destination"`
	DurationDays       int                 `db:"duration_days" json:"durationDays"`
	DurationNights     int                 `db:"duration_nights" json:"durationNights"`
	DurationHours      int                 `db:"duration_hours" json:"durationHours"`
	DurationMinutes    int                 `db:"duration_minutes" json:"durationMinutes"`
	MinPassengerCount  int                 `db:"min_passenger_count" json:"minPassengerCount"`
	MaxPassengerCount  int                 `db:"max_passenger_count" json:"maxPassengerCount"`
	StartingPrice      decimal.Decimal     `db:"starting_price" json:"startingPrice"`
	StrikeThroughPrice decimal.NullDecimal `db:"strike_through_price" json:"strikeThroughPrice"`
	PricingTiers       PricingTiers        `db:"pricing_tiers" json:"pricingTiers"`
	Currency           string              `db:"currency" json:"currency"`
	ImageURL           string              `db:"image_url" json:"imageUrl"`
	Gallery            StringList          `db:"gallery" json:"gallery"`
	Inclusions         StringList          `db:"inclusions" json:"inclusions"`
	Exclusions         StringList          `db:"exclusions" json:"exclusions"`
	Highlights         StringList          `db:"highlights" json:"highlights"`
	Itinerary          RawJSON             `db:"itinerary" json:"itinerary"`
	Rating             decimal.Decimal     `db:"rating" json:"rating"`
	ReviewCount        int                 `db:"review_count" json:"reviewCount"`
	Featured           bool                `db:"featured" json:"featured"`
	Active             bool                `db:"active" json:"active"`
	CreatedAt          time.Time           `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time           `db:"updated_at" json:"updatedAt"`
}

// TourEvent is a dated, located happening that can be booked like a package.
type TourEvent struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Location    string          `db:"location" json:"location"`
	StartDate   time.Time       `db:"start_date" json:"startDate"`
	EndDate     *time.Time      `db:"end_date" json:"endDate,omitempty"`
	ImageURL    string          `db:"image_url" json:"imageUrl"`
	WebsiteURL  string          `db:"website_url" json:"websiteUrl"`
	Currency    string          `db:"currency" json:"currency"`
	Rating      decimal.Decimal `db:"rating" json:"rating"`
	ReviewCount int             `db:"review_count" json:"reviewCount"`
	Active      bool            `db:"active" json:"active"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updatedAt"`
}
