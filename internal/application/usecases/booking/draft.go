package booking

import (
	"context"
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"

	"tours/internal/entities"
	"tours/internal/pricing"
)

const maxTravelersPerType = 20

// priced is a draft checked against the catalogue, with the server-side total.
type priced struct {
	draft    entities.BookingDraft
	target   entities.BookingTarget
	name     string
	quote    pricing.Quote
	total    decimal.Decimal
	currency string
}

func normalizeDraft(d entities.BookingDraft) entities.BookingDraft {
	if d.HotelCategory == "" {
		d.HotelCategory = entities.HotelThreeStar
	}
	if d.TravelDate != nil {
		date := entities.NewDate(d.TravelDate.Time)
		d.TravelDate = &date
	}

	return d
}

func validateDraft(d entities.BookingDraft) error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Adults, validation.Required, validation.Min(1), validation.Max(maxTravelersPerType)),
		validation.Field(&d.Children, validation.Min(0), validation.Max(maxTravelersPerType)),
		validation.Field(&d.ContactName, validation.Required, validation.Length(1, 255)),
		validation.Field(&d.ContactEmail, validation.Required, is.EmailFormat),
		validation.Field(&d.ContactPhone, validation.Length(0, 50)),
		validation.Field(&d.HotelCategory, validation.In(entities.HotelThreeStar, entities.HotelFourFiveStar)),
		validation.Field(&d.Travelers, validation.Each(validation.By(validateTraveler))),
	)
	if err != nil {
		return err
	}

	if len(d.Travelers) == 0 {
		return nil
	}

	var adults, children int
	for _, t := range d.Travelers {
		if t.Type == entities.TravelerChild {
			children++
		} else {
			adults++
		}
	}
	if adults != d.Adults || children != d.Children {
		return entities.NewFieldError("travelers", fmt.Sprintf(
			"expected %d adults and %d children, got %d and %d", d.Adults, d.Children, adults, children))
	}

	return nil
}

func validateTraveler(value any) error {
	t, ok := value.(entities.Traveler)
	if !ok {
		return errors.New("invalid traveler")
	}

	return validation.ValidateStruct(&t,
		validation.Field(&t.Type, validation.Required, validation.In(entities.TravelerAdult, entities.TravelerChild)),
		validation.Field(&t.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&t.LastName, validation.Required, validation.Length(1, 255)),
	)
}

// price validates the draft against its target and computes the authoritative
// total. It never trusts amounts sent by the client.
func (u *BookingUsecase) price(ctx context.Context, d entities.BookingDraft) (*priced, error) {
	d = normalizeDraft(d)

	target, err := d.Target()
	if err != nil {
		return nil, err
	}
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	p := &priced{draft: d, target: target}

	switch target.Kind {
	case entities.TargetPackage:
		pkg, err := u.packages.Get(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		if !pkg.Active {
			return nil, entities.NewFieldError("packageId", "package is not available for booking")
		}
		if d.Slots() < pkg.MinPassengerCount {
			return nil, entities.NewFieldError("adults", fmt.Sprintf("package requires at least %d travelers", pkg.MinPassengerCount))
		}
		if pkg.MaxPassengerCount > 0 && d.Slots() > pkg.MaxPassengerCount {
			return nil, entities.NewFieldError("adults", fmt.Sprintf("package allows at most %d travelers", pkg.MaxPassengerCount))
		}

		p.name = pkg.Name
		p.currency = pkg.Currency
		p.quote = pricing.Resolve(*pkg, d.HotelCategory, d.FlightIncluded)

	case entities.TargetEvent:
		evt, err := u.events.Get(ctx, target.ID)
		if err != nil {
			return nil, err
		}
		if !evt.Active {
			return nil, entities.NewFieldError("eventId", "event is not available for booking")
		}
		if d.TravelDate == nil {
			return nil, entities.NewFieldError("travelDate", "travel date is required for events")
		}

		row, err := u.availability.Find(ctx, target, *d.TravelDate)
		if errors.Is(err, entities.ErrNotFound) {
			return nil, entities.NewFieldError("travelDate", "event is not offered on this date")
		}
		if err != nil {
			return nil, err
		}
		if !row.Price.Valid || !row.Price.Decimal.IsPositive() {
			return nil, entities.NewFieldError("travelDate", "event has no price for this date")
		}

		p.name = evt.Name
		p.currency = evt.Currency
		p.quote = pricing.FromUnitPrice(row.Price.Decimal)
	}

	p.total = pricing.Total(p.quote, d.Adults, d.Children)

	return p, nil
}

func (p *priced) booking(userID string, status entities.BookingStatus, paymentStatus entities.BookingPaymentStatus) *entities.Booking {
	d := p.draft

	return &entities.Booking{
		UserID:          userID,
		PackageID:       p.target.PackageID(),
		EventID:         p.target.EventID(),
		TravelDate:      d.TravelDate,
		Adults:          d.Adults,
		Children:        d.Children,
		ContactName:     d.ContactName,
		ContactEmail:    d.ContactEmail,
		ContactPhone:    d.ContactPhone,
		HotelCategory:   d.HotelCategory,
		FlightIncluded:  d.FlightIncluded,
		TotalAmount:     p.total,
		Currency:        p.currency,
		Status:          status,
		PaymentStatus:   paymentStatus,
		SpecialRequests: d.SpecialRequests,
		Travelers:       append([]entities.Traveler(nil), d.Travelers...),
	}
}
