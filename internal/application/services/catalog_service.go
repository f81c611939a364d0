package services

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tours/internal/entities"
	"tours/internal/pricing"
	"tours/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_packages_repo.go -package=mocks tours/internal/application/services PackagesRepo
type PackagesRepo interface {
	List(ctx context.Context, f repository.PackageFilter) ([]entities.TourPackage, error)
	Get(ctx context.Context, id int64) (*entities.TourPackage, error)
	Create(ctx context.Context, pkg *entities.TourPackage) error
	Update(ctx context.Context, pkg *entities.TourPackage) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_events_repo.go -package=mocks tours/internal/application/services EventsRepo
type EventsRepo interface {
	List(ctx context.Context, f repository.EventFilter) ([]entities.TourEvent, error)
	Get(ctx context.Context, id int64) (*entities.TourEvent, error)
	Create(ctx context.Context, event *entities.TourEvent) error
	Update(ctx context.Context, event *entities.TourEvent) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_availability_repo.go -package=mocks tours/internal/application/services AvailabilityRepo
type AvailabilityRepo interface {
	List(ctx context.Context, f repository.AvailabilityFilter) ([]entities.Availability, error)
	Get(ctx context.Context, id int64) (*entities.Availability, error)
	Create(ctx context.Context, a *entities.Availability) error
	Update(ctx context.Context, a *entities.Availability) error
}

type TranslationsRepo interface {
	List(ctx context.Context, entityType string, entityID int64, language string) ([]entities.Translation, error)
	Upsert(ctx context.Context, t *entities.Translation) error
}

// Decode fills a catalog row from a request body. Fields missing from the body
// must be left as they are.
type Decode[T any] func(dst *T) error

// CatalogService serves tour packages, events, their availability and
// translations.
type CatalogService struct {
	packages     PackagesRepo
	events       EventsRepo
	availability AvailabilityRepo
	translations TranslationsRepo
}

func NewCatalogService(
	packages PackagesRepo,
	events EventsRepo,
	availability AvailabilityRepo,
	translations TranslationsRepo,
) *CatalogService {
	return &CatalogService{
		packages:     packages,
		events:       events,
		availability: availability,
		translations: translations,
	}
}

func (s *CatalogService) ListPackages(ctx context.Context, f repository.PackageFilter) ([]entities.TourPackage, error) {
	return s.packages.List(ctx, f)
}

func (s *CatalogService) GetPackage(ctx context.Context, id int64) (*entities.TourPackage, error) {
	return s.packages.Get(ctx, id)
}

// PackagePrice previews the per-person quote for a hotel category and flight
// option.
func (s *CatalogService) PackagePrice(ctx context.Context, id int64, category entities.HotelCategory, flightIncluded bool) (pricing.Quote, error) {
	if category == "" {
		category = entities.HotelThreeStar
	}
	err := validation.Validate(category, validation.In(entities.HotelThreeStar, entities.HotelFourFiveStar))
	if err != nil {
		return pricing.Quote{}, entities.NewFieldError("hotelCategory", err.Error())
	}

	pkg, err := s.packages.Get(ctx, id)
	if err != nil {
		return pricing.Quote{}, err
	}

	return pricing.Resolve(*pkg, category, flightIncluded), nil
}

func validatePackage(p *entities.TourPackage) error {
	err := validation.ValidateStruct(p,
		validation.Field(&p.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.Destination, validation.Required, validation.Length(1, 255)),
		validation.Field(&p.DurationDays, validation.Min(0)),
		validation.Field(&p.DurationNights, validation.Min(0)),
		validation.Field(&p.MinPassengerCount, validation.Min(1)),
		validation.Field(&p.MaxPassengerCount, validation.Min(0)),
		validation.Field(&p.Currency, validation.Required, validation.Length(3, 3)),
		validation.Field(&p.ImageURL, is.URL),
	)
	if err != nil {
		return err
	}

	if !p.StartingPrice.IsPositive() {
		return entities.NewFieldError("startingPrice", "must be greater than zero")
	}
	if p.MaxPassengerCount > 0 && p.MaxPassengerCount < p.MinPassengerCount {
		return entities.NewFieldError("maxPassengerCount", "must not be below minPassengerCount")
	}

	return nil
}

// CreatePackage decodes a new package over the catalog defaults: INR, one
// passenger minimum and active.
func (s *CatalogService) CreatePackage(ctx context.Context, decode Decode[entities.TourPackage]) (*entities.TourPackage, error) {
	p := &entities.TourPackage{
		Currency:          "INR",
		MinPassengerCount: 1,
		Active:            true,
	}
	if err := decode(p); err != nil {
		return nil, err
	}
	p.ID = 0

	if err := validatePackage(p); err != nil {
		return nil, err
	}
	if err := s.packages.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// UpdatePackage decodes the body over the stored package, so only the fields
// present in it change.
func (s *CatalogService) UpdatePackage(ctx context.Context, id int64, decode Decode[entities.TourPackage]) (*entities.TourPackage, error) {
	p, err := s.packages.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := decode(p); err != nil {
		return nil, err
	}
	p.ID = id

	if err := validatePackage(p); err != nil {
		return nil, err
	}
	if err := s.packages.Update(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

func (s *CatalogService) DeletePackage(ctx context.Context, id int64) error {
	return s.packages.Delete(ctx, id)
}

func (s *CatalogService) ListEvents(ctx context.Context, f repository.EventFilter) ([]entities.TourEvent, error) {
	return s.events.List(ctx, f)
}

func (s *CatalogService) GetEvent(ctx context.Context, id int64) (*entities.TourEvent, error) {
	return s.events.Get(ctx, id)
}

func validateEvent(e *entities.TourEvent) error {
	err := validation.ValidateStruct(e,
		validation.Field(&e.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&e.Location, validation.Required, validation.Length(1, 255)),
		validation.Field(&e.StartDate, validation.Required),
		validation.Field(&e.WebsiteURL, is.URL),
		validation.Field(&e.ImageURL, is.URL),
	)
	if err != nil {
		return err
	}

	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return entities.NewFieldError("endDate", "must not be before startDate")
	}

	return nil
}

func (s *CatalogService) CreateEvent(ctx context.Context, decode Decode[entities.TourEvent]) (*entities.TourEvent, error) {
	e := &entities.TourEvent{Currency: "INR", Active: true}
	if err := decode(e); err != nil {
		return nil, err
	}
	e.ID = 0

	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *CatalogService) UpdateEvent(ctx context.Context, id int64, decode Decode[entities.TourEvent]) (*entities.TourEvent, error) {
	e, err := s.events.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := decode(e); err != nil {
		return nil, err
	}
	e.ID = id

	if err := validateEvent(e); err != nil {
		return nil, err
	}
	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}

	return e, nil
}

func (s *CatalogService) DeleteEvent(ctx context.Context, id int64) error {
	return s.events.Delete(ctx, id)
}

func (s *CatalogService) ListAvailability(ctx context.Context, f repository.AvailabilityFilter) ([]entities.Availability, error) {
	return s.availability.List(ctx, f)
}

func validateAvailability(a *entities.Availability) error {
	if err := validation.Validate(a.TotalSlots, validation.Required, validation.Min(1)); err != nil {
		return entities.NewFieldError("totalSlots", err.Error())
	}
	if a.Price.Valid && !a.Price.Decimal.IsPositive() {
		return entities.NewFieldError("price", "must be greater than zero")
	}

	return nil
}

// CreateAvailability opens a dated capacity row for a package or an event.
// Rows are active unless the body says otherwise.
func (s *CatalogService) CreateAvailability(ctx context.Context, decode Decode[entities.Availability]) (*entities.Availability, error) {
	a := &entities.Availability{Active: true}
	if err := decode(a); err != nil {
		return nil, err
	}

	if _, err := entities.NewBookingTarget(a.PackageID, a.EventID); err != nil {
		return nil, entities.NewFieldError("packageId", err.Error())
	}
	if a.Date.IsZero() {
		return nil, entities.NewFieldError("date", "is required")
	}
	if err := validateAvailability(a); err != nil {
		return nil, err
	}

	a.ID = 0
	a.Date = entities.NewDate(a.Date.Time)
	a.BookedSlots = 0

	if err := s.availability.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to open availability: %w", err)
	}

	return a, nil
}

// UpdateAvailability changes capacity, price and the active flag of a stored
// row. The target, the date and the booked count stay as stored.
func (s *CatalogService) UpdateAvailability(ctx context.Context, id int64, decode Decode[entities.Availability]) (*entities.Availability, error) {
	stored, err := s.availability.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a := *stored
	if err := decode(&a); err != nil {
		return nil, err
	}
	a.ID = id
	a.PackageID = stored.PackageID
	a.EventID = stored.EventID
	a.Date = stored.Date
	a.BookedSlots = stored.BookedSlots

	if err := validateAvailability(&a); err != nil {
		return nil, err
	}
	if err := s.availability.Update(ctx, &a); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *CatalogService) Translations(ctx context.Context, entityType string, entityID int64, language string) ([]entities.Translation, error) {
	return s.translations.List(ctx, entityType, entityID, language)
}

func (s *CatalogService) SaveTranslation(ctx context.Context, t *entities.Translation) error {
	err := validation.ValidateStruct(t,
		validation.Field(&t.EntityType, validation.Required, validation.In("package", "event")),
		validation.Field(&t.EntityID, validation.Required),
		validation.Field(&t.Language, validation.Required, validation.Length(2, 10)),
		validation.Field(&t.Field, validation.Required, validation.Length(1, 100)),
		validation.Field(&t.Value, validation.Required),
	)
	if err != nil {
		return err
	}

	return s.translations.Upsert(ctx, t)
}
