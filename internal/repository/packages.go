package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const packageColumns = `id, name, product_name, description, overview, destination,
	duration_days, duration_nights, duration_hours, duration_minutes,
	min_passenger_count, max_passenger_count, starting_price, strike_through_price,
	pricing_tiers, currency, image_url, gallery, inclusions, exclusions, highlights,
	itinerary, rating, review_count, featured, active, created_at, updated_at`

type PackagesRepo struct {
	conn
}

func NewPackagesRepo(db *sqlx.DB) *PackagesRepo {
	return &PackagesRepo{conn: newConn(db)}
}

func (r *PackagesRepo) List(ctx context.Context, f PackageFilter) ([]entities.TourPackage, error) {
	var w where
	if f.Destination != "" {
		w.add("destination ILIKE ?", like(f.Destination))
	}
	if f.Featured != nil {
		w.add("featured = ?", *f.Featured)
	}
	if f.Active != nil {
		w.add("active = ?", *f.Active)
	}
	if f.MinPrice != nil {
		w.add("starting_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		w.add("starting_price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		w.add("(name ILIKE ? OR description ILIKE ? OR destination ILIKE ?)", like(f.Search), like(f.Search), like(f.Search))
	}

	query, args := w.query("SELECT "+packageColumns+" FROM tour_packages", "ORDER BY featured DESC, created_at DESC")

	packages := []entities.TourPackage{}
	if err := r.tr(ctx).SelectContext(ctx, &packages, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return packages, nil
}

func (r *PackagesRepo) Get(ctx context.Context, id int64) (*entities.TourPackage, error) {
	var pkg entities.TourPackage
	err := r.tr(ctx).GetContext(ctx, &pkg, "SELECT "+packageColumns+" FROM tour_packages WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "package", id)
	}

	return &pkg, nil
}

func (r *PackagesRepo) Create(ctx context.Context, pkg *entities.TourPackage) error {
	query, args, err := sqlx.Named(`
		INSERT INTO tour_packages (
			name, product_name, description, overview, destination,
			duration_days, duration_nights, duration_hours, duration_minutes,
			min_passenger_count, max_passenger_count, starting_price, strike_through_price,
			pricing_tiers, currency, image_url, gallery, inclusions, exclusions, highlights,
			itinerary, featured, active
		) VALUES (
			:name, :product_name, :description, :overview, :destination,
			:duration_days, :duration_nights, :duration_hours, :duration_minutes,
			:min_passenger_count, :max_passenger_count, :starting_price, :strike_through_price,
			:pricing_tiers, :currency, :image_url, :gallery, :inclusions, :exclusions, :highlights,
			:itinerary, :featured, :active
		) RETURNING id, rating, review_count, created_at, updated_at`, pkg)
	if err != nil {
		return fmt.Errorf("failed to bind package: %w", err)
	}

	err = r.tr(ctx).QueryRowxContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...).
		Scan(&pkg.ID, &pkg.Rating, &pkg.ReviewCount, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create package: %w", err)
	}

	return nil
}

func (r *PackagesRepo) Update(ctx context.Context, pkg *entities.TourPackage) error {
	query, args, err := sqlx.Named(`
		UPDATE tour_packages SET
			name = :name, product_name = :product_name, description = :description,
			overview = :overview, destination = :destination,
			duration_days = :duration_days, duration_nights = :duration_nights,
			duration_hours = :duration_hours, duration_minutes = :duration_minutes,
			min_passenger_count = :min_passenger_count, max_passenger_count = :max_passenger_count,
			starting_price = :starting_price, strike_through_price = :strike_through_price,
			pricing_tiers = :pricing_tiers, currency = :currency, image_url = :image_url,
			gallery = :gallery, inclusions = :inclusions, exclusions = :exclusions,
			highlights = :highlights, itinerary = :itinerary, featured = :featured,
			active = :active, updated_at = NOW()
		WHERE id = :id
		RETURNING rating, review_count, created_at, updated_at`, pkg)
	if err != nil {
		return fmt.Errorf("failed to bind package: %w", err)
	}

	err = r.tr(ctx).QueryRowxContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...).
		Scan(&pkg.Rating, &pkg.ReviewCount, &pkg.CreatedAt, &pkg.UpdatedAt)
	if err != nil {
		return notFound(err, "package", pkg.ID)
	}

	return nil
}

func (r *PackagesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM tour_packages WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete package %d: %w", id, err)
	}

	return mustAffect(res, "package", id)
}
