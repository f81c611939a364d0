package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const reviewColumns = `id, user_id, package_id, event_id, rating, title, comment, images, helpful, verified, created_at`

type ReviewsRepo struct {
	conn
}

func NewReviewsRepo(db *sqlx.DB) *ReviewsRepo {
	return &ReviewsRepo{conn: newConn(db)}
}

func (r *ReviewsRepo) List(ctx context.Context, f ReviewFilter) ([]entities.Review, error) {
	var w where
	if f.PackageID != nil {
		w.add("package_id = ?", *f.PackageID)
	}
	if f.EventID != nil {
		w.add("event_id = ?", *f.EventID)
	}

	query, args := w.query("SELECT "+reviewColumns+" FROM reviews", "ORDER BY created_at DESC")

	reviews := []entities.Review{}
	if err := r.tr(ctx).SelectContext(ctx, &reviews, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewsRepo) Create(ctx context.Context, review *entities.Review) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO reviews (user_id, package_id, event_id, rating, title, comment, images, verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, helpful, created_at`,
		review.UserID,
		review.PackageID,
		review.EventID,
		review.Rating,
		review.Title,
		review.Comment,
		review.Images,
		review.Verified,
	).Scan(&review.ID, &review.Helpful, &review.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// RecomputeRating sets the target's rating to the one-decimal mean of its reviews
// and its review count to the number of reviews.
func (r *ReviewsRepo) RecomputeRating(ctx context.Context, target entities.BookingTarget) error {
	table := "tour_packages"
	if target.Kind == entities.TargetEvent {
		table = "events"
	}
	column := targetColumn(target)

	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE `+table+` SET
			rating = COALESCE((SELECT ROUND(AVG(rating), 1) FROM reviews WHERE `+column+` = $1), 0),
			review_count = (SELECT COUNT(*) FROM reviews WHERE `+column+` = $1),
			updated_at = NOW()
		WHERE id = $1`,
		target.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to recompute rating of %s: %w", target, err)
	}

	return mustAffect(res, string(target.Kind), target.ID)
}

// HasConfirmedBooking tells whether the user travelled with the target, which
// marks the review as verified.
func (r *ReviewsRepo) HasConfirmedBooking(ctx context.Context, userID string, target entities.BookingTarget) (bool, error) {
	var exists bool
	err := r.tr(ctx).GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM bookings WHERE user_id = $1 AND `+targetColumn(target)+` = $2 AND status = $3
		)`,
		userID, target.ID, entities.BookingConfirmed,
	)
	if err != nil {
		return false, fmt.Errorf("failed to check bookings of user %s: %w", userID, err)
	}

	return exists, nil
}
