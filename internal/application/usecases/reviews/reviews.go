package reviews

import (
	"context"
	"fmt"
	"strings"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tours/internal/entities"
	"tours/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_reviews_repo.go -package=mocks tours/internal/application/usecases/reviews ReviewsRepo
type ReviewsRepo interface {
	List(ctx context.Context, f repository.ReviewFilter) ([]entities.Review, error)
	Create(ctx context.Context, review *entities.Review) error
	RecomputeRating(ctx context.Context, target entities.BookingTarget) error
	HasConfirmedBooking(ctx context.Context, userID string, target entities.BookingTarget) (bool, error)
}

type ReviewsUsecase struct {
	reviews   ReviewsRepo
	trManager trm.Manager
}

func NewReviewsUsecase(reviews ReviewsRepo, trManager trm.Manager) *ReviewsUsecase {
	return &ReviewsUsecase{
		reviews:   reviews,
		trManager: trManager,
	}
}

func (u *ReviewsUsecase) List(ctx context.Context, f repository.ReviewFilter) ([]entities.Review, error) {
	return u.reviews.List(ctx, f)
}

// Create stores the review and refreshes the target's rating and review count in
// the same transaction. Reviews of users who travelled with the target are marked
// verified.
func (u *ReviewsUsecase) Create(ctx context.Context, review *entities.Review) error {
	review.Title = strings.TrimSpace(review.Title)
	review.Comment = strings.TrimSpace(review.Comment)

	err := validation.ValidateStruct(review,
		validation.Field(&review.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&review.Title, validation.Length(0, 255)),
		validation.Field(&review.Comment, validation.Length(0, 5000)),
		validation.Field(&review.Images, validation.Each(is.URL)),
	)
	if err != nil {
		return err
	}

	target, err := review.Target()
	if err != nil {
		return entities.NewFieldError("packageId", err.Error())
	}

	return u.trManager.Do(ctx, func(ctx context.Context) error {
		verified, err := u.reviews.HasConfirmedBooking(ctx, review.UserID, target)
		if err != nil {
			return err
		}
		review.Verified = verified

		if err := u.reviews.Create(ctx, review); err != nil {
			return err
		}

		if err := u.reviews.RecomputeRating(ctx, target); err != nil {
			return fmt.Errorf("review %d: %w", review.ID, err)
		}

		return nil
	})
}
