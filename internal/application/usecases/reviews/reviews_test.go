package reviews_test

import (
	"context"
	"errors"
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/application/usecases/reviews"
	"tours/internal/application/usecases/reviews/mocks"
	"tours/internal/entities"
)

type recordingTx struct {
	calls int
}

func (r *recordingTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	r.calls++
	return fn(ctx)
}

func (r *recordingTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return r.Do(ctx, fn)
}

func TestReviewsUsecase_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReviewsRepo(ctrl)
	tx := &recordingTx{}

	target := entities.PackageTarget(3)
	gomock.InOrder(
		repo.EXPECT().HasConfirmedBooking(gomock.Any(), "user-1", target).Return(true, nil),
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entities.Review) error {
			assert.True(t, r.Verified)
			assert.Equal(t, "Lovely houseboat", r.Title)
			r.ID = 10
			return nil
		}),
		repo.EXPECT().RecomputeRating(gomock.Any(), target).Return(nil),
	)

	review := &entities.Review{
		UserID:    "user-1",
		PackageID: pointer.ToInt64(3),
		Rating:    5,
		Title:     " Lovely houseboat ",
	}

	u := reviews.NewReviewsUsecase(repo, tx)
	require.NoError(t, u.Create(context.Background(), review))
	assert.Equal(t, int64(10), review.ID)
	assert.Equal(t, 1, tx.calls)
}

func TestReviewsUsecase_Create_recompute_failure_fails_the_review(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockReviewsRepo(ctrl)

	repo.EXPECT().HasConfirmedBooking(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	repo.EXPECT().RecomputeRating(gomock.Any(), entities.EventTarget(4)).Return(errors.New("deadlock detected"))

	u := reviews.NewReviewsUsecase(repo, &recordingTx{})
	err := u.Create(context.Background(), &entities.Review{
		UserID:  "user-1",
		EventID: pointer.ToInt64(4),
		Rating:  3,
	})
	assert.ErrorContains(t, err, "deadlock detected")
}

func TestReviewsUsecase_Create_validation(t *testing.T) {
	testCases := []struct {
		name   string
		review entities.Review
		field  string
	}{
		{
			name:   "rating above five",
			review: entities.Review{PackageID: pointer.ToInt64(1), Rating: 6},
			field:  "rating",
		},
		{
			name:   "missing rating",
			review: entities.Review{PackageID: pointer.ToInt64(1)},
			field:  "rating",
		},
		{
			name:   "no target",
			review: entities.Review{Rating: 4},
			field:  "packageId",
		},
		{
			name:   "both targets",
			review: entities.Review{PackageID: pointer.ToInt64(1), EventID: pointer.ToInt64(2), Rating: 4},
			field:  "packageId",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tx := &recordingTx{}
			u := reviews.NewReviewsUsecase(mocks.NewMockReviewsRepo(ctrl), tx)

			review := tc.review
			err := u.Create(context.Background(), &review)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tc.field)
			assert.Zero(t, tx.calls)
		})
	}
}
