package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"tours/internal/entities"
	"tours/internal/repository"
)

// CreateDirect books without a payment order. Dated bookings reserve their slots
// in the same transaction as the insert.
func (u *BookingUsecase) CreateDirect(ctx context.Context, userID string, d entities.BookingDraft) (*entities.Booking, error) {
	var booking *entities.Booking
	err := u.inTx(ctx, func(ctx context.Context) error {
		p, err := u.price(ctx, d)
		if err != nil {
			return err
		}

		if p.draft.TravelDate != nil {
			ok, err := u.availability.Reserve(ctx, p.target, *p.draft.TravelDate, p.draft.Slots())
			if err != nil {
				return fmt.Errorf("failed to reserve slots: %w", err)
			}
			if !ok {
				return fmt.Errorf("%s on %s: %w", p.target, p.draft.TravelDate, entities.ErrNotEnoughSlots)
			}
		}

		booking = p.booking(userID, entities.BookingPending, entities.BookingUnpaid)
		return u.bookings.Create(ctx, booking)
	})
	if err != nil {
		return nil, err
	}

	log.FromContext(ctx).WithField("booking_id", booking.ID).Info("Booking created")

	return booking, nil
}

func (u *BookingUsecase) Get(ctx context.Context, userID string, admin bool, id int64) (*entities.Booking, error) {
	b, err := u.bookings.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !admin && b.UserID != userID {
		return nil, fmt.Errorf("booking %d: %w", id, entities.ErrForbidden)
	}

	return b, nil
}

// List returns the caller's bookings; admins may ask for everyone's.
func (u *BookingUsecase) List(ctx context.Context, userID string, admin, all bool) ([]entities.Booking, error) {
	f := repository.BookingFilter{UserID: userID}
	if admin && all {
		f.UserID = ""
	}

	return u.bookings.List(ctx, f)
}

// Cancel moves a live booking to cancelled. Reserved slots stay booked.
func (u *BookingUsecase) Cancel(ctx context.Context, userID string, admin bool, id int64) (*entities.Booking, error) {
	var cancelled *entities.Booking
	err := u.inTx(ctx, func(ctx context.Context) error {
		b, err := u.Get(ctx, userID, admin, id)
		if err != nil {
			return err
		}
		if b.Status.IsTerminal() {
			return fmt.Errorf("booking %d is %s: %w", id, b.Status, entities.ErrConflict)
		}

		cancelled, err = u.bookings.Cancel(ctx, id)
		if err != nil {
			return err
		}

		return u.publisher.Publish(ctx, entities.BookingCancelled_v1{
			Header:       entities.NewEventHeaderWithIdempotencyKey(fmt.Sprintf("booking-cancelled-%d", id)),
			BookingID:    cancelled.ID,
			UserID:       cancelled.UserID,
			ContactEmail: cancelled.ContactEmail,
			CancelledAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}
