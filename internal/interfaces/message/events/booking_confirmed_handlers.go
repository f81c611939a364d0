package events

import (
	"context"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"tours/internal/entities"
)

func (h *Handler) NotifyBookingConfirmedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"notify_booking_confirmed",
		func(ctx context.Context, payload *entities.BookingConfirmed_v1) error {
			log.FromContext(ctx).WithField("booking_id", payload.BookingID).Info("Sending booking confirmation emails")

			h.notifier.BookingConfirmed(ctx, *payload)
			return nil
		},
	)
}

func (h *Handler) RecordCustomerBookingHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"crm_record_customer_booking",
		func(ctx context.Context, payload *entities.BookingConfirmed_v1) error {
			firstName, lastName := splitName(payload.ContactName)

			var userID *string
			if payload.UserID != "" {
				userID = &payload.UserID
			}

			recorded, err := h.customers.RecordBooking(
				ctx,
				entities.Customer{
					UserID:    userID,
					Email:     strings.ToLower(strings.TrimSpace(payload.ContactEmail)),
					FirstName: firstName,
					LastName:  lastName,
					Phone:     payload.ContactPhone,
				},
				payload.BookingID,
				payload.TotalAmount,
				payload.ConfirmedAt,
				fmt.Sprintf("Booking #%d - %s", payload.BookingID, payload.TargetName),
			)
			if err != nil {
				return fmt.Errorf("failed to record booking %d for customer: %w", payload.BookingID, err)
			}

			if !recorded {
				log.FromContext(ctx).WithField("booking_id", payload.BookingID).Info("Booking already recorded for customer")
			}

			return nil
		},
	)
}

func splitName(name string) (first, last string) {
	first, last, _ = strings.Cut(strings.TrimSpace(name), " ")
	return first, strings.TrimSpace(last)
}
