package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"tours/internal/entities"
	"tours/internal/idempotency"
	"tours/internal/pricing"
)

const maxReceiptLength = 40

type Validation struct {
	Valid       bool            `json:"valid"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Currency    string          `json:"currency"`
	Quote       pricing.Quote   `json:"quote"`
}

type OrderRequest struct {
	// Amount is what the client displayed; it is only compared with the server total.
	Amount   decimal.NullDecimal
	Currency string
	Draft    entities.BookingDraft
}

type Order struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// Validate prices a draft and, when it is dated, checks capacity without
// reserving anything.
func (u *BookingUsecase) Validate(ctx context.Context, d entities.BookingDraft) (*Validation, error) {
	p, err := u.price(ctx, d)
	if err != nil {
		return nil, err
	}

	if err := u.checkCapacity(ctx, p); err != nil {
		return nil, err
	}

	return &Validation{
		Valid:       true,
		TotalAmount: p.total,
		Currency:    p.currency,
		Quote:       p.quote,
	}, nil
}

func (u *BookingUsecase) checkCapacity(ctx context.Context, p *priced) error {
	if p.draft.TravelDate == nil {
		return nil
	}

	ok, err := u.availability.Check(ctx, p.target, *p.draft.TravelDate, p.draft.Slots())
	if err != nil {
		return fmt.Errorf("failed to check availability: %w", err)
	}
	if !ok {
		return fmt.Errorf("%s on %s: %w", p.target, p.draft.TravelDate, entities.ErrNotEnoughSlots)
	}

	return nil
}

// CreateOrder opens a gateway order for the server-computed total and stores the
// draft next to it, so Verify can rebuild the booking without the client.
func (u *BookingUsecase) CreateOrder(ctx context.Context, userID string, req OrderRequest) (*Order, error) {
	p, err := u.price(ctx, req.Draft)
	if err != nil {
		return nil, err
	}

	if req.Amount.Valid && !req.Amount.Decimal.Equal(p.total) {
		return nil, fmt.Errorf("client sent %s, booking costs %s: %w", req.Amount.Decimal, p.total, entities.ErrAmountMismatch)
	}
	if req.Currency != "" && !strings.EqualFold(req.Currency, p.currency) {
		return nil, entities.NewFieldError("currency", "must be "+p.currency)
	}

	if err := u.checkCapacity(ctx, p); err != nil {
		return nil, err
	}

	receipt := receiptFor(ctx)
	order, err := u.gateway.CreateOrder(ctx, pricing.MinorUnits(p.total), p.currency, receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}

	err = u.payments.Create(ctx, &entities.Payment{
		UserID:   userID,
		OrderID:  order.ID,
		Amount:   p.total,
		Currency: p.currency,
		Status:   entities.PaymentCreated,
		Draft:    p.draft,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store payment order: %w", err)
	}

	ordersCreatedTotal.Inc()
	log.FromContext(ctx).
		WithField("order_id", order.ID).
		WithField("amount", p.total.String()).
		Info("Payment order created")

	return &Order{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    u.gateway.KeyID(),
	}, nil
}

// receiptFor ties the gateway order to the client's idempotency key, so a retried
// checkout carries the same receipt. The gateway caps receipts at 40 characters.
func receiptFor(ctx context.Context) string {
	receipt := "rcpt_" + strings.ReplaceAll(idempotency.GetKey(ctx), "-", "")
	if len(receipt) > maxReceiptLength {
		receipt = receipt[:maxReceiptLength]
	}
	return receipt
}

// Verify turns a paid gateway order into a confirmed booking. Replays of an
// already confirmed order return the booking created the first time.
func (u *BookingUsecase) Verify(ctx context.Context, userID string, c entities.PaymentConfirmation) (*entities.Booking, error) {
	if !u.gateway.VerifySignature(c.OrderID, c.PaymentID, c.Signature) {
		verificationsRejectedTotal.WithLabelValues("signature").Inc()
		return nil, entities.ErrInvalidSignature
	}

	var (
		booking      *entities.Booking
		replay       bool
		draftInvalid bool
	)
	err := u.inTx(ctx, func(ctx context.Context) error {
		booking, replay, draftInvalid = nil, false, false

		payment, err := u.payments.GetByOrderIDForUpdate(ctx, c.OrderID)
		if err != nil {
			return err
		}
		if payment.UserID != userID {
			return fmt.Errorf("order %s belongs to another user: %w", c.OrderID, entities.ErrForbidden)
		}

		if payment.Status == entities.PaymentPaid {
			replay = true
			booking, err = u.bookings.GetByOrderID(ctx, c.OrderID)
			return err
		}

		p, err := u.price(ctx, payment.Draft)
		if err != nil {
			draftInvalid = draftRejected(err)
			return fmt.Errorf("stored booking for order %s no longer valid: %w", c.OrderID, err)
		}
		if !p.total.Equal(payment.Amount) {
			return fmt.Errorf("order %s paid %s, booking costs %s: %w", c.OrderID, payment.Amount, p.total, entities.ErrAmountMismatch)
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

		booking = p.booking(userID, entities.BookingConfirmed, entities.BookingPaid)
		booking.OrderID = &c.OrderID
		booking.PaymentID = &c.PaymentID
		if err := u.bookings.Create(ctx, booking); err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		if err := u.payments.MarkPaid(ctx, c.OrderID, c.PaymentID, c.Signature, booking.ID); err != nil {
			return fmt.Errorf("failed to mark payment paid: %w", err)
		}

		return u.publisher.Publish(ctx, entities.BookingConfirmed_v1{
			Header:       entities.NewEventHeaderWithIdempotencyKey("booking-confirmed-" + c.OrderID),
			BookingID:    booking.ID,
			UserID:       userID,
			Target:       p.target,
			TargetName:   p.name,
			TravelDate:   booking.TravelDate,
			Adults:       booking.Adults,
			Children:     booking.Children,
			ContactName:  booking.ContactName,
			ContactEmail: booking.ContactEmail,
			ContactPhone: booking.ContactPhone,
			TotalAmount:  booking.TotalAmount,
			Currency:     booking.Currency,
			OrderID:      c.OrderID,
			PaymentID:    c.PaymentID,
			ConfirmedAt:  time.Now().UTC(),
		})
	})
	if draftInvalid || errors.Is(err, entities.ErrNotEnoughSlots) || errors.Is(err, entities.ErrAmountMismatch) {
		u.failPayment(ctx, c, err)
	}
	if err != nil {
		return nil, err
	}

	logger := log.FromContext(ctx).WithField("order_id", c.OrderID).WithField("booking_id", booking.ID)
	if replay {
		logger.Info("Payment already confirmed, returning existing booking")
		return booking, nil
	}

	bookingsConfirmedTotal.WithLabelValues(string(booking.Target().Kind)).Inc()
	logger.Info("Booking confirmed")

	return booking, nil
}

// failPayment records why a captured payment produced no booking, so operators
// can refund it.
func (u *BookingUsecase) failPayment(ctx context.Context, c entities.PaymentConfirmation, cause error) {
	var reason, label string
	switch {
	case errors.Is(cause, entities.ErrNotEnoughSlots):
		reason, label = "capacity exhausted", "capacity"
	case errors.Is(cause, entities.ErrAmountMismatch):
		reason, label = "amount mismatch", "amount"
	default:
		reason, label = "booking no longer valid", "draft"
	}
	verificationsRejectedTotal.WithLabelValues(label).Inc()

	if err := u.payments.MarkFailed(ctx, c.OrderID, c.PaymentID, reason); err != nil {
		log.FromContext(ctx).WithError(err).WithField("order_id", c.OrderID).Error("Failed to mark payment failed")
	}
}

// draftRejected reports whether pricing a stored draft failed because the draft
// or its target no longer qualifies, as opposed to a storage error worth retrying.
func draftRejected(err error) bool {
	var verr validation.Errors
	return errors.As(err, &verr) ||
		errors.Is(err, entities.ErrInvalidTarget) ||
		errors.Is(err, entities.ErrNotFound)
}

// MarkFailed records a payment failure reported by the client for one of its own
// unpaid orders.
func (u *BookingUsecase) MarkFailed(ctx context.Context, userID, orderID, paymentID, reason string) error {
	return u.inTx(ctx, func(ctx context.Context) error {
		payment, err := u.payments.GetByOrderIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if payment.UserID != userID {
			return fmt.Errorf("order %s belongs to another user: %w", orderID, entities.ErrForbidden)
		}
		if payment.Status == entities.PaymentPaid {
			return fmt.Errorf("order %s is already paid: %w", orderID, entities.ErrConflict)
		}

		return u.payments.MarkFailed(ctx, orderID, paymentID, reason)
	})
}
