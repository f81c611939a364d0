package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"tours/internal/application/usecases/booking"
	"tours/internal/auth"
	"tours/internal/entities"
)

type CreateOrderRequest struct {
	Amount   decimal.NullDecimal   `json:"amount"`
	Currency string                `json:"currency"`
	Booking  entities.BookingDraft `json:"booking"`
}

// VerifyPaymentRequest accepts both our field names and the ones the gateway
// checkout widget hands to the browser.
type VerifyPaymentRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Signature string `json:"signature"`

	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

func (r VerifyPaymentRequest) Confirmation() entities.PaymentConfirmation {
	return entities.PaymentConfirmation{
		OrderID:   firstNonEmpty(r.OrderID, r.RazorpayOrderID),
		PaymentID: firstNonEmpty(r.PaymentID, r.RazorpayPaymentID),
		Signature: firstNonEmpty(r.Signature, r.RazorpaySignature),
	}
}

type PaymentFailedRequest struct {
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
	Reason    string `json:"reason"`
}

func (s *Server) ValidateBookingHandler(c echo.Context) error {
	var draft entities.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return err
	}

	validation, err := s.svc.Bookings.Validate(c.Request().Context(), draft)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, validation)
}

func (s *Server) CreateBookingHandler(c echo.Context) error {
	var draft entities.BookingDraft
	if err := c.Bind(&draft); err != nil {
		return err
	}

	b, err := s.svc.Bookings.CreateDirect(c.Request().Context(), auth.UserID(c), draft)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, b)
}

func (s *Server) ListBookingsHandler(c echo.Context) error {
	admin, err := s.isAdmin(c)
	if err != nil {
		return err
	}
	all, err := queryBool(c, "all")
	if err != nil {
		return err
	}

	bookings, err := s.svc.Bookings.List(c.Request().Context(), auth.UserID(c), admin, all != nil && *all)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookings)
}

func (s *Server) GetBookingHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	admin, err := s.isAdmin(c)
	if err != nil {
		return err
	}

	b, err := s.svc.Bookings.Get(c.Request().Context(), auth.UserID(c), admin, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) CancelBookingHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	admin, err := s.isAdmin(c)
	if err != nil {
		return err
	}

	b, err := s.svc.Bookings.Cancel(c.Request().Context(), auth.UserID(c), admin, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) CreateOrderHandler(c echo.Context) error {
	var request CreateOrderRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	order, err := s.svc.Bookings.CreateOrder(c.Request().Context(), auth.UserID(c), booking.OrderRequest{
		Amount:   request.Amount,
		Currency: request.Currency,
		Draft:    request.Booking,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

func (s *Server) VerifyPaymentHandler(c echo.Context) error {
	var request VerifyPaymentRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	confirmation := request.Confirmation()
	if confirmation.OrderID == "" || confirmation.PaymentID == "" || confirmation.Signature == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing payment verification data")
	}

	b, err := s.svc.Bookings.Verify(c.Request().Context(), auth.UserID(c), confirmation)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"booking": b,
	})
}

func (s *Server) PaymentFailedHandler(c echo.Context) error {
	var request PaymentFailedRequest
	if err := c.Bind(&request); err != nil {
		return err
	}
	if request.OrderID == "" {
		return entities.NewFieldError("orderId", "cannot be blank")
	}

	err := s.svc.Bookings.MarkFailed(c.Request().Context(), auth.UserID(c), request.OrderID, request.PaymentID, request.Reason)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Payment marked as failed"})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
