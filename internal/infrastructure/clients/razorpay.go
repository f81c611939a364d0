package clients

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/razorpay/razorpay-go"
	"github.com/sony/gobreaker"

	"tours/internal/entities"
)

// OrderCreator is the part of the Razorpay SDK used to open orders.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type RazorpayGateway struct {
	orders  OrderCreator
	keyID   string
	secret  string
	breaker *gobreaker.CircuitBreaker
}

func NewRazorpayGateway(keyID, secret string) *RazorpayGateway {
	client := razorpay.NewClient(keyID, secret)

	return NewRazorpayGatewayWithOrders(client.Order, keyID, secret)
}

func NewRazorpayGatewayWithOrders(orders OrderCreator, keyID, secret string) *RazorpayGateway {
	return &RazorpayGateway{
		orders: orders,
		keyID:  keyID,
		secret: secret,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "razorpay",
			MaxRequests: 3,
			Interval:    time.Minute,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				if counts.ConsecutiveFailures >= 5 {
					return true
				}
				return counts.Requests >= 10 && counts.TotalFailures*2 > counts.Requests
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.FromContext(context.Background()).
					WithField("breaker", name).
					Warnf("circuit breaker state changed from %s to %s", from, to)
			},
		}),
	}
}

func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

// CreateOrder opens an order for amount in the currency's minor unit.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*entities.GatewayOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	resp, err := g.breaker.Execute(func() (interface{}, error) {
		return g.orders.Create(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("error creating razorpay order: %w", err)
	}

	body, ok := resp.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected razorpay order response")
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("razorpay order response without id: %v", body)
	}

	order := &entities.GatewayOrder{
		ID:       id,
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	}
	if v, ok := body["amount"].(float64); ok {
		order.Amount = int64(v)
	}
	if v, ok := body["currency"].(string); ok && v != "" {
		order.Currency = v
	}

	return order, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	return VerifyPaymentSignature(g.secret, orderID, paymentID, signature)
}

// SignPayment is the hex HMAC-SHA256 of "orderID|paymentID" the gateway sends
// back after checkout.
func SignPayment(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

func VerifyPaymentSignature(secret, orderID, paymentID, signature string) bool {
	expected := SignPayment(secret, orderID, paymentID)

	return hmac.Equal([]byte(expected), []byte(signature))
}
