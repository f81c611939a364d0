package clients_test

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/infrastructure/clients"
)

func TestVerifyPaymentSignature(t *testing.T) {
	mac := hmac.New(sha256.New, []byte("S"))
	mac.Write([]byte("order_1|pay_1"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, valid, clients.SignPayment("S", "order_1", "pay_1"))
	assert.True(t, clients.VerifyPaymentSignature("S", "order_1", "pay_1", valid))

	assert.False(t, clients.VerifyPaymentSignature("S", "order_1", "pay_2", valid))
	assert.False(t, clients.VerifyPaymentSignature("other", "order_1", "pay_1", valid))
	assert.False(t, clients.VerifyPaymentSignature("S", "order_1", "pay_1", ""))
	assert.False(t, clients.VerifyPaymentSignature("S", "order_1", "pay_1", valid[:len(valid)-1]+"0"))
}

type fakeOrders struct {
	calls []map[string]interface{}
	resp  map[string]interface{}
	err   error
}

func (f *fakeOrders) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.calls = append(f.calls, data)
	return f.resp, f.err
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	ctx := context.Background()

	orders := &fakeOrders{resp: map[string]interface{}{
		"id":       "order_1",
		"amount":   float64(675000),
		"currency": "INR",
	}}
	gateway := clients.NewRazorpayGatewayWithOrders(orders, "rzp_test_key", "S")

	order, err := gateway.CreateOrder(ctx, 675000, "INR", "rcpt_1")
	require.NoError(t, err)
	assert.Equal(t, "order_1", order.ID)
	assert.Equal(t, int64(675000), order.Amount)
	assert.Equal(t, "rzp_test_key", gateway.KeyID())

	require.Len(t, orders.calls, 1)
	assert.Equal(t, int64(675000), orders.calls[0]["amount"])
	assert.Equal(t, "rcpt_1", orders.calls[0]["receipt"])

	assert.True(t, gateway.VerifySignature("order_1", "pay_1", clients.SignPayment("S", "order_1", "pay_1")))
}

func TestRazorpayGateway_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	ctx := context.Background()

	orders := &fakeOrders{err: errors.New("gateway unavailable")}
	gateway := clients.NewRazorpayGatewayWithOrders(orders, "key", "secret")

	for i := 0; i < 5; i++ {
		_, err := gateway.CreateOrder(ctx, 100, "INR", "rcpt")
		require.Error(t, err)
	}

	_, err := gateway.CreateOrder(ctx, 100, "INR", "rcpt")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Len(t, orders.calls, 5)
}

func TestRazorpayGateway_RejectsResponseWithoutID(t *testing.T) {
	gateway := clients.NewRazorpayGatewayWithOrders(&fakeOrders{resp: map[string]interface{}{}}, "key", "secret")

	_, err := gateway.CreateOrder(context.Background(), 100, "INR", "rcpt")
	assert.Error(t, err)
}
