package idempotency_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/idempotency"
)

func keyFor(t *testing.T, header string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	if header != "" {
		req.Header.Set(idempotency.Header, header)
	}
	c := echo.New().NewContext(req, httptest.NewRecorder())

	var key string
	err := idempotency.Middleware(func(c echo.Context) error {
		key = idempotency.GetKey(c.Request().Context())
		return nil
	})(c)
	require.NoError(t, err)

	return key
}

func TestMiddleware(t *testing.T) {
	assert.Equal(t, "checkout-42", keyFor(t, " checkout-42 "))

	_, err := uuid.Parse(keyFor(t, ""))
	assert.NoError(t, err, "a missing key falls back to a generated one")

	_, err = uuid.Parse(keyFor(t, strings.Repeat("k", 65)))
	assert.NoError(t, err, "oversized keys are ignored")
}
