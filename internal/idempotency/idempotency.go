package idempotency

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const Header = "Idempotency-Key"

const maxKeyLength = 64

type ctxKey struct{}

func WithKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, ctxKey{}, key)
}

// GetKey returns the key the client sent with the request, or a fresh one.
func GetKey(ctx context.Context) string {
	key, ok := ctx.Value(ctxKey{}).(string)
	if !ok {
		return uuid.NewString()
	}

	return key
}

// Middleware carries the Idempotency-Key request header into the request context.
func Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := strings.TrimSpace(c.Request().Header.Get(Header))
		if key == "" || len(key) > maxKeyLength {
			return next(c)
		}

		req := c.Request()
		c.SetRequest(req.WithContext(WithKey(req.Context(), key)))

		return next(c)
	}
}
