package app

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"tours/internal/application/usecases/booking"
	"tours/internal/auth"
	"tours/internal/entities"
	httpapi "tours/internal/interfaces/http"
)

type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}

// Deps are the connections and external clients built by main. Component tests
// swap the gateway, mailer and image store for fakes.
type Deps struct {
	DB          *sqlx.DB
	RedisClient *redis.Client

	Gateway booking.PaymentGateway
	Mailer  Mailer
	Images  httpapi.ImageStore

	// Tokens defaults to the Redis store when nil.
	Tokens auth.TokenStore
}
