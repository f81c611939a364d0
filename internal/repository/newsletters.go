package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

type NewslettersRepo struct {
	conn
}

func NewNewslettersRepo(db *sqlx.DB) *NewslettersRepo {
	return &NewslettersRepo{conn: newConn(db)}
}

// Subscribe is idempotent: a known email is re-subscribed.
func (r *NewslettersRepo) Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error) {
	var s entities.NewsletterSubscription
	err := r.tr(ctx).GetContext(ctx, &s, `
		INSERT INTO newsletters (email, subscribed, subscribed_at)
		VALUES ($1, TRUE, NOW())
		ON CONFLICT (email) DO UPDATE
		SET subscribed = TRUE, subscribed_at = NOW(), unsubscribed_at = NULL
		RETURNING id, email, subscribed, subscribed_at, unsubscribed_at`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe %s: %w", email, err)
	}

	return &s, nil
}

func (r *NewslettersRepo) Unsubscribe(ctx context.Context, email string) error {
	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE newsletters SET subscribed = FALSE, unsubscribed_at = NOW()
		WHERE email = $1`,
		email,
	)
	if err != nil {
		return fmt.Errorf("failed to unsubscribe %s: %w", email, err)
	}

	return mustAffect(res, "newsletter subscription", email)
}

func (r *NewslettersRepo) ListSubscribed(ctx context.Context) ([]entities.Recipient, error) {
	recipients := []entities.Recipient{}
	err := r.tr(ctx).SelectContext(ctx, &recipients, `
		SELECT n.email, COALESCE(u.first_name, '') AS first_name, COALESCE(u.last_name, '') AS last_name
		FROM newsletters n
		LEFT JOIN users u ON u.email = n.email
		WHERE n.subscribed
		ORDER BY n.id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}

	return recipients, nil
}
