package services

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tours/internal/entities"
)

type NewslettersRepo interface {
	Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error)
	Unsubscribe(ctx context.Context, email string) error
}

type NewsletterService struct {
	newsletters NewslettersRepo
}

func NewNewsletterService(newsletters NewslettersRepo) *NewsletterService {
	return &NewsletterService{newsletters: newsletters}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validation.Validate(email, validation.Required, is.EmailFormat); err != nil {
		return "", entities.NewFieldError("email", err.Error())
	}

	return email, nil
}

// Subscribe is an upsert: subscribing twice keeps one row and re-activates it.
func (s *NewsletterService) Subscribe(ctx context.Context, email string) (*entities.NewsletterSubscription, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}

	return s.newsletters.Subscribe(ctx, email)
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}

	return s.newsletters.Unsubscribe(ctx, email)
}
