package commands

import (
	"context"
	"time"

	"tours/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_campaigns_repository.go -package=mocks tours/internal/interfaces/message/commands CampaignsRepository
type CampaignsRepository interface {
	Get(ctx context.Context, id int64) (*entities.EmailCampaign, error)
	StartSending(ctx context.Context, id int64) (bool, error)
	RecordDelivery(ctx context.Context, id int64, delivered bool) error
	FinishSending(ctx context.Context, id int64, at time.Time) (sent, failed int, err error)
}

//go:generate mockgen -destination=mocks/mock_recipients_source.go -package=mocks tours/internal/interfaces/message/commands RecipientsSource
type RecipientsSource interface {
	Recipients(ctx context.Context, audience entities.CampaignAudience) ([]entities.Recipient, error)
}

//go:generate mockgen -destination=mocks/mock_subscribers_source.go -package=mocks tours/internal/interfaces/message/commands SubscribersSource
type SubscribersSource interface {
	ListSubscribed(ctx context.Context) ([]entities.Recipient, error)
}

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks tours/internal/interfaces/message/commands Mailer
type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}

type Handler struct {
	campaigns   CampaignsRepository
	customers   RecipientsSource
	subscribers SubscribersSource
	mailer      Mailer
}

func NewHandler(
	campaigns CampaignsRepository,
	customers RecipientsSource,
	subscribers SubscribersSource,
	mailer Mailer,
) *Handler {
	return &Handler{
		campaigns:   campaigns,
		customers:   customers,
		subscribers: subscribers,
		mailer:      mailer,
	}
}
