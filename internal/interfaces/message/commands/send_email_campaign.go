package commands

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasttemplate"

	"tours/internal/entities"
)

var campaignEmailsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "campaign_emails_total",
	Help: "Total number of campaign emails by delivery result",
}, []string{"result"})

func (h *Handler) SendEmailCampaignHandler() cqrs.CommandHandler {
	return cqrs.NewCommandHandler(
		"send_email_campaign",
		func(ctx context.Context, command *entities.SendEmailCampaign) error {
			logger := log.FromContext(ctx).WithField("campaign_id", command.CampaignID)

			campaign, err := h.campaigns.Get(ctx, command.CampaignID)
			if err != nil {
				return fmt.Errorf("failed to get campaign: %w", err)
			}

			// An earlier delivery claimed the campaign and stopped before finishing.
			// Recipients it reached are already counted and are not mailed again.
			if campaign.Status == entities.CampaignSending {
				logger.Warn("Campaign left in sending, finishing it")
				return h.finishCampaign(ctx, logger, campaign.ID)
			}

			subject, err := fasttemplate.NewTemplate(campaign.Subject, "{{", "}}")
			if err != nil {
				return fmt.Errorf("invalid subject template: %w", err)
			}
			content, err := fasttemplate.NewTemplate(campaign.Content, "{{", "}}")
			if err != nil {
				return fmt.Errorf("invalid content template: %w", err)
			}

			recipients, err := h.recipients(ctx, campaign.TargetAudience)
			if err != nil {
				return err
			}

			claimed, err := h.campaigns.StartSending(ctx, campaign.ID)
			if err != nil {
				return fmt.Errorf("failed to claim campaign: %w", err)
			}
			if !claimed {
				logger.WithField("status", campaign.Status).Info("Campaign already sent or sending, skipping")
				return nil
			}

			for _, r := range recipients {
				sendErr := h.mailer.Send(ctx, entities.Email{
					To:      []string{r.Email},
					Subject: subject.ExecuteFuncString(placeholders(r, false)),
					HTML:    content.ExecuteFuncString(placeholders(r, true)),
				})
				if sendErr != nil {
					campaignEmailsTotal.WithLabelValues("failed").Inc()
					logger.WithError(sendErr).WithField("to", r.Email).Warn("Failed to send campaign email")
				} else {
					campaignEmailsTotal.WithLabelValues("sent").Inc()
				}

				if err := h.campaigns.RecordDelivery(ctx, campaign.ID, sendErr == nil); err != nil {
					logger.WithError(err).WithField("to", r.Email).Error("Failed to record campaign delivery")
				}
			}

			return h.finishCampaign(ctx, logger, campaign.ID)
		},
	)
}

func (h *Handler) finishCampaign(ctx context.Context, logger *logrus.Entry, id int64) error {
	sent, failed, err := h.campaigns.FinishSending(ctx, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to finish campaign: %w", err)
	}

	logger.WithField("sent", sent).WithField("failed", failed).Info("Campaign sent")

	return nil
}

// recipients merges audience customers and, when asked for, newsletter
// subscribers. Each address receives the campaign once.
func (h *Handler) recipients(ctx context.Context, audience entities.CampaignAudience) ([]entities.Recipient, error) {
	customers, err := h.customers.Recipients(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customers: %w", err)
	}

	all := customers
	if audience.IncludeNewsletter {
		subscribers, err := h.subscribers.ListSubscribed(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list newsletter subscribers: %w", err)
		}
		all = append(all, subscribers...)
	}

	seen := make(map[string]struct{}, len(all))
	res := make([]entities.Recipient, 0, len(all))
	for _, r := range all {
		key := strings.ToLower(strings.TrimSpace(r.Email))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		res = append(res, r)
	}

	return res, nil
}

// placeholders fills {{name}}, {{firstName}}, {{lastName}} and {{email}}, HTML
// escaped for bodies. Unknown tags are written back unchanged.
func placeholders(r entities.Recipient, escape bool) fasttemplate.TagFunc {
	name := strings.TrimSpace(r.FirstName + " " + r.LastName)
	if name == "" {
		name = r.Email
	}

	values := map[string]string{
		"name":      name,
		"firstName": r.FirstName,
		"lastName":  r.LastName,
		"email":     r.Email,
	}

	return func(w io.Writer, tag string) (int, error) {
		if v, ok := values[strings.TrimSpace(tag)]; ok {
			if escape {
				v = html.EscapeString(v)
			}
			return w.Write([]byte(v))
		}

		return w.Write([]byte("{{" + tag + "}}"))
	}
}
