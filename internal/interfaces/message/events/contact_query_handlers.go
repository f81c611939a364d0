package events

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	"tours/internal/entities"
)

func (h *Handler) NotifyContactQueryHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"notify_contact_query_created",
		func(ctx context.Context, payload *entities.ContactQueryCreated_v1) error {
			log.FromContext(ctx).WithField("query_id", payload.QueryID).Info("Sending contact query emails")

			h.notifier.ContactQueryCreated(ctx, *payload)
			return nil
		},
	)
}
