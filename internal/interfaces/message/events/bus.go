package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"tours/internal/entities"
)

const (
	// EventsTopic receives every external event before it is logged and split
	// into per-event topics.
	EventsTopic = "events"

	internalPrefix = "internal-events.svc-tours."
	externalPrefix = "events."
)

func NewEventBus(
	pub message.Publisher,
	logger watermill.LoggerAdapter,
) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(
		pub,
		cqrs.EventBusConfig{
			GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
				event, ok := params.Event.(entities.Event)
				if !ok {
					return "", fmt.Errorf("invalid event type: %T doesn't implement entities.Event", params.Event)
				}

				if event.IsInternal() {
					return internalPrefix + params.EventName, nil
				}

				return EventsTopic, nil
			},
			Marshaler: Marshaler,
			Logger:    logger,
		},
	)
}
