package message

import (
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/google/uuid"

	"tours/internal/entities"
	"tours/internal/interfaces/message/commands"
	"tours/internal/interfaces/message/events"
)

// PoisonQueueTopic receives messages whose handlers kept failing after retries.
const PoisonQueueTopic = "svc-tours.poison_queue"

type RetryConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries:      10,
	InitialInterval: time.Millisecond * 100,
	MaxInterval:     time.Second,
}

func NewRouter(
	watermillLogger watermill.LoggerAdapter,
	newSubscriber events.SubscriberConstructor,
	publisher message.Publisher,

	eventHandler *events.Handler,
	commandsHandler *commands.Handler,

	eventProcessorConfig cqrs.EventProcessorConfig,
	commandProcessorConfig cqrs.CommandProcessorConfig,
	retry RetryConfig,

	eventsRepo events.EventRepository,
) (*message.Router, error) {
	router, err := message.NewRouter(message.RouterConfig{}, watermillLogger)
	if err != nil {
		return nil, err
	}

	if err := initMiddlewares(watermillLogger, router, publisher, retry); err != nil {
		return nil, err
	}

	eventProcessor, err := cqrs.NewEventProcessorWithConfig(router, eventProcessorConfig)
	if err != nil {
		return nil, err
	}

	err = eventProcessor.AddHandlers(
		// BookingConfirmed_v1 handlers
		eventHandler.NotifyBookingConfirmedHandler(),
		eventHandler.RecordCustomerBookingHandler(),

		// ContactQueryCreated_v1 handlers
		eventHandler.NotifyContactQueryHandler(),
	)
	if err != nil {
		return nil, err
	}

	commandsProcessor, err := cqrs.NewCommandProcessorWithConfig(router, commandProcessorConfig)
	if err != nil {
		return nil, err
	}
	err = commandsProcessor.AddHandlers(
		commandsHandler.SendEmailCampaignHandler(),
	)
	if err != nil {
		return nil, err
	}

	marshaller := events.Marshaler

	// each handler of the events topic needs its own consumer group to see every event
	splitterSubscriber, err := newSubscriber("svc-tours.events_splitter")
	if err != nil {
		return nil, err
	}
	saverSubscriber, err := newSubscriber("svc-tours.events_saver")
	if err != nil {
		return nil, err
	}

	router.AddNoPublisherHandler(
		"events_splitter",
		events.EventsTopic,
		splitterSubscriber,
		func(msg *message.Message) error {
			eventName := marshaller.NameFromMessage(msg)
			if eventName == "" {
				return fmt.Errorf("cannot get event name from message")
			}

			return publisher.Publish("events."+eventName, msg)
		},
	)

	router.AddNoPublisherHandler(
		"events_saver",
		events.EventsTopic,
		saverSubscriber,
		func(msg *message.Message) error {
			type Event struct {
				Header entities.EventHeader `json:"header"`
			}

			var event Event
			err := marshaller.Unmarshal(msg, &event)
			if err != nil {
				return err
			}

			eventName := marshaller.NameFromMessage(msg)
			if eventName == "" {
				return fmt.Errorf("cannot get event name from message")
			}

			id, err := uuid.Parse(event.Header.ID)
			if err != nil {
				return fmt.Errorf("failed to parse event id: %w", err)
			}

			err = eventsRepo.SaveEvent(
				msg.Context(),
				entities.LoggedEvent{
					ID:          id,
					PublishedAt: event.Header.PublishedAt,
					EventName:   eventName,
					Payload:     msg.Payload,
				},
			)
			if err != nil {
				return fmt.Errorf("failed to save event %s: %w", eventName, err)
			}

			return nil
		},
	)

	return router, nil
}

func initMiddlewares(
	watermillLogger watermill.LoggerAdapter,
	router *message.Router,
	publisher message.Publisher,
	retry RetryConfig,
) error {
	poisonQueue, err := middleware.PoisonQueue(publisher, PoisonQueueTopic)
	if err != nil {
		return fmt.Errorf("failed to create poison queue middleware: %w", err)
	}

	router.AddMiddleware(events.TracingMiddleware)
	router.AddMiddleware(middleware.Recoverer)
	router.AddMiddleware(events.CorrelationIDMiddleware)
	router.AddMiddleware(events.LoggingMiddleware)
	router.AddMiddleware(events.MetricsMiddleware)

	// poisoned after the retries below are exhausted
	router.AddMiddleware(poisonQueue)

	router.AddMiddleware(middleware.Retry{
		MaxRetries:      retry.MaxRetries,
		InitialInterval: retry.InitialInterval,
		MaxInterval:     retry.MaxInterval,
		Multiplier:      2,
		Logger:          watermillLogger,
	}.Middleware)

	// skip marshalling errors before retrying
	router.AddMiddleware(events.SkipMarshallingErrorsMiddleware)

	return nil
}
