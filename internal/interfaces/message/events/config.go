package events

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"tours/internal/entities"
)

var Marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

// SubscriberConstructor builds the subscriber of one handler's consumer group.
type SubscriberConstructor func(consumerGroup string) (message.Subscriber, error)

func RedisSubscriberConstructor(redisClient *redis.Client, logger watermill.LoggerAdapter) SubscriberConstructor {
	return func(consumerGroup string) (message.Subscriber, error) {
		return redisstream.NewSubscriber(redisstream.SubscriberConfig{
			Client:        redisClient,
			ConsumerGroup: consumerGroup,
		}, logger)
	}
}

func TopicFor(event any, eventName string) (string, error) {
	e, ok := event.(entities.Event)
	if !ok {
		return "", fmt.Errorf("invalid event type: %T doesn't implement entities.Event", event)
	}

	if e.IsInternal() {
		return internalPrefix + eventName, nil
	}

	return externalPrefix + eventName, nil
}

func NewEventProcessorConfig(
	newSubscriber SubscriberConstructor,
	watermillLogger watermill.LoggerAdapter,
) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return TopicFor(params.EventHandler.NewEvent(), params.EventName)
		},
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return newSubscriber("svc-tours." + params.HandlerName)
		},
		Marshaler: Marshaler,
		Logger:    watermillLogger,
	}
}
