package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/redis/go-redis/v9"
)

var ErrMessageNotFound = errors.New("message not found")

type Message struct {
	StreamID string
	UUID     string
	Topic    string
	Handler  string
	Reason   string
}

// Queue reads the poison stream directly, so listing it does not consume or
// reorder anything.
type Queue struct {
	redis        *redis.Client
	stream       string
	publisher    message.Publisher
	unmarshaller redisstream.Unmarshaller
}

func NewQueue(redisClient *redis.Client, stream string, publisher message.Publisher) *Queue {
	return &Queue{
		redis:        redisClient,
		stream:       stream,
		publisher:    publisher,
		unmarshaller: redisstream.DefaultMarshallerUnmarshaller{},
	}
}

func (q *Queue) Preview(ctx context.Context) ([]Message, error) {
	entries, err := q.redis.XRange(ctx, q.stream, "-", "+").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", q.stream, err)
	}

	res := make([]Message, 0, len(entries))
	for _, entry := range entries {
		msg, err := q.unmarshaller.Unmarshal(entry.Values)
		if err != nil {
			return nil, fmt.Errorf("failed to unmarshal entry %s: %w", entry.ID, err)
		}

		res = append(res, Message{
			StreamID: entry.ID,
			UUID:     msg.UUID,
			Topic:    msg.Metadata.Get(middleware.PoisonedTopicKey),
			Handler:  msg.Metadata.Get(middleware.PoisonedHandlerKey),
			Reason:   msg.Metadata.Get(middleware.ReasonForPoisonedKey),
		})
	}

	return res, nil
}

func (q *Queue) Remove(ctx context.Context, uuid string) error {
	streamID, _, err := q.find(ctx, uuid)
	if err != nil {
		return err
	}

	return q.redis.XDel(ctx, q.stream, streamID).Err()
}

// Requeue publishes the message back to the topic it was poisoned on and
// drops it from the poison stream.
func (q *Queue) Requeue(ctx context.Context, uuid string) error {
	streamID, msg, err := q.find(ctx, uuid)
	if err != nil {
		return err
	}

	topic := msg.Metadata.Get(middleware.PoisonedTopicKey)
	if topic == "" {
		return fmt.Errorf("message %s has no original topic", uuid)
	}

	for _, key := range []string{
		middleware.PoisonedTopicKey,
		middleware.PoisonedHandlerKey,
		middleware.PoisonedSubscriberKey,
		middleware.ReasonForPoisonedKey,
	} {
		delete(msg.Metadata, key)
	}

	if err := q.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish message to %s: %w", topic, err)
	}

	return q.redis.XDel(ctx, q.stream, streamID).Err()
}

func (q *Queue) find(ctx context.Context, uuid string) (string, *message.Message, error) {
	entries, err := q.redis.XRange(ctx, q.stream, "-", "+").Result()
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", q.stream, err)
	}

	for _, entry := range entries {
		msg, err := q.unmarshaller.Unmarshal(entry.Values)
		if err != nil {
			continue
		}
		if msg.UUID == uuid {
			return entry.ID, msg, nil
		}
	}

	return "", nil, ErrMessageNotFound
}
