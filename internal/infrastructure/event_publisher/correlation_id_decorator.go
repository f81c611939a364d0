package event_publisher

import (
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
)

// CorrelationPublisherDecorator copies the correlation id of the publishing
// context into message metadata, so handlers downstream log under the same id.
type CorrelationPublisherDecorator struct {
	message.Publisher
}

func (c CorrelationPublisherDecorator) Publish(topic string, messages ...*message.Message) error {
	for _, msg := range messages {
		if msg.Metadata.Get("correlation_id") != "" {
			continue
		}
		msg.Metadata.Set("correlation_id", log.CorrelationIDFromContext(msg.Context()))
	}

	return c.Publisher.Publish(topic, messages...)
}
