package outbox

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"

	"tours/internal/infrastructure/event_publisher"
	"tours/internal/interfaces/message/events"
	"tours/internal/observability"
)

// Topic is the SQL table topic every outgoing message is enveloped into before the
// forwarder moves it to Redis.
const Topic = "events_to_forward"

func NewPublisher(
	tx watermillSQL.ContextExecutor,
	logger watermill.LoggerAdapter,
) (message.Publisher, error) {
	publisher, err := watermillSQL.NewPublisher(
		tx,
		watermillSQL.PublisherConfig{
			SchemaAdapter: watermillSQL.DefaultPostgreSQLSchema{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox publisher: %w", err)
	}

	return forwarder.NewPublisher(
		event_publisher.CorrelationPublisherDecorator{
			Publisher: observability.PublisherWithTracing{Publisher: publisher},
		},
		forwarder.PublisherConfig{
			ForwarderTopic: Topic,
		},
	), nil
}

// TxEventBus publishes events into the outbox table using the transaction carried
// by ctx, so an event is stored if and only if the surrounding transaction commits.
// Without a transaction in ctx the event is written straight to the outbox.
type TxEventBus struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
	logger watermill.LoggerAdapter
}

func NewTxEventBus(db *sqlx.DB, logger watermill.LoggerAdapter) *TxEventBus {
	return &TxEventBus{
		db:     db,
		getter: trmsqlx.DefaultCtxGetter,
		logger: logger,
	}
}

func (b *TxEventBus) Publish(ctx context.Context, event any) error {
	publisher, err := NewPublisher(b.getter.DefaultTrOrDB(ctx, b.db), b.logger)
	if err != nil {
		return err
	}

	eb, err := events.NewEventBus(publisher, b.logger)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}

	if err := eb.Publish(ctx, event); err != nil {
		return fmt.Errorf("failed to publish %T to outbox: %w", event, err)
	}

	return nil
}
