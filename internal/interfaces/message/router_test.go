package message_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
	watermillMessage "tours/internal/interfaces/message"
	"tours/internal/interfaces/message/commands"
	"tours/internal/interfaces/message/events"
)

type recordingNotifier struct {
	mu       sync.Mutex
	bookings []int64
	queries  []int64
}

func (n *recordingNotifier) BookingConfirmed(_ context.Context, evt entities.BookingConfirmed_v1) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.bookings = append(n.bookings, evt.BookingID)
}

func (n *recordingNotifier) ContactQueryCreated(_ context.Context, evt entities.ContactQueryCreated_v1) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.queries = append(n.queries, evt.QueryID)
}

func (n *recordingNotifier) counts() (int, int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.bookings), len(n.queries)
}

type customersStub struct {
	mu       sync.Mutex
	err      error
	recorded []int64
}

func (c *customersStub) RecordBooking(
	_ context.Context,
	_ entities.Customer,
	bookingID int64,
	_ decimal.Decimal,
	_ time.Time,
	_ string,
) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	c.recorded = append(c.recorded, bookingID)
	return true, nil
}

func (c *customersStub) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recorded)
}

type eventsLogStub struct {
	mu    sync.Mutex
	names []string
}

func (e *eventsLogStub) SaveEvent(_ context.Context, event entities.LoggedEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.names = append(e.names, event.EventName)
	return nil
}

func (e *eventsLogStub) saved() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.names...)
}

type routerEnv struct {
	pubSub    *gochannel.GoChannel
	notifier  *recordingNotifier
	customers *customersStub
	eventsLog *eventsLogStub
}

func startRouter(t *testing.T, customers *customersStub) routerEnv {
	t.Helper()

	logger := watermill.NopLogger{}
	pubSub := gochannel.NewGoChannel(gochannel.Config{Persistent: true}, logger)

	env := routerEnv{
		pubSub:    pubSub,
		notifier:  &recordingNotifier{},
		customers: customers,
		eventsLog: &eventsLogStub{},
	}

	newSubscriber := func(string) (message.Subscriber, error) {
		return pubSub, nil
	}

	router, err := watermillMessage.NewRouter(
		logger,
		newSubscriber,
		pubSub,
		events.NewHandler(env.notifier, env.customers),
		commands.NewHandler(nil, nil, nil, nil),
		events.NewEventProcessorConfig(newSubscriber, logger),
		commands.NewCommandProcessorConfig(newSubscriber, logger),
		watermillMessage.RetryConfig{
			MaxRetries:      1,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
		},
		env.eventsLog,
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		_ = router.Run(ctx)
	}()

	select {
	case <-router.Running():
	case <-time.After(5 * time.Second):
		t.Fatal("router did not start")
	}

	return env
}

func publish(t *testing.T, pub message.Publisher, event any) {
	t.Helper()

	eb, err := events.NewEventBus(pub, watermill.NopLogger{})
	require.NoError(t, err)
	require.NoError(t, eb.Publish(context.Background(), event))
}

func TestRouter_booking_confirmed_reaches_handlers_and_events_log(t *testing.T) {
	env := startRouter(t, &customersStub{})

	publish(t, env.pubSub, entities.BookingConfirmed_v1{
		Header:       entities.NewEventHeader(),
		BookingID:    21,
		ContactEmail: "a@example.com",
		TotalAmount:  decimal.NewFromInt(100),
	})
	publish(t, env.pubSub, entities.ContactQueryCreated_v1{
		Header:  entities.NewEventHeader(),
		QueryID: 3,
	})

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		bookings, queries := env.notifier.counts()
		assert.Equal(c, 1, bookings)
		assert.Equal(c, 1, queries)
		assert.Equal(c, 1, env.customers.count())
		assert.ElementsMatch(c, []string{"BookingConfirmed_v1", "ContactQueryCreated_v1"}, env.eventsLog.saved())
	}, 10*time.Second, 50*time.Millisecond)
}

func TestRouter_failing_handler_ends_in_poison_queue(t *testing.T) {
	env := startRouter(t, &customersStub{err: errors.New("database is down")})

	poisoned, err := env.pubSub.Subscribe(context.Background(), watermillMessage.PoisonQueueTopic)
	require.NoError(t, err)

	publish(t, env.pubSub, entities.BookingConfirmed_v1{
		Header:    entities.NewEventHeader(),
		BookingID: 22,
	})

	select {
	case msg := <-poisoned:
		assert.Contains(t, msg.Metadata.Get(middleware.ReasonForPoisonedKey), "database is down")
		assert.Equal(t, "crm_record_customer_booking", msg.Metadata.Get(middleware.PoisonedHandlerKey))
		msg.Ack()
	case <-time.After(10 * time.Second):
		t.Fatal("message was not poisoned")
	}

	assert.EventuallyWithT(t, func(c *assert.CollectT) {
		bookings, _ := env.notifier.counts()
		assert.Equal(c, 1, bookings)
	}, 10*time.Second, 50*time.Millisecond)
}
