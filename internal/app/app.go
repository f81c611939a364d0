package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	commonHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"tours/internal/application/services"
	"tours/internal/application/usecases/booking"
	"tours/internal/application/usecases/reviews"
	"tours/internal/auth"
	"tours/internal/config"
	"tours/internal/infrastructure/event_publisher"
	httpapi "tours/internal/interfaces/http"
	watermillMessage "tours/internal/interfaces/message"
	"tours/internal/interfaces/message/commands"
	"tours/internal/interfaces/message/events"
	"tours/internal/notifications"
	"tours/internal/outbox"
	"tours/internal/repository"
)

const (
	brand           = "Tours"
	shutdownTimeout = 10 * time.Second
)

type App struct {
	logger    zerolog.Logger
	db        *sqlx.DB
	router    *message.Router
	forwarder *outbox.Forwarder
	srv       *httpapi.Server

	sweepers      []auth.Sweeper
	sweepInterval time.Duration
}

func NewApp(
	cfg *config.Config,
	deps Deps,
	watermillLogger watermill.LoggerAdapter,
) (*App, error) {
	db := deps.DB
	trManager := manager.Must(trmsqlx.NewDefaultFactory(db))

	packagesRepo := repository.NewPackagesRepo(db)
	eventsRepo := repository.NewEventsRepo(db)
	availabilityRepo := repository.NewAvailabilityRepo(db)
	bookingsRepo := repository.NewBookingsRepo(db)
	paymentsRepo := repository.NewPaymentsRepo(db)
	usersRepo := repository.NewUsersRepo(db)
	sessionsRepo := repository.NewSessionsRepo(db)
	customersRepo := repository.NewCustomersRepo(db)
	campaignsRepo := repository.NewEmailCampaignsRepo(db)
	newslettersRepo := repository.NewNewslettersRepo(db)

	redisPublisher, err := event_publisher.NewRedisPublisher(watermillLogger, deps.RedisClient)
	if err != nil {
		return nil, err
	}
	eventBus, err := events.NewEventBus(redisPublisher, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create event bus: %w", err)
	}
	commandBus, err := commands.NewBus(redisPublisher, watermillLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to create command bus: %w", err)
	}

	newSubscriber := events.RedisSubscriberConstructor(deps.RedisClient, watermillLogger)
	router, err := watermillMessage.NewRouter(
		watermillLogger,
		newSubscriber,
		redisPublisher,
		events.NewHandler(
			notifications.NewDispatcher(deps.Mailer, cfg.SMTP.AdminEmail, brand, cfg.AdminDashboardURL),
			customersRepo,
		),
		commands.NewHandler(campaignsRepo, customersRepo, newslettersRepo, deps.Mailer),
		events.NewEventProcessorConfig(newSubscriber, watermillLogger),
		commands.NewCommandProcessorConfig(newSubscriber, watermillLogger),
		watermillMessage.DefaultRetryConfig,
		repository.NewEventsLogRepo(db),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create router: %w", err)
	}

	forwarder, err := outbox.NewForwarder(db, redisPublisher, outbox.DefaultForwarderConfig, watermillLogger)
	if err != nil {
		return nil, err
	}

	tokens := deps.Tokens
	if tokens == nil {
		tokens = auth.NewRedisTokenStore(deps.RedisClient, cfg.TokenTTL)
	}
	sessions := auth.NewSessions(sessionsRepo, cfg.SessionTTL)

	sweepers := []auth.Sweeper{sessions}
	if s, ok := tokens.(auth.Sweeper); ok {
		sweepers = append(sweepers, s)
	}

	srv := httpapi.NewServer(
		commonHTTP.NewEcho(),
		httpapi.Services{
			Auth:     auth.NewService(usersRepo),
			Users:    usersRepo,
			Tokens:   tokens,
			Sessions: sessions,
			Google: auth.NewGoogleOAuth(
				cfg.Google.ClientID,
				cfg.Google.ClientSecret,
				cfg.BackendURL+"/api/auth/google/callback",
			),
			Catalog: services.NewCatalogService(
				packagesRepo,
				eventsRepo,
				availabilityRepo,
				repository.NewTranslationsRepo(db),
			),
			Bookings: booking.NewBookingUsecase(
				packagesRepo,
				eventsRepo,
				availabilityRepo,
				bookingsRepo,
				paymentsRepo,
				deps.Gateway,
				outbox.NewTxEventBus(db, watermillLogger),
				trManager,
			),
			Reviews:    reviews.NewReviewsUsecase(repository.NewReviewsRepo(db), trManager),
			Contact:    services.NewContactService(repository.NewContactQueriesRepo(db), eventBus),
			Newsletter: services.NewNewsletterService(newslettersRepo),
			CRM: services.NewCRMService(services.CRMRepositories{
				Customers:      customersRepo,
				Leads:          repository.NewLeadsRepo(db),
				Opportunities:  repository.NewOpportunitiesRepo(db),
				Tasks:          repository.NewTasksRepo(db),
				EmailTemplates: repository.NewEmailTemplatesRepo(db),
				EmailCampaigns: campaignsRepo,
				Dashboard:      repository.NewDashboardRepo(db),
			}, commandBus),
			Images: deps.Images,
		},
		httpapi.Options{
			Addr:           cfg.HTTPAddr,
			FrontendURL:    cfg.FrontendURL,
			AllowedOrigins: cfg.AllowedOrigins,
			SecureCookies:  cfg.SecureCookies,
			ContactRateLimit: httpapi.NewRedisRateLimiterStore(
				deps.RedisClient,
				"contact",
				cfg.RateLimitPerMinute,
				time.Minute,
			),
			RouterIsRunning: router.IsRunning,
			DB:              db,
		},
	)

	return &App{
		logger:        zerolog.New(os.Stdout).With().Timestamp().Str("service", "tours").Logger(),
		db:            db,
		router:        router,
		forwarder:     forwarder,
		srv:           srv,
		sweepers:      sweepers,
		sweepInterval: cfg.SweepInterval,
	}, nil
}

// Run blocks until ctx is cancelled or one of the components fails.
func (a *App) Run(ctx context.Context) error {
	if err := repository.InitializeDBSchema(a.db); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().Msg("starting router")
		return a.router.Run(ctx)
	})

	g.Go(func() error {
		a.logger.Info().Msg("starting outbox forwarder")
		return a.forwarder.Run(ctx)
	})

	g.Go(func() error {
		select {
		case <-a.router.Running():
		case <-ctx.Done():
			return nil
		}
		a.logger.Info().Msg("router is running, starting server")

		return a.srv.Start()
	})

	g.Go(func() error {
		return auth.RunSweeper(ctx, a.sweepInterval, a.sweepers...)
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var errs []error
		if err := a.srv.Stop(shutdownCtx); err != nil {
			a.logger.Err(err).Msg("error stopping server")
			errs = append(errs, err)
		}
		if err := a.router.Close(); err != nil {
			a.logger.Err(err).Msg("error closing router")
			errs = append(errs, err)
		}

		return errors.Join(errs...)
	})

	err := g.Wait()
	a.logger.Info().Err(err).Msg("stopped")

	return err
}
