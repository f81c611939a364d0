package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tours/internal/application/services"
	"tours/internal/application/usecases/booking"
	"tours/internal/application/usecases/reviews"
	"tours/internal/auth"
	"tours/internal/idempotency"
)

type ImageStore interface {
	Upload(ctx context.Context, fileName, contentType string, content []byte) (string, error)
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Services struct {
	Auth       *auth.Service
	Users      auth.UsersRepo
	Tokens     auth.TokenStore
	Sessions   *auth.Sessions
	Google     *auth.GoogleOAuth
	Catalog    *services.CatalogService
	Bookings   *booking.BookingUsecase
	Reviews    *reviews.ReviewsUsecase
	Contact    *services.ContactService
	Newsletter *services.NewsletterService
	CRM        *services.CRMService
	Images     ImageStore
}

type Options struct {
	Addr           string
	FrontendURL    string
	AllowedOrigins []string
	SecureCookies  bool

	// ContactRateLimit guards the public contact form. Nil disables the limit.
	ContactRateLimit middleware.RateLimiterStore

	RouterIsRunning func() bool
	DB              Pinger
}

type Server struct {
	e    *echo.Echo
	svc  Services
	opts Options

	requireAdmin echo.MiddlewareFunc
}

func NewServer(e *echo.Echo, svc Services, opts Options) *Server {
	srv := &Server{
		e:    e,
		svc:  svc,
		opts: opts,

		requireAdmin: auth.RequireAdmin(svc.Users),
	}

	e.HTTPErrorHandler = HandleError
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     opts.AllowedOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			idempotency.Header,
		},
	}))
	e.Use(metricsMiddleware)
	e.Use(loggingMiddleware)
	e.Use(idempotency.Middleware)

	e.GET("/health", srv.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", auth.Authenticate(svc.Tokens, svc.Sessions))

	srv.registerAuthRoutes(api)
	srv.registerCatalogRoutes(api)
	srv.registerBookingRoutes(api)
	srv.registerContentRoutes(api)
	srv.registerCRMRoutes(api.Group("/admin", srv.requireAdmin))

	return srv
}

func (s *Server) registerAuthRoutes(api *echo.Group) {
	g := api.Group("/auth")

	g.POST("/signup", s.SignupHandler)
	g.POST("/login", s.LoginHandler)
	g.POST("/logout", s.LogoutHandler)
	g.GET("/logout", s.LogoutHandler)
	g.GET("/user", s.CurrentUserHandler, auth.RequireUser)
	g.GET("/admin", s.AdminCheckHandler, s.requireAdmin)
	g.GET("/token", s.IssueTokenHandler, auth.RequireUser)
	g.GET("/verify-token", s.VerifyTokenHandler)
	g.GET("/google", s.GoogleLoginHandler)
	g.GET("/google/callback", s.GoogleCallbackHandler)
}

func (s *Server) registerCatalogRoutes(api *echo.Group) {
	admin := s.requireAdmin

	api.GET("/packages", s.ListPackagesHandler)
	api.GET("/packages/:id", s.GetPackageHandler)
	api.GET("/packages/:id/price", s.PackagePriceHandler)
	api.POST("/packages", s.CreatePackageHandler, admin)
	api.PUT("/packages/:id", s.UpdatePackageHandler, admin)
	api.DELETE("/packages/:id", s.DeletePackageHandler, admin)

	api.GET("/events", s.ListEventsHandler)
	api.GET("/events/:id", s.GetEventHandler)
	api.POST("/events", s.CreateEventHandler, admin)
	api.PUT("/events/:id", s.UpdateEventHandler, admin)
	api.DELETE("/events/:id", s.DeleteEventHandler, admin)

	api.GET("/availability", s.ListAvailabilityHandler)
	api.POST("/availability", s.CreateAvailabilityHandler, admin)
	api.PUT("/availability/:id", s.UpdateAvailabilityHandler, admin)

	api.GET("/translations/:entityType/:entityId", s.TranslationsHandler)
	api.POST("/translations", s.SaveTranslationHandler, admin)
}

func (s *Server) registerBookingRoutes(api *echo.Group) {
	user := auth.RequireUser

	api.POST("/bookings/validate", s.ValidateBookingHandler, user)
	api.POST("/bookings", s.CreateBookingHandler, user)
	api.GET("/bookings", s.ListBookingsHandler, user)
	api.GET("/bookings/:id", s.GetBookingHandler, user)
	api.POST("/bookings/:id/cancel", s.CancelBookingHandler, user)

	api.POST("/payments/create-order", s.CreateOrderHandler, user)
	api.POST("/payments/verify", s.VerifyPaymentHandler, user)
	api.POST("/payments/failed", s.PaymentFailedHandler, user)
}

func (s *Server) registerContentRoutes(api *echo.Group) {
	admin := s.requireAdmin

	api.GET("/reviews", s.ListReviewsHandler)
	api.POST("/reviews", s.CreateReviewHandler, auth.RequireUser)

	api.POST("/newsletter/subscribe", s.SubscribeHandler)
	api.POST("/newsletter/unsubscribe", s.UnsubscribeHandler)

	var limit []echo.MiddlewareFunc
	if s.opts.ContactRateLimit != nil {
		limit = append(limit, middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: s.opts.ContactRateLimit,
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return c.JSON(http.StatusTooManyRequests, ErrorResponse{Message: "Too many requests, please try again later"})
			},
		}))
	}
	api.POST("/contact-queries", s.CreateContactQueryHandler, limit...)
	api.GET("/contact-queries", s.ListContactQueriesHandler, admin)
	api.GET("/contact-queries/:id", s.GetContactQueryHandler, admin)
	api.PUT("/contact-queries/:id", s.UpdateContactQueryHandler, admin)
	api.DELETE("/contact-queries/:id", s.DeleteContactQueryHandler, admin)

	api.POST("/upload-image", s.UploadImageHandler, admin)
	api.GET("/admin/dashboard", s.DashboardHandler, admin)
}

func (s *Server) HealthHandler(c echo.Context) error {
	if s.opts.RouterIsRunning != nil && !s.opts.RouterIsRunning() {
		return c.String(http.StatusServiceUnavailable, "router is not running")
	}
	if s.opts.DB != nil {
		if err := s.opts.DB.PingContext(c.Request().Context()); err != nil {
			return c.String(http.StatusServiceUnavailable, "database is not reachable")
		}
	}

	return c.String(http.StatusOK, "ok")
}

func (s *Server) Start() error {
	err := s.e.Start(s.opts.Addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
