package notifications

import (
	"context"
	"fmt"
	"html/template"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"

	"tours/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_mailer.go -package=mocks tours/internal/notifications Mailer
type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}

var (
	emailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_sent_total",
		Help: "Total number of notification emails handed to the mail relay",
	}, []string{"kind"})
	emailsFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "notification_emails_failed_total",
		Help: "Total number of notification emails that could not be rendered or sent",
	}, []string{"kind"})
)

// Dispatcher sends the customer and operations emails for domain events. Delivery
// is best effort: failures are logged and counted, never returned.
type Dispatcher struct {
	mailer       Mailer
	adminEmail   string
	brand        string
	dashboardURL string
}

func NewDispatcher(mailer Mailer, adminEmail, brand, dashboardURL string) *Dispatcher {
	if mailer == nil {
		panic("missing mailer")
	}

	return &Dispatcher{
		mailer:       mailer,
		adminEmail:   adminEmail,
		brand:        brand,
		dashboardURL: dashboardURL,
	}
}

type outgoing struct {
	kind  string
	to    string
	tmpl  *template.Template
	title string
	color string
	subj  string
}

func (d *Dispatcher) BookingConfirmed(ctx context.Context, evt entities.BookingConfirmed_v1) {
	d.dispatch(ctx, evt,
		outgoing{
			kind:  "booking_customer",
			to:    evt.ContactEmail,
			tmpl:  bookingCustomerTmpl,
			title: "Booking confirmed",
			color: "#0284c7",
			subj:  fmt.Sprintf("Your booking #%d is confirmed - %s", evt.BookingID, evt.TargetName),
		},
		outgoing{
			kind:  "booking_admin",
			to:    d.adminEmail,
			tmpl:  bookingAdminTmpl,
			title: "New booking",
			color: "#b91c1c",
			subj:  fmt.Sprintf("New booking #%d - %s", evt.BookingID, evt.TargetName),
		},
	)
}

func (d *Dispatcher) ContactQueryCreated(ctx context.Context, evt entities.ContactQueryCreated_v1) {
	d.dispatch(ctx, evt,
		outgoing{
			kind:  "query_customer",
			to:    evt.Email,
			tmpl:  queryCustomerTmpl,
			title: d.brand,
			color: "#0284c7",
			subj:  fmt.Sprintf("Thank you for contacting %s - Query #%d", d.brand, evt.QueryID),
		},
		outgoing{
			kind:  "query_admin",
			to:    d.adminEmail,
			tmpl:  queryAdminTmpl,
			title: "New Contact Query",
			color: "#b91c1c",
			subj:  fmt.Sprintf("New Contact Query #%d - %s", evt.QueryID, evt.Subject),
		},
	)
}

func (d *Dispatcher) dispatch(ctx context.Context, evt any, emails ...outgoing) {
	var g errgroup.Group
	for _, e := range emails {
		g.Go(func() error {
			d.send(ctx, evt, e)
			return nil
		})
	}
	_ = g.Wait()
}

func (d *Dispatcher) send(ctx context.Context, evt any, e outgoing) {
	logger := log.FromContext(ctx).WithField("kind", e.kind).WithField("to", e.to)

	if e.to == "" {
		logger.Warn("No recipient for notification email, skipping")
		return
	}

	html, err := render(e.tmpl, templateData{
		Title:        e.title,
		Accent:       e.color,
		Brand:        d.brand,
		DashboardURL: d.dashboardURL,
		Event:        evt,
	})
	if err != nil {
		emailsFailedTotal.WithLabelValues(e.kind).Inc()
		logger.WithError(err).Error("Failed to render notification email")
		return
	}

	err = d.mailer.Send(ctx, entities.Email{
		To:      []string{e.to},
		Subject: e.subj,
		HTML:    html,
	})
	if err != nil {
		emailsFailedTotal.WithLabelValues(e.kind).Inc()
		logger.WithError(err).Error("Failed to send notification email")
		return
	}

	emailsSentTotal.WithLabelValues(e.kind).Inc()
	logger.Info("Notification email sent")
}
