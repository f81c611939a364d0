package notifications_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/entities"
	"tours/internal/notifications"
	"tours/internal/notifications/mocks"
)

type sentEmails struct {
	mu     sync.Mutex
	emails []entities.Email
}

func (s *sentEmails) record(_ context.Context, email entities.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return nil
}

func (s *sentEmails) byRecipient() map[string]entities.Email {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := map[string]entities.Email{}
	for _, e := range s.emails {
		res[e.To[0]] = e
	}
	return res
}

func TestDispatcher_ContactQueryCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	sent := &sentEmails{}
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(sent.record).Times(2)

	d := notifications.NewDispatcher(mailer, "ops@example.com", "Tours", "http://localhost:5173/admin")
	d.ContactQueryCreated(context.Background(), entities.ContactQueryCreated_v1{
		QueryID:   42,
		Name:      "Asha",
		Email:     "asha@example.com",
		Subject:   "Visa help",
		Message:   "<script>alert(1)</script>",
		CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	emails := sent.byRecipient()
	require.Len(t, emails, 2)

	customer := emails["asha@example.com"]
	assert.Equal(t, "Thank you for contacting Tours - Query #42", customer.Subject)
	assert.Contains(t, customer.HTML, "Dear Asha")
	assert.NotContains(t, customer.HTML, "<script>")
	assert.Contains(t, customer.HTML, "&lt;script&gt;")

	admin := emails["ops@example.com"]
	assert.Equal(t, "New Contact Query #42 - Visa help", admin.Subject)
	assert.Contains(t, admin.HTML, "Not provided")
	assert.Contains(t, admin.HTML, "http://localhost:5173/admin")
}

func TestDispatcher_BookingConfirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	sent := &sentEmails{}
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(sent.record).Times(2)

	date := entities.NewDate(time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC))
	d := notifications.NewDispatcher(mailer, "ops@example.com", "Tours", "")
	d.BookingConfirmed(context.Background(), entities.BookingConfirmed_v1{
		BookingID:    7,
		Target:       entities.PackageTarget(3),
		TargetName:   "Bali Escape",
		TravelDate:   &date,
		Adults:       2,
		Children:     1,
		ContactName:  "Ravi",
		ContactEmail: "ravi@example.com",
		TotalAmount:  decimal.RequireFromString("6750"),
		Currency:     "INR",
		OrderID:      "order_1",
		PaymentID:    "pay_1",
	})

	emails := sent.byRecipient()
	require.Len(t, emails, 2)

	customer := emails["ravi@example.com"]
	assert.Equal(t, "Your booking #7 is confirmed - Bali Escape", customer.Subject)
	assert.Contains(t, customer.HTML, "2030-05-10")
	assert.Contains(t, customer.HTML, "6750.00 INR")

	admin := emails["ops@example.com"]
	assert.Equal(t, "New booking #7 - Bali Escape", admin.Subject)
	assert.Contains(t, admin.HTML, "package:3")
	assert.Contains(t, admin.HTML, "order_1 / pay_1")
}

func TestDispatcher_mailer_failure_does_not_stop_other_recipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	var (
		mu         sync.Mutex
		recipients []string
	)
	mailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, email entities.Email) error {
		mu.Lock()
		recipients = append(recipients, email.To[0])
		mu.Unlock()

		if email.To[0] == "ops@example.com" {
			return errors.New("smtp: connection refused")
		}
		return nil
	}).Times(2)

	d := notifications.NewDispatcher(mailer, "ops@example.com", "Tours", "")
	assert.NotPanics(t, func() {
		d.ContactQueryCreated(context.Background(), entities.ContactQueryCreated_v1{
			QueryID: 1,
			Name:    "Asha",
			Email:   "asha@example.com",
			Subject: "Hello",
		})
	})

	sort.Strings(recipients)
	assert.Equal(t, []string{"asha@example.com", "ops@example.com"}, recipients)
}

func TestDispatcher_skips_missing_recipient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mailer := mocks.NewMockMailer(ctrl)

	mailer.EXPECT().
		Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, email entities.Email) error {
			assert.Equal(t, []string{"asha@example.com"}, email.To)
			return nil
		}).
		Times(1)

	d := notifications.NewDispatcher(mailer, "", "Tours", "")
	d.ContactQueryCreated(context.Background(), entities.ContactQueryCreated_v1{
		QueryID: 1,
		Email:   "asha@example.com",
	})
}
