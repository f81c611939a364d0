package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lithammer/shortuuid/v3"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tours/internal/app"
	bookingMocks "tours/internal/application/usecases/booking/mocks"
	"tours/internal/auth"
	"tours/internal/config"
	"tours/internal/entities"
	notificationMocks "tours/internal/notifications/mocks"
	"tours/internal/repository"
)

const (
	serviceAddr = "127.0.0.1:18080"
	adminEmail  = "ops@example.com"
)

type ComponentTestSuite struct {
	suite.Suite

	ctx    context.Context
	cancel context.CancelFunc

	ctrl    *gomock.Controller
	gateway *bookingMocks.MockPaymentGateway
	mailer  *notificationMocks.MockMailer

	mu   sync.Mutex
	sent []entities.Email

	containers []testcontainers.Container
	db         *sqlx.DB
	httpClient *http.Client
	done       chan error
}

func TestComponentTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("component tests need docker")
	}
	suite.Run(t, new(ComponentTestSuite))
}

func (s *ComponentTestSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithCancel(context.Background())
	s.httpClient = &http.Client{Timeout: 5 * time.Second}

	s.ctrl = gomock.NewController(s.T())
	s.gateway = bookingMocks.NewMockPaymentGateway(s.ctrl)
	s.mailer = notificationMocks.NewMockMailer(s.ctrl)

	s.mailer.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e entities.Email) error {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.sent = append(s.sent, e)
			return nil
		}).
		AnyTimes()
	s.gateway.EXPECT().KeyID().Return("rzp_test_key").AnyTimes()

	redisAddr := s.startContainer("redis:7-alpine", "6379/tcp", wait.ForLog("Ready to accept connections"), nil)
	postgresAddr := s.startContainer(
		"postgres:16-alpine",
		"5432/tcp",
		wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(time.Minute),
		map[string]string{
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_DB":       "tours",
		},
	)

	var err error
	s.db, err = sqlx.Open("postgres", fmt.Sprintf("postgres://postgres:postgres@%s/tours?sslmode=disable", postgresAddr))
	require.NoError(s.T(), err)
	require.Eventually(s.T(), func() bool { return s.db.Ping() == nil }, 30*time.Second, 200*time.Millisecond)

	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	require.NoError(s.T(), redisClient.Ping(s.ctx).Err(), "Failed to connect to Redis")

	cfg := &config.Config{
		HTTPAddr:           serviceAddr,
		FrontendURL:        "http://localhost:5173",
		BackendURL:         "http://" + serviceAddr,
		AdminDashboardURL:  "http://localhost:5173/admin",
		SessionTTL:         time.Hour,
		TokenTTL:           time.Hour,
		SweepInterval:      time.Minute,
		RateLimitPerMinute: 100,
		SMTP:               config.SMTPConfig{AdminEmail: adminEmail},
	}

	a, err := app.NewApp(cfg, app.Deps{
		DB:          s.db,
		RedisClient: redisClient,
		Gateway:     s.gateway,
		Mailer:      s.mailer,
		Tokens:      auth.NewMemoryTokenStore(time.Hour),
	}, watermill.NopLogger{})
	require.NoError(s.T(), err, "Failed to initialize the app")

	s.done = make(chan error, 1)
	go func() {
		s.done <- a.Run(s.ctx)
	}()

	require.Eventually(s.T(), func() bool {
		resp, err := s.httpClient.Get("http://" + serviceAddr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 30*time.Second, 100*time.Millisecond, "HTTP server did not become healthy")
}

func (s *ComponentTestSuite) TearDownSuite() {
	s.cancel()
	if s.done != nil {
		select {
		case err := <-s.done:
			assert.NoError(s.T(), err)
		case <-time.After(15 * time.Second):
			s.T().Error("app did not stop")
		}
	}
	if s.db != nil {
		_ = s.db.Close()
	}
	for _, c := range s.containers {
		_ = c.Terminate(context.Background())
	}
}

func (s *ComponentTestSuite) startContainer(image, port string, waitFor wait.Strategy, env map[string]string) string {
	c, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{port},
			Env:          env,
			WaitingFor:   waitFor,
		},
		Started: true,
	})
	require.NoError(s.T(), err, "Failed to start %s", image)
	s.containers = append(s.containers, c)

	// Endpoint resolves the single exposed port
	addr, err := c.Endpoint(s.ctx, "")
	require.NoError(s.T(), err)

	return addr
}

func (s *ComponentTestSuite) request(method, path, token string, body any) (int, map[string]any) {
	var payload bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&payload).Encode(body))
	}

	req, err := http.NewRequest(method, "http://"+serviceAddr+path, &payload)
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())
	req.Header.Set("Correlation-ID", shortuuid.New())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	var out map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&out)

	return resp.StatusCode, out
}

func (s *ComponentTestSuite) signup() string {
	email := uuid.NewString() + "@example.com"
	status, out := s.request(http.MethodPost, "/api/auth/signup", "", map[string]string{
		"email":     email,
		"password":  "correct-horse-battery",
		"firstName": "Asha",
		"lastName":  "Rao",
	})
	require.Equal(s.T(), http.StatusCreated, status, out)

	token, ok := out["token"].(string)
	require.True(s.T(), ok)

	return token
}

func (s *ComponentTestSuite) emailsTo(to, subjectPrefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, e := range s.sent {
		if len(e.To) > 0 && e.To[0] == to && strings.HasPrefix(e.Subject, subjectPrefix) {
			n++
		}
	}
	return n
}

func (s *ComponentTestSuite) TestContactQuery_notifies_customer_and_admin() {
	email := uuid.NewString() + "@example.com"

	status, out := s.request(http.MethodPost, "/api/contact-queries", "", map[string]string{
		"name":    "Ravi",
		"email":   email,
		"subject": "Group discount",
		"message": "Do you offer discounts for groups of 12?",
	})
	require.Equal(s.T(), http.StatusCreated, status, out)

	require.Eventually(s.T(), func() bool {
		return s.emailsTo(email, "Thank you for contacting") == 1 &&
			s.emailsTo(adminEmail, "New Contact Query") >= 1
	}, 15*time.Second, 100*time.Millisecond, "contact query emails were not sent")
}

func (s *ComponentTestSuite) TestPaidBooking_is_confirmed_and_synced_to_crm() {
	token := s.signup()

	pkg := &entities.TourPackage{
		Name:              "Kerala Backwaters",
		Destination:       "Kerala",
		DurationDays:      5,
		DurationNights:    4,
		MinPassengerCount: 1,
		MaxPassengerCount: 10,
		StartingPrice:     decimal.NewFromInt(1000),
		Currency:          "INR",
		Active:            true,
	}
	require.NoError(s.T(), repository.NewPackagesRepo(s.db).Create(s.ctx, pkg))

	contactEmail := uuid.NewString() + "@example.com"
	draft := map[string]any{
		"packageId":    pkg.ID,
		"adults":       2,
		"contactName":  "Meera Iyer",
		"contactEmail": contactEmail,
		"contactPhone": "+91 98450 00000",
	}

	status, validated := s.request(http.MethodPost, "/api/bookings/validate", token, draft)
	require.Equal(s.T(), http.StatusOK, status, validated)
	total := validated["totalAmount"]

	orderID := "order_" + uuid.NewString()[:8]
	s.gateway.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any(), "INR", gomock.Any()).
		DoAndReturn(func(_ context.Context, amount int64, currency, receipt string) (*entities.GatewayOrder, error) {
			return &entities.GatewayOrder{ID: orderID, Amount: amount, Currency: currency, Receipt: receipt}, nil
		})
	s.gateway.EXPECT().VerifySignature(orderID, "pay_1", "sig_1").Return(true)

	status, order := s.request(http.MethodPost, "/api/payments/create-order", token, map[string]any{
		"amount":   total,
		"currency": "INR",
		"booking":  draft,
	})
	require.Equal(s.T(), http.StatusOK, status, order)
	assert.Equal(s.T(), orderID, order["orderId"])
	assert.Equal(s.T(), "rzp_test_key", order["keyId"])

	status, verified := s.request(http.MethodPost, "/api/payments/verify", token, map[string]string{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "sig_1",
	})
	require.Equal(s.T(), http.StatusOK, status, verified)

	booking, ok := verified["booking"].(map[string]any)
	require.True(s.T(), ok)
	assert.Equal(s.T(), "confirmed", booking["status"])
	assert.Equal(s.T(), total, booking["totalAmount"])

	require.Eventually(s.T(), func() bool {
		return s.emailsTo(contactEmail, "Your booking #") == 1 &&
			s.emailsTo(adminEmail, "New booking #") >= 1
	}, 15*time.Second, 100*time.Millisecond, "booking emails were not sent")

	require.Eventually(s.T(), func() bool {
		var n int
		err := s.db.GetContext(s.ctx, &n, `SELECT COUNT(*) FROM customers WHERE email = $1`, contactEmail)
		return err == nil && n == 1
	}, 15*time.Second, 100*time.Millisecond, "customer was not created in CRM")

	// a replayed confirmation returns the same booking without a second email
	s.gateway.EXPECT().VerifySignature(orderID, "pay_1", "sig_1").Return(true)
	status, replayed := s.request(http.MethodPost, "/api/payments/verify", token, map[string]string{
		"orderId":   orderID,
		"paymentId": "pay_1",
		"signature": "sig_1",
	})
	require.Equal(s.T(), http.StatusOK, status, replayed)
	assert.Equal(s.T(), booking["id"], replayed["booking"].(map[string]any)["id"])

	time.Sleep(500 * time.Millisecond)
	assert.Equal(s.T(), 1, s.emailsTo(contactEmail, "Your booking #"))
}
