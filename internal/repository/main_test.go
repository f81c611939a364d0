package repository_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"tours/internal/entities"
	"tours/internal/repository"
)

var (
	db    *sqlx.DB
	dbURL string
)

// TestMain starts a throwaway Postgres unless POSTGRES_URL points at one. The
// whole package is skipped with -short.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		fmt.Println("skipping repository integration tests in short mode")
		os.Exit(0)
	}

	url, terminate, err := postgresURL()
	if err != nil {
		fmt.Printf("failed to start postgres: %v\n", err)
		os.Exit(1)
	}

	dbURL = url
	db, err = connect(url)
	if err != nil {
		terminate()
		fmt.Printf("failed to connect to postgres: %v\n", err)
		os.Exit(1)
	}

	if err := repository.InitializeDBSchema(db); err != nil {
		terminate()
		fmt.Printf("failed to initialize schema: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	_ = db.Close()
	terminate()
	os.Exit(code)
}

func postgresURL() (string, func(), error) {
	if url := os.Getenv("POSTGRES_URL"); url != "" {
		return url, func() {}, nil
	}

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "tours",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", nil, err
	}
	terminate := func() { _ = container.Terminate(context.Background()) }

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		return "", nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate()
		return "", nil, err
	}

	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/tours?sslmode=disable", host, port.Port()), terminate, nil
}

func connect(url string) (*sqlx.DB, error) {
	var lastErr error
	for i := 0; i < 20; i++ {
		conn, err := sqlx.Connect("postgres", url)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(500 * time.Millisecond)
	}

	return nil, lastErr
}

func createUser(t *testing.T) *entities.User {
	t.Helper()

	id := uuid.NewString()
	u := &entities.User{
		ID:        id,
		Email:     id + "@example.com",
		FirstName: "Asha",
		LastName:  "Rao",
		Role:      entities.RoleUser,
	}
	require.NoError(t, repository.NewUsersRepo(db).Create(context.Background(), u))

	return u
}

func createPackage(t *testing.T) *entities.TourPackage {
	t.Helper()

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
	require.NoError(t, repository.NewPackagesRepo(db).Create(context.Background(), pkg))

	return pkg
}

func createEvent(t *testing.T) *entities.TourEvent {
	t.Helper()

	evt := &entities.TourEvent{
		Name:      "Hornbill Festival",
		Location:  "Kohima",
		StartDate: time.Now().Add(30 * 24 * time.Hour).UTC(),
		Currency:  "INR",
		Active:    true,
	}
	require.NoError(t, repository.NewEventsRepo(db).Create(context.Background(), evt))

	return evt
}

func createAvailability(t *testing.T, target entities.BookingTarget, date entities.Date, total int) *entities.Availability {
	t.Helper()

	a := &entities.Availability{
		PackageID:  target.PackageID(),
		EventID:    target.EventID(),
		Date:       date,
		TotalSlots: total,
		Active:     true,
	}
	require.NoError(t, repository.NewAvailabilityRepo(db).Create(context.Background(), a))

	return a
}

// futureDate returns a distinct day per call so tests sharing a target never
// collide on the unique (target, date) index.
func futureDate(days int) entities.Date {
	return entities.NewDate(time.Now().AddDate(0, 0, days))
}
