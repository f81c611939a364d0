package services

import (
	"context"
	"strings"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"tours/internal/entities"
	"tours/internal/repository"
)

//go:generate mockgen -destination=mocks/mock_contact_queries_repo.go -package=mocks tours/internal/application/services ContactQueriesRepo
type ContactQueriesRepo interface {
	Create(ctx context.Context, q *entities.ContactQuery) error
	Get(ctx context.Context, id int64) (*entities.ContactQuery, error)
	List(ctx context.Context, f repository.ContactQueryFilter) ([]entities.ContactQuery, error)
	Update(ctx context.Context, q *entities.ContactQuery) error
	Delete(ctx context.Context, id int64) error
}

//go:generate mockgen -destination=mocks/mock_event_publisher.go -package=mocks tours/internal/application/services EventPublisher
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

type ContactService struct {
	queries   ContactQueriesRepo
	publisher EventPublisher
}

func NewContactService(queries ContactQueriesRepo, publisher EventPublisher) *ContactService {
	return &ContactService{
		queries:   queries,
		publisher: publisher,
	}
}

// Create stores the query and announces it for the notification emails. Only the
// insert can fail the call; a lost announcement is logged.
func (s *ContactService) Create(ctx context.Context, q *entities.ContactQuery) error {
	q.Name = strings.TrimSpace(q.Name)
	q.Email = strings.TrimSpace(q.Email)
	q.Status = entities.QueryNew
	if q.Priority == "" {
		q.Priority = entities.PriorityNormal
	}

	err := validation.ValidateStruct(q,
		validation.Field(&q.Name, validation.Required, validation.Length(1, 255)),
		validation.Field(&q.Email, validation.Required, is.EmailFormat),
		validation.Field(&q.Phone, validation.Length(0, 50)),
		validation.Field(&q.Subject, validation.Required, validation.Length(1, 255)),
		validation.Field(&q.Message, validation.Required, validation.Length(1, 5000)),
		validation.Field(&q.Priority, validation.In(entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent)),
	)
	if err != nil {
		return err
	}

	if err := s.queries.Create(ctx, q); err != nil {
		return err
	}

	err = s.publisher.Publish(ctx, entities.ContactQueryCreated_v1{
		Header:    entities.NewEventHeader(),
		QueryID:   q.ID,
		Name:      q.Name,
		Email:     q.Email,
		Phone:     q.Phone,
		Subject:   q.Subject,
		Message:   q.Message,
		CreatedAt: q.CreatedAt,
	})
	if err != nil {
		log.FromContext(ctx).WithError(err).WithField("query_id", q.ID).Error("Failed to publish ContactQueryCreated_v1")
	}

	return nil
}

func (s *ContactService) List(ctx context.Context, f repository.ContactQueryFilter) ([]entities.ContactQuery, error) {
	return s.queries.List(ctx, f)
}

func (s *ContactService) Get(ctx context.Context, id int64) (*entities.ContactQuery, error) {
	return s.queries.Get(ctx, id)
}

func (s *ContactService) Update(ctx context.Context, q *entities.ContactQuery) error {
	err := validation.ValidateStruct(q,
		validation.Field(&q.Status, validation.Required, validation.In(entities.QueryNew, entities.QueryInProgress, entities.QueryResolved, entities.QueryClosed)),
		validation.Field(&q.Priority, validation.Required, validation.In(entities.PriorityLow, entities.PriorityNormal, entities.PriorityHigh, entities.PriorityUrgent)),
	)
	if err != nil {
		return err
	}

	return s.queries.Update(ctx, q)
}

func (s *ContactService) Delete(ctx context.Context, id int64) error {
	return s.queries.Delete(ctx, id)
}
