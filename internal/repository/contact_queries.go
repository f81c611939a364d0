package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const contactQueryColumns = `id, name, email, phone, subject, message, status, priority,
	assigned_to, response, responded_at, created_at, updated_at`

type ContactQueriesRepo struct {
	conn
}

func NewContactQueriesRepo(db *sqlx.DB) *ContactQueriesRepo {
	return &ContactQueriesRepo{conn: newConn(db)}
}

func (r *ContactQueriesRepo) Create(ctx context.Context, q *entities.ContactQuery) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO contact_queries (name, email, phone, subject, message, status, priority)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		q.Name, q.Email, q.Phone, q.Subject, q.Message, q.Status, q.Priority,
	).Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact query: %w", err)
	}

	return nil
}

func (r *ContactQueriesRepo) Get(ctx context.Context, id int64) (*entities.ContactQuery, error) {
	var q entities.ContactQuery
	err := r.tr(ctx).GetContext(ctx, &q, "SELECT "+contactQueryColumns+" FROM contact_queries WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "contact query", id)
	}

	return &q, nil
}

func (r *ContactQueriesRepo) List(ctx context.Context, f ContactQueryFilter) ([]entities.ContactQuery, error) {
	var w where
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Priority != "" {
		w.add("priority = ?", f.Priority)
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = ?", f.AssignedTo)
	}

	query, args := w.query("SELECT "+contactQueryColumns+" FROM contact_queries", "ORDER BY created_at DESC")

	queries := []entities.ContactQuery{}
	if err := r.tr(ctx).SelectContext(ctx, &queries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list contact queries: %w", err)
	}

	return queries, nil
}

// Update saves the admin-editable fields. A first response stamps responded_at.
func (r *ContactQueriesRepo) Update(ctx context.Context, q *entities.ContactQuery) error {
	err := r.tr(ctx).GetContext(ctx, q, `
		UPDATE contact_queries SET
			status = $2, priority = $3, assigned_to = $4, response = $5,
			responded_at = CASE WHEN $5::text IS NOT NULL AND responded_at IS NULL THEN NOW() ELSE responded_at END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+contactQueryColumns,
		q.ID, q.Status, q.Priority, q.AssignedTo, q.Response,
	)
	if err != nil {
		return notFound(err, "contact query", q.ID)
	}

	return nil
}

func (r *ContactQueriesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM contact_queries WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete contact query %d: %w", id, err)
	}

	return mustAffect(res, "contact query", id)
}
