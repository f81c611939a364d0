package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const taskColumns = `id, title, description, task_type, priority, status, due_date, assigned_to,
	related_customer_id, related_lead_id, related_opportunity_id, completed_at, created_by,
	created_at, updated_at`

type TasksRepo struct {
	conn
}

func NewTasksRepo(db *sqlx.DB) *TasksRepo {
	return &TasksRepo{conn: newConn(db)}
}

func (r *TasksRepo) List(ctx context.Context, f TaskFilter) ([]entities.Task, error) {
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

	query, args := w.query("SELECT "+taskColumns+" FROM tasks", "ORDER BY due_date ASC NULLS LAST, created_at DESC")

	tasks := []entities.Task{}
	if err := r.tr(ctx).SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TasksRepo) Get(ctx context.Context, id int64) (*entities.Task, error) {
	var t entities.Task
	err := r.tr(ctx).GetContext(ctx, &t, "SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "task", id)
	}

	return &t, nil
}

func (r *TasksRepo) Create(ctx context.Context, t *entities.Task) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO tasks (
			title, description, task_type, priority, status, due_date, assigned_to,
			related_customer_id, related_lead_id, related_opportunity_id, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`,
		t.Title, t.Description, t.TaskType, t.Priority, t.Status, t.DueDate, t.AssignedTo,
		t.RelatedCustomerID, t.RelatedLeadID, t.RelatedOpportunityID, t.CreatedBy,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// Update saves a task; moving it to completed stamps completed_at once.
func (r *TasksRepo) Update(ctx context.Context, t *entities.Task) error {
	err := r.tr(ctx).GetContext(ctx, t, `
		UPDATE tasks SET
			title = $2, description = $3, task_type = $4, priority = $5, status = $6,
			due_date = $7, assigned_to = $8, related_customer_id = $9, related_lead_id = $10,
			related_opportunity_id = $11,
			completed_at = CASE WHEN $6 = 'completed' THEN COALESCE(completed_at, NOW()) ELSE NULL END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+taskColumns,
		t.ID, t.Title, t.Description, t.TaskType, t.Priority, t.Status,
		t.DueDate, t.AssignedTo, t.RelatedCustomerID, t.RelatedLeadID, t.RelatedOpportunityID,
	)
	if err != nil {
		return notFound(err, "task", t.ID)
	}

	return nil
}

func (r *TasksRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}

	return mustAffect(res, "task", id)
}
