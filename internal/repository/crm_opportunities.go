package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const opportunityColumns = `id, customer_id, lead_id, title, description, value, stage, probability,
	expected_close_date, assigned_to, created_at, updated_at`

type OpportunitiesRepo struct {
	conn
}

func NewOpportunitiesRepo(db *sqlx.DB) *OpportunitiesRepo {
	return &OpportunitiesRepo{conn: newConn(db)}
}

func (r *OpportunitiesRepo) List(ctx context.Context, f OpportunityFilter) ([]entities.Opportunity, error) {
	var w where
	if f.Stage != "" {
		w.add("stage = ?", f.Stage)
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = ?", f.AssignedTo)
	}
	if f.CustomerID != nil {
		w.add("customer_id = ?", *f.CustomerID)
	}

	query, args := w.query("SELECT "+opportunityColumns+" FROM opportunities", "ORDER BY created_at DESC")

	opportunities := []entities.Opportunity{}
	if err := r.tr(ctx).SelectContext(ctx, &opportunities, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list opportunities: %w", err)
	}

	return opportunities, nil
}

func (r *OpportunitiesRepo) Get(ctx context.Context, id int64) (*entities.Opportunity, error) {
	var o entities.Opportunity
	err := r.tr(ctx).GetContext(ctx, &o, "SELECT "+opportunityColumns+" FROM opportunities WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "opportunity", id)
	}

	return &o, nil
}

func (r *OpportunitiesRepo) Create(ctx context.Context, o *entities.Opportunity) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO opportunities (
			customer_id, lead_id, title, description, value, stage, probability, expected_close_date, assigned_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at`,
		o.CustomerID, o.LeadID, o.Title, o.Description, o.Value, o.Stage, o.Probability, o.ExpectedCloseDate, o.AssignedTo,
	).Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}

	return nil
}

func (r *OpportunitiesRepo) Update(ctx context.Context, o *entities.Opportunity) error {
	err := r.tr(ctx).GetContext(ctx, o, `
		UPDATE opportunities SET
			customer_id = $2, lead_id = $3, title = $4, description = $5, value = $6, stage = $7,
			probability = $8, expected_close_date = $9, assigned_to = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING `+opportunityColumns,
		o.ID, o.CustomerID, o.LeadID, o.Title, o.Description, o.Value, o.Stage,
		o.Probability, o.ExpectedCloseDate, o.AssignedTo,
	)
	if err != nil {
		return notFound(err, "opportunity", o.ID)
	}

	return nil
}

func (r *OpportunitiesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM opportunities WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete opportunity %d: %w", id, err)
	}

	return mustAffect(res, "opportunity", id)
}
