package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const leadColumns = `id, first_name, last_name, email, phone, company, source, status, priority,
	interested_in, budget, travel_date, notes, assigned_to, converted_customer_id, created_at, updated_at`

const leadActivityColumns = `id, lead_id, activity_type, subject, description, outcome,
	scheduled_at, completed_at, created_by, created_at`

type LeadsRepo struct {
	conn
}

func NewLeadsRepo(db *sqlx.DB) *LeadsRepo {
	return &LeadsRepo{conn: newConn(db)}
}

func (r *LeadsRepo) List(ctx context.Context, f LeadFilter) ([]entities.Lead, error) {
	var w where
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}
	if f.Priority != "" {
		w.add("priority = ?", f.Priority)
	}
	if f.Source != "" {
		w.add("source = ?", f.Source)
	}
	if f.AssignedTo != "" {
		w.add("assigned_to = ?", f.AssignedTo)
	}
	if f.Search != "" {
		w.add("(email ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ? OR company ILIKE ?)",
			like(f.Search), like(f.Search), like(f.Search), like(f.Search))
	}

	query, args := w.query("SELECT "+leadColumns+" FROM leads", "ORDER BY created_at DESC")

	leads := []entities.Lead{}
	if err := r.tr(ctx).SelectContext(ctx, &leads, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return leads, nil
}

func (r *LeadsRepo) Get(ctx context.Context, id int64) (*entities.Lead, error) {
	var l entities.Lead
	err := r.tr(ctx).GetContext(ctx, &l, "SELECT "+leadColumns+" FROM leads WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "lead", id)
	}

	return &l, nil
}

func (r *LeadsRepo) Create(ctx context.Context, l *entities.Lead) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO leads (
			first_name, last_name, email, phone, company, source, status, priority,
			interested_in, budget, travel_date, notes, assigned_to
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, created_at, updated_at`,
		l.FirstName, l.LastName, l.Email, l.Phone, l.Company, l.Source, l.Status, l.Priority,
		l.InterestedIn, l.Budget, l.TravelDate, l.Notes, l.AssignedTo,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	return nil
}

func (r *LeadsRepo) Update(ctx context.Context, l *entities.Lead) error {
	err := r.tr(ctx).GetContext(ctx, l, `
		UPDATE leads SET
			first_name = $2, last_name = $3, email = $4, phone = $5, company = $6, source = $7,
			status = $8, priority = $9, interested_in = $10, budget = $11, travel_date = $12,
			notes = $13, assigned_to = $14, converted_customer_id = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING `+leadColumns,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.Company, l.Source,
		l.Status, l.Priority, l.InterestedIn, l.Budget, l.TravelDate,
		l.Notes, l.AssignedTo, l.ConvertedCustomerID,
	)
	if err != nil {
		return notFound(err, "lead", l.ID)
	}

	return nil
}

func (r *LeadsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM leads WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", id, err)
	}

	return mustAffect(res, "lead", id)
}

func (r *LeadsRepo) Activities(ctx context.Context, leadID int64) ([]entities.LeadActivity, error) {
	activities := []entities.LeadActivity{}
	err := r.tr(ctx).SelectContext(ctx, &activities,
		"SELECT "+leadActivityColumns+" FROM lead_activities WHERE lead_id = $1 ORDER BY created_at DESC", leadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities of lead %d: %w", leadID, err)
	}

	return activities, nil
}

func (r *LeadsRepo) AddActivity(ctx context.Context, a *entities.LeadActivity) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO lead_activities (
			lead_id, activity_type, subject, description, outcome, scheduled_at, completed_at, created_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		a.LeadID, a.ActivityType, a.Subject, a.Description, a.Outcome, a.ScheduledAt, a.CompletedAt, a.CreatedBy,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add activity to lead %d: %w", a.LeadID, err)
	}

	return nil
}
