package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const emailTemplateColumns = `id, name, subject, content, category, variables, active, created_at, updated_at`

const emailCampaignColumns = `id, name, subject, content, template_id, target_audience, status,
	scheduled_at, sent_at, sent_count, failed_count, created_by, created_at, updated_at`

type EmailTemplatesRepo struct {
	conn
}

func NewEmailTemplatesRepo(db *sqlx.DB) *EmailTemplatesRepo {
	return &EmailTemplatesRepo{conn: newConn(db)}
}

func (r *EmailTemplatesRepo) List(ctx context.Context, f EmailTemplateFilter) ([]entities.EmailTemplate, error) {
	var w where
	if f.Category != "" {
		w.add("category = ?", f.Category)
	}
	if f.Active != nil {
		w.add("active = ?", *f.Active)
	}

	query, args := w.query("SELECT "+emailTemplateColumns+" FROM email_templates", "ORDER BY name")

	templates := []entities.EmailTemplate{}
	if err := r.tr(ctx).SelectContext(ctx, &templates, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}

	return templates, nil
}

func (r *EmailTemplatesRepo) Get(ctx context.Context, id int64) (*entities.EmailTemplate, error) {
	var t entities.EmailTemplate
	err := r.tr(ctx).GetContext(ctx, &t, "SELECT "+emailTemplateColumns+" FROM email_templates WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "email template", id)
	}

	return &t, nil
}

func (r *EmailTemplatesRepo) Create(ctx context.Context, t *entities.EmailTemplate) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO email_templates (name, subject, content, category, variables, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`,
		t.Name, t.Subject, t.Content, t.Category, t.Variables, t.Active,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create email template: %w", err)
	}

	return nil
}

func (r *EmailTemplatesRepo) Update(ctx context.Context, t *entities.EmailTemplate) error {
	err := r.tr(ctx).GetContext(ctx, t, `
		UPDATE email_templates SET
			name = $2, subject = $3, content = $4, category = $5, variables = $6, active = $7,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+emailTemplateColumns,
		t.ID, t.Name, t.Subject, t.Content, t.Category, t.Variables, t.Active,
	)
	if err != nil {
		return notFound(err, "email template", t.ID)
	}

	return nil
}

func (r *EmailTemplatesRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM email_templates WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete email template %d: %w", id, err)
	}

	return mustAffect(res, "email template", id)
}

type EmailCampaignsRepo struct {
	conn
}

func NewEmailCampaignsRepo(db *sqlx.DB) *EmailCampaignsRepo {
	return &EmailCampaignsRepo{conn: newConn(db)}
}

func (r *EmailCampaignsRepo) List(ctx context.Context, f EmailCampaignFilter) ([]entities.EmailCampaign, error) {
	var w where
	if f.Status != "" {
		w.add("status = ?", f.Status)
	}

	query, args := w.query("SELECT "+emailCampaignColumns+" FROM email_campaigns", "ORDER BY created_at DESC")

	campaigns := []entities.EmailCampaign{}
	if err := r.tr(ctx).SelectContext(ctx, &campaigns, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list email campaigns: %w", err)
	}

	return campaigns, nil
}

func (r *EmailCampaignsRepo) Get(ctx context.Context, id int64) (*entities.EmailCampaign, error) {
	var c entities.EmailCampaign
	err := r.tr(ctx).GetContext(ctx, &c, "SELECT "+emailCampaignColumns+" FROM email_campaigns WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "email campaign", id)
	}

	return &c, nil
}

func (r *EmailCampaignsRepo) Create(ctx context.Context, c *entities.EmailCampaign) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO email_campaigns (name, subject, content, template_id, target_audience, status, scheduled_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, sent_count, failed_count, created_at, updated_at`,
		c.Name, c.Subject, c.Content, c.TemplateID, c.TargetAudience, c.Status, c.ScheduledAt, c.CreatedBy,
	).Scan(&c.ID, &c.SentCount, &c.FailedCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create email campaign: %w", err)
	}

	return nil
}

// Update edits a campaign that has not started sending.
func (r *EmailCampaignsRepo) Update(ctx context.Context, c *entities.EmailCampaign) error {
	err := r.tr(ctx).GetContext(ctx, c, `
		UPDATE email_campaigns SET
			name = $2, subject = $3, content = $4, template_id = $5, target_audience = $6,
			status = $7, scheduled_at = $8, updated_at = NOW()
		WHERE id = $1 AND status IN ('draft', 'scheduled')
		RETURNING `+emailCampaignColumns,
		c.ID, c.Name, c.Subject, c.Content, c.TemplateID, c.TargetAudience, c.Status, c.ScheduledAt,
	)
	if err != nil {
		return notFound(err, "editable email campaign", c.ID)
	}

	return nil
}

func (r *EmailCampaignsRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM email_campaigns WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete email campaign %d: %w", id, err)
	}

	return mustAffect(res, "email campaign", id)
}

// StartSending claims a draft or scheduled campaign and zeroes its counters. It
// returns false when the campaign was already claimed, which makes redelivered
// send commands harmless.
func (r *EmailCampaignsRepo) StartSending(ctx context.Context, id int64) (bool, error) {
	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE email_campaigns SET status = $2, sent_count = 0, failed_count = 0, updated_at = NOW()
		WHERE id = $1 AND status IN ($3, $4)`,
		id, entities.CampaignSending, entities.CampaignDraft, entities.CampaignScheduled,
	)
	if err != nil {
		return false, fmt.Errorf("failed to start campaign %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return n == 1, nil
}

// RecordDelivery counts one recipient of a campaign that is being sent.
func (r *EmailCampaignsRepo) RecordDelivery(ctx context.Context, id int64, delivered bool) error {
	column := "failed_count"
	if delivered {
		column = "sent_count"
	}

	res, err := r.tr(ctx).ExecContext(ctx, `
		UPDATE email_campaigns SET `+column+` = `+column+` + 1, updated_at = NOW()
		WHERE id = $1 AND status = $2`,
		id, entities.CampaignSending,
	)
	if err != nil {
		return fmt.Errorf("failed to record delivery for campaign %d: %w", id, err)
	}

	return mustAffect(res, "sending email campaign", id)
}

// FinishSending closes a campaign from the counters recorded while sending. A
// campaign where every delivery failed ends as failed. It returns the final
// counts.
func (r *EmailCampaignsRepo) FinishSending(ctx context.Context, id int64, at time.Time) (sent, failed int, err error) {
	err = r.tr(ctx).QueryRowxContext(ctx, `
		UPDATE email_campaigns
		SET status = CASE WHEN sent_count = 0 AND failed_count > 0 THEN $3 ELSE $4 END,
			sent_at = $2, updated_at = NOW()
		WHERE id = $1 AND status = $5
		RETURNING sent_count, failed_count`,
		id, at, entities.CampaignFailed, entities.CampaignSent, entities.CampaignSending,
	).Scan(&sent, &failed)
	if err != nil {
		return 0, 0, notFound(err, "sending email campaign", id)
	}

	return sent, failed, nil
}
