package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

type TranslationsRepo struct {
	conn
}

func NewTranslationsRepo(db *sqlx.DB) *TranslationsRepo {
	return &TranslationsRepo{conn: newConn(db)}
}

func (r *TranslationsRepo) List(ctx context.Context, entityType string, entityID int64, language string) ([]entities.Translation, error) {
	var w where
	w.add("entity_type = ?", entityType)
	w.add("entity_id = ?", entityID)
	if language != "" {
		w.add("language = ?", language)
	}

	query, args := w.query(`SELECT id, entity_type, entity_id, language, field, value, created_at, updated_at FROM translations`, "ORDER BY language, field")

	translations := []entities.Translation{}
	if err := r.tr(ctx).SelectContext(ctx, &translations, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list translations: %w", err)
	}

	return translations, nil
}

// Upsert stores one translated field, replacing an earlier value for the same
// entity, language and field.
func (r *TranslationsRepo) Upsert(ctx context.Context, t *entities.Translation) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO translations (entity_type, entity_id, language, field, value)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (entity_type, entity_id, language, field)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, created_at, updated_at`,
		t.EntityType, t.EntityID, t.Language, t.Field, t.Value,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save translation: %w", err)
	}

	return nil
}
