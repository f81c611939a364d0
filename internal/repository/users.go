package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"tours/internal/entities"
)

const userColumns = `id, email, password_hash, google_id, first_name, last_name, profile_image_url,
	phone, nationality, preferred_language, role, is_email_verified, created_at, updated_at`

type UsersRepo struct {
	conn
}

func NewUsersRepo(db *sqlx.DB) *UsersRepo {
	return &UsersRepo{conn: newConn(db)}
}

func (r *UsersRepo) Get(ctx context.Context, id string) (*entities.User, error) {
	var u entities.User
	err := r.tr(ctx).GetContext(ctx, &u, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
	if err != nil {
		return nil, notFound(err, "user", id)
	}

	return &u, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var u entities.User
	err := r.tr(ctx).GetContext(ctx, &u, "SELECT "+userColumns+" FROM users WHERE LOWER(email) = LOWER($1)", email)
	if err != nil {
		return nil, notFound(err, "user", email)
	}

	return &u, nil
}

func (r *UsersRepo) Create(ctx context.Context, u *entities.User) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		INSERT INTO users (
			id, email, password_hash, google_id, first_name, last_name, profile_image_url,
			phone, nationality, preferred_language, role, is_email_verified
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.GoogleID, u.FirstName, u.LastName, u.ProfileImageURL,
		u.Phone, u.Nationality, u.PreferredLanguage, u.Role, u.IsEmailVerified,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("user %s already exists: %w", u.Email, entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// Register inserts a password account. The first account of an installation is
// stored as admin whatever u.Role says, and u.Role is set to the stored role.
// The admin_bootstrap row can be claimed once, so concurrent first signups
// cannot both win.
func (r *UsersRepo) Register(ctx context.Context, u *entities.User) error {
	err := r.tr(ctx).QueryRowxContext(ctx, `
		WITH claim AS (
			INSERT INTO admin_bootstrap (id, user_id)
			SELECT 1, $1 WHERE NOT EXISTS (SELECT 1 FROM users)
			ON CONFLICT (id) DO NOTHING
			RETURNING id
		)
		INSERT INTO users (
			id, email, password_hash, google_id, first_name, last_name, profile_image_url,
			phone, nationality, preferred_language, role, is_email_verified
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			CASE WHEN EXISTS (SELECT 1 FROM claim) THEN $13 ELSE $11 END,
			$12
		)
		RETURNING role, created_at, updated_at`,
		u.ID, u.Email, u.PasswordHash, u.GoogleID, u.FirstName, u.LastName, u.ProfileImageURL,
		u.Phone, u.Nationality, u.PreferredLanguage, u.Role, u.IsEmailVerified, entities.RoleAdmin,
	).Scan(&u.Role, &u.CreatedAt, &u.UpdatedAt)
	if IsUniqueViolation(err) {
		return fmt.Errorf("user %s already exists: %w", u.Email, entities.ErrConflict)
	}
	if err != nil {
		return fmt.Errorf("failed to register user: %w", err)
	}

	return nil
}

// UpsertGoogleUser links a Google identity to the user with the same email, or
// creates one. The returned user carries its stored role.
func (r *UsersRepo) UpsertGoogleUser(ctx context.Context, u *entities.User) error {
	err := r.tr(ctx).GetContext(ctx, u, `
		INSERT INTO users (id, email, google_id, first_name, last_name, profile_image_url, role, is_email_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
		ON CONFLICT (email) DO UPDATE SET
			google_id = EXCLUDED.google_id,
			first_name = COALESCE(NULLIF(users.first_name, ''), EXCLUDED.first_name),
			last_name = COALESCE(NULLIF(users.last_name, ''), EXCLUDED.last_name),
			profile_image_url = EXCLUDED.profile_image_url,
			is_email_verified = TRUE,
			updated_at = NOW()
		RETURNING `+userColumns,
		u.ID, u.Email, u.GoogleID, u.FirstName, u.LastName, u.ProfileImageURL, entities.RoleUser,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert google user %s: %w", u.Email, err)
	}

	return nil
}

type SessionsRepo struct {
	conn
}

func NewSessionsRepo(db *sqlx.DB) *SessionsRepo {
	return &SessionsRepo{conn: newConn(db)}
}

func (r *SessionsRepo) Create(ctx context.Context, s entities.Session) error {
	_, err := r.tr(ctx).ExecContext(ctx,
		"INSERT INTO sessions (sid, user_id, expires_at) VALUES ($1, $2, $3)",
		s.SID, s.UserID, s.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Get returns an unexpired session.
func (r *SessionsRepo) Get(ctx context.Context, sid string) (*entities.Session, error) {
	var s entities.Session
	err := r.tr(ctx).GetContext(ctx, &s,
		"SELECT sid, user_id, expires_at FROM sessions WHERE sid = $1 AND expires_at > NOW()", sid)
	if err != nil {
		return nil, notFound(err, "session", "")
	}

	return &s, nil
}

func (r *SessionsRepo) Delete(ctx context.Context, sid string) error {
	_, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM sessions WHERE sid = $1", sid)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}

func (r *SessionsRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.tr(ctx).ExecContext(ctx, "DELETE FROM sessions WHERE expires_at <= $1", now)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}

	return res.RowsAffected()
}
