package entities

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID                string    `db:"id" json:"id"`
	Email             string    `db:"email" json:"email"`
	PasswordHash      *string   `db:"password_hash" json:"-"`
	GoogleID          *string   `db:"google_id" json:"-"`
	FirstName         string    `db:"first_name" json:"firstName"`
	LastName          string    `db:"last_name" json:"lastName"`
	ProfileImageURL   string    `db:"profile_image_url" json:"profileImageUrl"`
	Phone             string    `db:"phone" json:"phone"`
	Nationality       string    `db:"nationality" json:"nationality"`
	PreferredLanguage string    `db:"preferred_language" json:"preferredLanguage"`
	Role              Role      `db:"role" json:"role"`
	IsEmailVerified   bool      `db:"is_email_verified" json:"isEmailVerified"`
	CreatedAt         time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time `db:"updated_at" json:"updatedAt"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type Session struct {
	SID       string    `db:"sid"`
	UserID    string    `db:"user_id"`
	ExpiresAt time.Time `db:"expires_at"`
}
