package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tours/internal/entities"
)

//go:generate mockgen -destination=mocks/mock_users_repo.go -package=mocks tours/internal/auth UsersRepo
type UsersRepo interface {
	Get(ctx context.Context, id string) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Register(ctx context.Context, u *entities.User) error
	UpsertGoogleUser(ctx context.Context, u *entities.User) error
}

type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (r SignupRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 72)),
		validation.Field(&r.FirstName, validation.Length(0, 255)),
		validation.Field(&r.LastName, validation.Length(0, 255)),
	)
}

var errInvalidCredentials = fmt.Errorf("invalid credentials: %w", entities.ErrUnauthorized)

type Service struct {
	users UsersRepo
}

func NewService(users UsersRepo) *Service {
	return &Service{users: users}
}

func (s *Service) User(ctx context.Context, id string) (*entities.User, error) {
	return s.users.Get(ctx, id)
}

// Signup registers a password account. The first account of a fresh installation
// becomes the administrator.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*entities.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	hashed := string(hash)
	user := &entities.User{
		ID:                uuid.NewString(),
		Email:             req.Email,
		PasswordHash:      &hashed,
		FirstName:         strings.TrimSpace(req.FirstName),
		LastName:          strings.TrimSpace(req.LastName),
		PreferredLanguage: "en",
		Role:              entities.RoleUser,
	}
	if err := s.users.Register(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	// Google accounts have no password
	if user.PasswordHash == nil {
		return nil, errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, errInvalidCredentials
	}

	return user, nil
}

// GoogleLogin links the Google profile to the account with the same email, creating
// the account on first sign in.
func (s *Service) GoogleLogin(ctx context.Context, profile GoogleProfile) (*entities.User, error) {
	if profile.Email == "" || !profile.VerifiedEmail {
		return nil, fmt.Errorf("google account has no verified email: %w", entities.ErrUnauthorized)
	}

	googleID := profile.ID
	user := &entities.User{
		ID:              uuid.NewString(),
		Email:           strings.ToLower(profile.Email),
		GoogleID:        &googleID,
		FirstName:       profile.GivenName,
		LastName:        profile.FamilyName,
		ProfileImageURL: profile.Picture,
	}
	if err := s.users.UpsertGoogleUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
