package auth_test

import (
	"context"
	"testing"

	"github.com/AlekSi/pointer"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tours/internal/auth"
	"tours/internal/auth/mocks"
	"tours/internal/entities"
)

func TestService_Signup(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	users.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		assert.Equal(t, entities.RoleUser, u.Role)
		return nil
	})

	svc := auth.NewService(users)
	user, err := svc.Signup(context.Background(), auth.SignupRequest{
		Email:     " Asha@Example.com",
		Password:  "correct horse",
		FirstName: "Asha",
	})
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, entities.RoleUser, user.Role)
	assert.NotEmpty(t, user.ID)
	require.NotNil(t, user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte("correct horse")))
}

func TestService_Signup_first_account_is_admin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	// the store decides who came first and reports the stored role
	users.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		u.Role = entities.RoleAdmin
		return nil
	})

	user, err := auth.NewService(users).Signup(context.Background(), auth.SignupRequest{
		Email:    "owner@example.com",
		Password: "long enough",
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestService_Signup_validation(t *testing.T) {
	ctrl := gomock.NewController(t)

	_, err := auth.NewService(mocks.NewMockUsersRepo(ctrl)).Signup(context.Background(), auth.SignupRequest{
		Email:    "nope",
		Password: "short",
	})

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "password")
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		user     *entities.User
		lookup   error
		password string
		wantErr  error
	}{
		{
			name:     "valid password",
			user:     &entities.User{ID: "u1", PasswordHash: pointer.ToString(string(hash))},
			password: "correct horse",
		},
		{
			name:     "wrong password",
			user:     &entities.User{ID: "u1", PasswordHash: pointer.ToString(string(hash))},
			password: "battery staple",
			wantErr:  entities.ErrUnauthorized,
		},
		{
			name:     "google account",
			user:     &entities.User{ID: "u1", GoogleID: pointer.ToString("g-1")},
			password: "anything",
			wantErr:  entities.ErrUnauthorized,
		},
		{
			name:     "unknown email",
			lookup:   entities.ErrNotFound,
			password: "anything",
			wantErr:  entities.ErrUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			users := mocks.NewMockUsersRepo(ctrl)
			users.EXPECT().GetByEmail(gomock.Any(), "asha@example.com").Return(tc.user, tc.lookup)

			user, err := auth.NewService(users).Login(context.Background(), "asha@example.com", tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
		})
	}
}

func TestService_GoogleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUsersRepo(ctrl)

	users.EXPECT().UpsertGoogleUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entities.User) error {
		assert.Equal(t, "ravi@example.com", u.Email)
		assert.Equal(t, "g-42", *u.GoogleID)
		u.Role = entities.RoleAdmin
		return nil
	})

	user, err := auth.NewService(users).GoogleLogin(context.Background(), auth.GoogleProfile{
		ID:            "g-42",
		Email:         "Ravi@example.com",
		VerifiedEmail: true,
		GivenName:     "Ravi",
	})
	require.NoError(t, err)
	assert.True(t, user.IsAdmin())

	_, err = auth.NewService(users).GoogleLogin(context.Background(), auth.GoogleProfile{ID: "g-43", Email: "x@example.com"})
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
