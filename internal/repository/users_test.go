package repository_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"tours/internal/entities"
	"tours/internal/repository"
)

// freshDB creates an empty database on the test server, so tests that depend on
// the users table being empty do not see rows of other tests.
func freshDB(t *testing.T) *sqlx.DB {
	t.Helper()

	name := "tours_" + uuid.NewString()[:8]
	_, err := db.Exec("CREATE DATABASE " + name)
	require.NoError(t, err)

	u, err := url.Parse(dbURL)
	require.NoError(t, err)
	u.Path = "/" + name

	fresh, err := connect(u.String())
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = fresh.Close()
		_, _ = db.Exec("DROP DATABASE IF EXISTS " + name)
	})

	require.NoError(t, repository.InitializeDBSchema(fresh))

	return fresh
}

func signupUser() *entities.User {
	id := uuid.NewString()
	return &entities.User{
		ID:                id,
		Email:             id + "@example.com",
		FirstName:         "Asha",
		PreferredLanguage: "en",
		Role:              entities.RoleUser,
	}
}

func TestUsersRepo_Register_first_account_is_admin(t *testing.T) {
	ctx := context.Background()
	users := repository.NewUsersRepo(freshDB(t))

	first := signupUser()
	require.NoError(t, users.Register(ctx, first))
	assert.Equal(t, entities.RoleAdmin, first.Role)

	second := signupUser()
	require.NoError(t, users.Register(ctx, second))
	assert.Equal(t, entities.RoleUser, second.Role)

	stored, err := users.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsAdmin())

	dup := signupUser()
	dup.Email = second.Email
	assert.ErrorIs(t, users.Register(ctx, dup), entities.ErrConflict)
}

func TestUsersRepo_Register_concurrent_first_signups(t *testing.T) {
	ctx := context.Background()
	fresh := freshDB(t)
	users := repository.NewUsersRepo(fresh)

	var g errgroup.Group
	for i := 0; i < 20; i++ {
		g.Go(func() error {
			return users.Register(ctx, signupUser())
		})
	}
	require.NoError(t, g.Wait())

	var admins int
	require.NoError(t, fresh.GetContext(ctx, &admins, `SELECT COUNT(*) FROM users WHERE role = 'admin'`))
	assert.Equal(t, 1, admins)
}

func TestUsersRepo_Register_existing_installation(t *testing.T) {
	ctx := context.Background()

	// the shared database already holds users from other tests
	createUser(t)

	u := signupUser()
	require.NoError(t, repository.NewUsersRepo(db).Register(ctx, u))
	assert.Equal(t, entities.RoleUser, u.Role)
}
