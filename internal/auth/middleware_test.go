package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tours/internal/auth"
	"tours/internal/auth/mocks"
	"tours/internal/entities"
)

type sessionsStub struct {
	sessions map[string]entities.Session
}

func (s *sessionsStub) Create(_ context.Context, session entities.Session) error {
	s.sessions[session.SID] = session
	return nil
}

func (s *sessionsStub) Get(_ context.Context, sid string) (*entities.Session, error) {
	session, ok := s.sessions[sid]
	if !ok {
		return nil, entities.ErrNotFound
	}
	return &session, nil
}

func (s *sessionsStub) Delete(_ context.Context, sid string) error {
	delete(s.sessions, sid)
	return nil
}

func (s *sessionsStub) DeleteExpired(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type authEnv struct {
	tokens   *auth.MemoryTokenStore
	sessions *auth.Sessions
	users    *mocks.MockUsersRepo
}

func newAuthEnv(t *testing.T) authEnv {
	return authEnv{
		tokens:   auth.NewMemoryTokenStore(time.Hour),
		sessions: auth.NewSessions(&sessionsStub{sessions: map[string]entities.Session{}}, time.Hour),
		users:    mocks.NewMockUsersRepo(gomock.NewController(t)),
	}
}

func (env authEnv) serve(req *http.Request, mw ...echo.MiddlewareFunc) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := func(c echo.Context) error {
		return c.String(http.StatusOK, auth.UserID(c))
	}
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	h = auth.Authenticate(env.tokens, env.sessions)(h)

	return rec, h(c)
}

func TestAuthenticate_bearer_token(t *testing.T) {
	env := newAuthEnv(t)
	token, _, err := env.tokens.Issue(context.Background(), "user-1")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec, err := env.serve(req, auth.RequireUser)
	require.NoError(t, err)
	assert.Equal(t, "user-1", rec.Body.String())
}

func TestAuthenticate_session_cookie(t *testing.T) {
	env := newAuthEnv(t)
	session, err := env.sessions.Create(context.Background(), "user-2")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: session.SID})

	rec, err := env.serve(req, auth.RequireUser)
	require.NoError(t, err)
	assert.Equal(t, "user-2", rec.Body.String())
}

func TestAuthenticate_falls_back_to_cookie_when_token_is_invalid(t *testing.T) {
	env := newAuthEnv(t)
	session, err := env.sessions.Create(context.Background(), "user-2")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer revoked")
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: session.SID})

	rec, err := env.serve(req, auth.RequireUser)
	require.NoError(t, err)
	assert.Equal(t, "user-2", rec.Body.String())
}

func TestRequireUser_anonymous(t *testing.T) {
	env := newAuthEnv(t)

	_, err := env.serve(httptest.NewRequest(http.MethodGet, "/", nil), auth.RequireUser)
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}

func TestRequireAdmin(t *testing.T) {
	env := newAuthEnv(t)
	ctx := context.Background()

	adminToken, _, err := env.tokens.Issue(ctx, "admin-1")
	require.NoError(t, err)
	userToken, _, err := env.tokens.Issue(ctx, "user-1")
	require.NoError(t, err)

	env.users.EXPECT().Get(gomock.Any(), "admin-1").Return(&entities.User{ID: "admin-1", Role: entities.RoleAdmin}, nil)
	env.users.EXPECT().Get(gomock.Any(), "user-1").Return(&entities.User{ID: "user-1", Role: entities.RoleUser}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+adminToken)
	rec, err := env.serve(req, auth.RequireAdmin(env.users))
	require.NoError(t, err)
	assert.Equal(t, "admin-1", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
	_, err = env.serve(req, auth.RequireAdmin(env.users))
	assert.ErrorIs(t, err, entities.ErrForbidden)

	_, err = env.serve(httptest.NewRequest(http.MethodGet, "/", nil), auth.RequireAdmin(env.users))
	assert.ErrorIs(t, err, entities.ErrUnauthorized)
}
