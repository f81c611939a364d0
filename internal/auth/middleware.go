package auth

import (
	"errors"
	"strings"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"

	"tours/internal/entities"
)

const (
	principalKey = "auth.principal"
	userKey      = "auth.user"
)

// Principal is the caller identified by a bearer token or a session cookie.
type Principal struct {
	UserID    string
	Token     string
	SessionID string
}

// Authenticate resolves the caller from the bearer token first, then from the
// session cookie. Anonymous requests pass through.
func Authenticate(tokens TokenStore, sessions *Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			if token := bearerToken(c); token != "" {
				userID, err := tokens.Validate(ctx, token)
				if err == nil {
					c.Set(principalKey, Principal{UserID: userID, Token: token})
					return next(c)
				}
				if !errors.Is(err, entities.ErrUnauthorized) {
					log.FromContext(ctx).WithError(err).Warn("Token validation failed")
				}
			}

			if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
				userID, err := sessions.Lookup(ctx, cookie.Value)
				if err == nil {
					c.Set(principalKey, Principal{UserID: userID, SessionID: cookie.Value})
					return next(c)
				}
				if !errors.Is(err, entities.ErrUnauthorized) {
					log.FromContext(ctx).WithError(err).Warn("Session lookup failed")
				}
			}

			return next(c)
		}
	}
}

func RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := PrincipalFrom(c); !ok {
			return entities.ErrUnauthorized
		}
		return next(c)
	}
}

// RequireAdmin reloads the caller on every request so that a revoked role takes
// effect immediately.
func RequireAdmin(users UsersRepo) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return entities.ErrUnauthorized
			}

			user, err := users.Get(c.Request().Context(), p.UserID)
			if errors.Is(err, entities.ErrNotFound) {
				return entities.ErrUnauthorized
			}
			if err != nil {
				return err
			}
			if !user.IsAdmin() {
				return entities.ErrForbidden
			}

			c.Set(userKey, user)
			return next(c)
		}
	}
}

func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

func UserID(c echo.Context) string {
	p, _ := PrincipalFrom(c)
	return p.UserID
}

// AdminFrom returns the user loaded by RequireAdmin.
func AdminFrom(c echo.Context) *entities.User {
	u, _ := c.Get(userKey).(*entities.User)
	return u
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}
