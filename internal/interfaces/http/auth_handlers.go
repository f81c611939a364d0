package http

import (
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tours/internal/auth"
	"tours/internal/entities"
)

const oauthStateCookie = "tours.oauth_state"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Message   string         `json:"message,omitempty"`
	User      *entities.User `json:"user"`
	Token     string         `json:"token,omitempty"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
}

type TokenResponse struct {
	Success   bool           `json:"success"`
	Token     string         `json:"token,omitempty"`
	ExpiresAt *time.Time     `json:"expiresAt,omitempty"`
	User      *entities.User `json:"user,omitempty"`
	Message   string         `json:"message"`
}

func (s *Server) SignupHandler(c echo.Context) error {
	var request auth.SignupRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	user, err := s.svc.Auth.Signup(c.Request().Context(), request)
	if err != nil {
		return err
	}

	resp, err := s.startSession(c, user)
	if err != nil {
		return err
	}
	resp.Message = "Account created"

	return c.JSON(http.StatusCreated, resp)
}

func (s *Server) LoginHandler(c echo.Context) error {
	var request LoginRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	user, err := s.svc.Auth.Login(c.Request().Context(), request.Email, request.Password)
	if err != nil {
		return err
	}

	resp, err := s.startSession(c, user)
	if err != nil {
		return err
	}
	resp.Message = "Logged in"

	return c.JSON(http.StatusOK, resp)
}

func (s *Server) LogoutHandler(c echo.Context) error {
	ctx := c.Request().Context()

	p, ok := auth.PrincipalFrom(c)
	if ok && p.Token != "" {
		if err := s.svc.Tokens.Revoke(ctx, p.Token); err != nil {
			return err
		}
	}
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie.Value != "" {
		if err := s.svc.Sessions.Destroy(ctx, cookie.Value); err != nil {
			return err
		}
	}

	s.clearCookie(c, auth.SessionCookie)

	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (s *Server) CurrentUserHandler(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, user)
}

func (s *Server) AdminCheckHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"isAdmin": true,
		"user":    auth.AdminFrom(c),
	})
}

func (s *Server) IssueTokenHandler(c echo.Context) error {
	user, err := s.currentUser(c)
	if err != nil {
		return err
	}

	token, expiresAt, err := s.svc.Tokens.Issue(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Success:   true,
		Token:     token,
		ExpiresAt: &expiresAt,
		User:      user,
		Message:   "Token generated successfully",
	})
}

func (s *Server) VerifyTokenHandler(c echo.Context) error {
	p, ok := auth.PrincipalFrom(c)
	if !ok || p.Token == "" {
		return c.JSON(http.StatusUnauthorized, TokenResponse{Message: "No valid token provided"})
	}

	user, err := s.svc.Auth.User(c.Request().Context(), p.UserID)
	if errors.Is(err, entities.ErrNotFound) {
		return c.JSON(http.StatusUnauthorized, TokenResponse{Message: "Invalid token"})
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, TokenResponse{
		Success: true,
		User:    user,
		Message: "Token is valid",
	})
}

func (s *Server) GoogleLoginHandler(c echo.Context) error {
	if s.svc.Google == nil || !s.svc.Google.Enabled() {
		return echo.NewHTTPError(http.StatusNotFound, "Google login is not configured")
	}

	state := uuid.NewString()
	c.SetCookie(&http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	return c.Redirect(http.StatusFound, s.svc.Google.AuthCodeURL(state))
}

func (s *Server) GoogleCallbackHandler(c echo.Context) error {
	ctx := c.Request().Context()
	logger := log.FromContext(ctx)

	if s.svc.Google == nil || !s.svc.Google.Enabled() {
		return echo.NewHTTPError(http.StatusNotFound, "Google login is not configured")
	}

	cookie, err := c.Cookie(oauthStateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != c.QueryParam("state") {
		logger.Warn("Google callback with mismatched state")
		return c.Redirect(http.StatusFound, s.frontendRedirect("error", ""))
	}
	s.clearCookie(c, oauthStateCookie)

	profile, err := s.svc.Google.Profile(ctx, c.QueryParam("code"))
	if err != nil {
		logger.WithError(err).Warn("Google profile exchange failed")
		return c.Redirect(http.StatusFound, s.frontendRedirect("error", ""))
	}

	user, err := s.svc.Auth.GoogleLogin(ctx, profile)
	if err != nil {
		logger.WithError(err).Warn("Google login rejected")
		return c.Redirect(http.StatusFound, s.frontendRedirect("error", ""))
	}

	resp, err := s.startSession(c, user)
	if err != nil {
		logger.WithError(err).Error("Could not start session after Google login")
		return c.Redirect(http.StatusFound, s.frontendRedirect("error", ""))
	}

	return c.Redirect(http.StatusFound, s.frontendRedirect("success", resp.Token))
}

// startSession sets the session cookie and issues a bearer token for clients
// that cannot rely on third party cookies.
func (s *Server) startSession(c echo.Context, user *entities.User) (AuthResponse, error) {
	ctx := c.Request().Context()

	session, err := s.svc.Sessions.Create(ctx, user.ID)
	if err != nil {
		return AuthResponse{}, err
	}
	c.SetCookie(&http.Cookie{
		Name:     auth.SessionCookie,
		Value:    session.SID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	token, expiresAt, err := s.svc.Tokens.Issue(ctx, user.ID)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{User: user, Token: token, ExpiresAt: &expiresAt}, nil
}

func (s *Server) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) currentUser(c echo.Context) (*entities.User, error) {
	user, err := s.svc.Auth.User(c.Request().Context(), auth.UserID(c))
	if errors.Is(err, entities.ErrNotFound) {
		return nil, entities.ErrUnauthorized
	}
	return user, err
}

func (s *Server) isAdmin(c echo.Context) (bool, error) {
	user, err := s.currentUser(c)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *Server) frontendRedirect(result, token string) string {
	q := url.Values{}
	q.Set("auth", result)
	if token != "" {
		q.Set("token", token)
	}
	return s.opts.FrontendURL + "?" + q.Encode()
}
