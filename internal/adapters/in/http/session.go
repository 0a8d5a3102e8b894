package http

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCookieName = "rental_session"
	adminContextKey   = "admin"
)

var ErrInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionManager issues and checks the signed admin session cookie.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewSessionManager(secret string, ttl time.Duration, secure bool) *SessionManager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl, secure: secure, now: time.Now}
}

func (m *SessionManager) Issue(subject string) (*http.Cookie, error) {
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(m.ttl),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Clear returns a cookie that removes the session from the browser.
func (m *SessionManager) Clear() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// Parse returns the subject of a valid, unexpired token.
func (m *SessionManager) Parse(token string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", errors.Join(ErrInvalidSession, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

func (m *SessionManager) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication required"})
			}
			subject, err := m.Parse(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "session expired or invalid"})
			}
			c.Set(adminContextKey, subject)
			return next(c)
		}
	}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/admin/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.cfg.AdminUsername)) == 1
	passErr := bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(req.Password))
	if !userOK || passErr != nil {
		s.logger.Warn().Str("username", req.Username).Msg("admin login rejected")
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid username or password"})
	}

	cookie, err := s.sessions.Issue(req.Username)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to issue session"})
	}
	c.SetCookie(cookie)
	return c.NoContent(http.StatusNoContent)
}

// Logout handles POST /api/admin/logout.
func (s *Server) Logout(c echo.Context) error {
	c.SetCookie(s.sessions.Clear())
	return c.NoContent(http.StatusNoContent)
}
