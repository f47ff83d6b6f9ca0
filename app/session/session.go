package session

import (
	"errors"
	"net/http"
	"time"

	"gemini-portal/app/models"

	jwt "github.com/golang-jwt/jwt/v5"
)

const cookieName = "session"

// Claims is the session payload: the authenticated username and numeric
// user id, carried client-side in a signed cookie.
type Claims struct {
	Username string `json:"uname"`
	UserID   uint   `json:"uid"`
	jwt.RegisteredClaims
}

// Manager issues and verifies the HS256-signed session cookie. The
// cookie is tamper-evident but not encrypted, matching a framework
// signed-cookie session.
type Manager struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
}

func NewManager(secret []byte, issuer string, ttl time.Duration) *Manager {
	return &Manager{Secret: secret, Issuer: issuer, TTL: ttl}
}

// Issue writes a session cookie for the given account.
func (m *Manager) Issue(w http.ResponseWriter, u *models.User) error {
	now := time.Now()
	claims := Claims{
		Username: u.Username,
		UserID:   u.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.TTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.TTL.Seconds()),
	})
	return nil
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

// Current returns the session claims, or an error when the cookie is
// absent, expired, or fails signature verification.
func (m *Manager) Current(r *http.Request) (*Claims, error) {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return nil, err
	}
	token, err := jwt.ParseWithClaims(c.Value, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session")
	}
	return claims, nil
}
