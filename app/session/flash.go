package session

import (
	"net/http"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const (
	flashCookie = "flash"
	flashTTL    = 5 * time.Minute
)

// Flash is a one-shot message shown on the next rendered page.
// Category is one of "success", "error", "info".
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type flashClaims struct {
	Flash
	jwt.RegisteredClaims
}

// SetFlash queues a message for the next page render. The cookie is
// signed with the session secret so the banner cannot be forged.
func (m *Manager) SetFlash(w http.ResponseWriter, category, message string) {
	now := time.Now()
	claims := flashClaims{
		Flash: Flash{Category: category, Message: message},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(flashTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.Secret)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash reads and clears the pending message, if any. Cookies that
// fail signature verification are discarded.
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	token, err := jwt.ParseWithClaims(c.Value, &flashClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.Secret, nil
	})
	if err != nil {
		return nil
	}
	claims, ok := token.Claims.(*flashClaims)
	if !ok || !token.Valid {
		return nil
	}
	return &claims.Flash
}
