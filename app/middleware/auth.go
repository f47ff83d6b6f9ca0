package middleware

import (
	"context"
	"net/http"

	"gemini-portal/app/session"
)

type Auth struct{ Sessions *session.Manager }

// RequirePage guards browser routes: without a valid session the user is
// flashed a login prompt and redirected to /login.
func (a *Auth) RequirePage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.Sessions.Current(r)
		if err != nil {
			a.Sessions.SetFlash(w, "error", "Please login to continue")
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireJSON guards API routes: without a valid session the response is
// a 401 JSON error and no data is written.
func (a *Auth) RequireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := a.Sessions.Current(r)
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":"Unauthorized"}`))
			return
		}
		ctx := context.WithValue(r.Context(), sessionKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
