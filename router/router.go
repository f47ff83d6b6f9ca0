package router

import (
	"net/http"

	"gemini-portal/app/controllers"
	"gemini-portal/app/middleware"
)

// New wires the HTTP surface. Browser routes are guarded with a
// redirect-to-login, API routes with a 401 JSON response.
func New(pages *controllers.PagesController, auth *controllers.AuthController, ask *controllers.AskController, users *controllers.UsersController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("/", pages.Index)
	mux.HandleFunc("/signup", auth.Signup)
	mux.HandleFunc("/login", auth.Login)
	mux.HandleFunc("/health", pages.Health)

	// logout clears whatever session cookie is present, valid or not
	mux.HandleFunc("/logout", auth.Logout)

	// session-guarded pages
	mux.Handle("/dashboard", mw.RequirePage(http.HandlerFunc(pages.Dashboard)))
	mux.Handle("/ask", mw.RequirePage(http.HandlerFunc(ask.Ask)))
	mux.Handle("/users", mw.RequirePage(http.HandlerFunc(users.Page)))

	// session-guarded API
	mux.Handle("/api/ask", mw.RequireJSON(http.HandlerFunc(ask.AskAPI)))
	mux.Handle("/api/users", mw.RequireJSON(http.HandlerFunc(users.API)))

	return middleware.Logging(mux)
}
