package controllers

import (
	"net/http"

	"gemini-portal/app/middleware"
	"gemini-portal/app/session"
	"gemini-portal/app/views"
)

type PagesController struct {
	Sessions *session.Manager
	Views    *views.Renderer
}

func NewPagesController(sessions *session.Manager, v *views.Renderer) *PagesController {
	return &PagesController{Sessions: sessions, Views: v}
}

// Index renders the landing page, or sends logged-in users straight to
// the dashboard.
func (c *PagesController) Index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, err := c.Sessions.Current(r); err == nil {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	c.Views.Render(w, "index", views.PageData{Title: "Welcome", Flash: c.Sessions.PopFlash(w, r)})
}

// Dashboard renders the question form for the authenticated user.
func (c *PagesController) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetSession(r.Context())
	c.Views.Render(w, "dashboard", views.PageData{
		Title:    "Dashboard",
		Username: claims.Username,
		Flash:    c.Sessions.PopFlash(w, r),
	})
}

// Health is the liveness endpoint.
func (c *PagesController) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
