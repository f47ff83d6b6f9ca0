package controllers

import (
	"net/http"

	"gemini-portal/app/dto"
	"gemini-portal/app/services"
	"gemini-portal/app/session"
	"gemini-portal/app/views"

	"github.com/rs/zerolog/log"
)

type UsersController struct {
	Users    *services.UserService
	Sessions *session.Manager
	Views    *views.Renderer
}

func NewUsersController(users *services.UserService, sessions *session.Manager, v *views.Renderer) *UsersController {
	return &UsersController{Users: users, Sessions: sessions, Views: v}
}

// Page renders the full account listing, most recent first.
func (c *UsersController) Page(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List()
	if err != nil {
		log.Error().Err(err).Msg("list users failed")
		c.Sessions.SetFlash(w, "error", "An error occurred. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	c.Views.Render(w, "users", views.PageData{Title: "Users", Username: currentUsername(r), Users: users})
}

// API returns the same listing as JSON.
func (c *UsersController) API(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.List()
	if err != nil {
		log.Error().Err(err).Msg("list users failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "An error occurred. Please try again."})
		return
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{ID: u.ID, Username: u.Username, CreatedAt: u.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}
