package controllers

import (
	"errors"
	"net/http"

	"gemini-portal/app/dto"
	"gemini-portal/app/sanitize"
	"gemini-portal/app/services"
	"gemini-portal/app/session"
	"gemini-portal/app/views"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
	Views    *views.Renderer
}

func NewAuthController(users *services.UserService, sessions *session.Manager, v *views.Renderer) *AuthController {
	return &AuthController{Users: users, Sessions: sessions, Views: v}
}

// Signup serves the signup form and handles submissions.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.Views.Render(w, "signup", views.PageData{Title: "Sign up", Flash: c.Sessions.PopFlash(w, r)})
		return
	}
	if err := r.ParseForm(); err != nil {
		c.renderSignupError(w, "Username and password are required")
		return
	}
	username, ok := sanitize.Text(r.PostFormValue("username"))
	form := dto.SignupForm{Username: username, Password: r.PostFormValue("password")}
	if !ok || form.Password == "" {
		c.renderSignupError(w, "Username and password are required")
		return
	}
	if err := form.Validate(); err != nil {
		c.renderSignupError(w, signupValidationMessage(err))
		return
	}
	if _, err := c.Users.Register(form.Username, form.Password); err != nil {
		if errors.Is(err, services.ErrDuplicateUsername) {
			c.renderSignupError(w, "Username already exists!")
			return
		}
		log.Error().Err(err).Msg("signup failed")
		c.renderSignupError(w, "An error occurred. Please try again.")
		return
	}
	c.Sessions.SetFlash(w, "success", "Account created successfully! Please login.")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (c *AuthController) renderSignupError(w http.ResponseWriter, msg string) {
	c.Views.Render(w, "signup", views.PageData{Title: "Sign up", Error: msg})
}

func signupValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Field() == "Password" && fe.Tag() == "min" {
				return "Password must be at least 6 characters long"
			}
		}
	}
	return "Username and password are required"
}

// Login serves the login form and handles submissions.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		c.Views.Render(w, "login", views.PageData{Title: "Login", Flash: c.Sessions.PopFlash(w, r)})
		return
	}
	if err := r.ParseForm(); err != nil {
		c.renderLoginError(w, "Username and password are required")
		return
	}
	username, ok := sanitize.Text(r.PostFormValue("username"))
	form := dto.LoginForm{Username: username, Password: r.PostFormValue("password")}
	if !ok || form.Password == "" {
		c.renderLoginError(w, "Username and password are required")
		return
	}
	u, err := c.Users.Authenticate(form.Username, form.Password)
	if err != nil {
		// same message for unknown users and wrong passwords
		c.renderLoginError(w, "Invalid credentials!")
		return
	}
	if err := c.Sessions.Issue(w, u); err != nil {
		log.Error().Err(err).Msg("issue session failed")
		c.renderLoginError(w, "An error occurred. Please try again.")
		return
	}
	c.Sessions.SetFlash(w, "success", "Login successful!")
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *AuthController) renderLoginError(w http.ResponseWriter, msg string) {
	c.Views.Render(w, "login", views.PageData{Title: "Login", Error: msg})
}

// Logout clears the session and returns to the landing page.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	c.Sessions.Clear(w)
	c.Sessions.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
