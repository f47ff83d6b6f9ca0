package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"gemini-portal/app/dto"
	"gemini-portal/app/middleware"
	"gemini-portal/app/sanitize"
	"gemini-portal/app/session"
	"gemini-portal/app/views"

	"github.com/rs/zerolog/log"
)

// Generator is the single operation the controllers need from the
// generative-text client.
type Generator interface {
	Generate(ctx context.Context, question string) (string, error)
}

type AskController struct {
	Gen      Generator
	Sessions *session.Manager
	Views    *views.Renderer
}

func NewAskController(gen Generator, sessions *session.Manager, v *views.Renderer) *AskController {
	return &AskController{Gen: gen, Sessions: sessions, Views: v}
}

// Ask handles the dashboard question form. Failures flash a generic
// message and return to the dashboard; the provider error stays in the
// server log.
func (c *AskController) Ask(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		c.Sessions.SetFlash(w, "error", "Please enter a question")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	question, ok := sanitize.Text(r.PostFormValue("question"))
	if !ok {
		c.Sessions.SetFlash(w, "error", "Please enter a question")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	answer, err := c.Gen.Generate(r.Context(), question)
	if err != nil {
		log.Error().Err(err).Msg("generate failed")
		c.Sessions.SetFlash(w, "error", "Sorry, I couldn't process your question. Please try again.")
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	claims := middleware.GetSession(r.Context())
	c.Views.Render(w, "dashboard", views.PageData{
		Title:    "Dashboard",
		Username: claims.Username,
		Question: question,
		Answer:   answer,
	})
}

// AskAPI is the JSON variant of Ask.
func (c *AskController) AskAPI(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "method not allowed"})
		return
	}
	var req dto.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Question is required"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Question is required"})
		return
	}
	question, ok := sanitize.Text(req.Question)
	if !ok {
		writeJSON(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Question is required"})
		return
	}
	answer, err := c.Gen.Generate(r.Context(), question)
	if err != nil {
		log.Error().Err(err).Msg("generate failed")
		writeJSON(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Sorry, I couldn't process your question. Please try again."})
		return
	}
	writeJSON(w, http.StatusOK, dto.AskResponse{Success: true, Question: question, Answer: answer})
}
