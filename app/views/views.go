package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"gemini-portal/app/models"
	"gemini-portal/app/session"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var files embed.FS

// PageData is the union of fields the page templates read. Unused fields
// stay zero for pages that do not need them.
type PageData struct {
	Title    string
	Username string
	Flash    *session.Flash
	Error    string
	Question string
	Answer   string
	Users    []models.User
}

type Renderer struct{ pages map[string]*template.Template }

func New() (*Renderer, error) {
	names := []string{"index", "signup", "login", "dashboard", "users"}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		t, err := template.ParseFS(files, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w http.ResponseWriter, name string, data PageData) {
	t, ok := r.pages[name]
	if !ok {
		log.Error().Str("template", name).Msg("unknown template")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}
