package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"bestlocations/internal/app/places"
	"bestlocations/internal/logging"
	"bestlocations/internal/models"
)

//go:embed templates
var templateFS embed.FS

const (
	pageHome        = "home"
	pagePlaceIndex  = "places/index"
	pagePlaceCreate = "places/create"
	pagePlaceEdit   = "places/edit"
	pagePlaceShow   = "places/show"
	pageError       = "error"
)

var pageNames = []string{pageHome, pagePlaceIndex, pagePlaceCreate, pagePlaceEdit, pagePlaceShow, pageError}

var templateFuncs = template.FuncMap{
	"formKey": formKey,
}

// renderer executes each page inside the shared layout.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		tmpl, err := template.New(name).Funcs(templateFuncs).ParseFS(templateFS,
			"templates/layout.html",
			"templates/form.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &renderer{pages: pages}, nil
}

type indexView struct {
	Places []models.Place
}

type placeView struct {
	Place models.Place
}

// formView backs the create and edit pages.
type formView struct {
	Place    models.Place
	Errors   map[string]string
	Messages []string
}

func newFormView(p models.Place, err error) formView {
	view := formView{Place: p, Errors: map[string]string{}}
	var verr *places.ValidationError
	if errors.As(err, &verr) {
		for _, fe := range verr.Errors {
			if _, seen := view.Errors[fe.Field]; !seen {
				view.Errors[fe.Field] = fe.Message
			}
			view.Messages = append(view.Messages, fe.Field+" "+fe.Message)
		}
	}
	return view
}

type errorView struct {
	Status  int
	Title   string
	Message string
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	tmpl, ok := s.pages.pages[page]
	if !ok {
		logging.WithContext(r.Context()).Error().Str("page", page).Msg("unknown page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.WithContext(r.Context()).Error().Err(err).Str("page", page).Msg("failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (s *Server) renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.render(w, r, status, pageError, errorView{
		Status:  status,
		Title:   http.StatusText(status),
		Message: message,
	})
}

// serverError logs err and renders a generic 500 page.
func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	logging.WithContext(r.Context()).Error().
		Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("request failed")
	s.renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}
