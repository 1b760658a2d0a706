package web

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"bestlocations/internal/http/middleware"
	"bestlocations/internal/models"
)

// PlaceService captures the place operations needed by the HTML handlers.
type PlaceService interface {
	List(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id string) (models.Place, error)
	Create(ctx context.Context, in models.CreatePlaceInput) (models.Place, error)
	Update(ctx context.Context, id string, in models.UpdatePlaceInput) error
	Delete(ctx context.Context, id string) error
}

// Server wires HTML handlers to the place service.
type Server struct {
	places PlaceService
	pages  *renderer
}

// New configures a Server and parses its templates.
func New(places PlaceService) (*Server, error) {
	pages, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}
	return &Server{places: places, pages: pages}, nil
}

// Routes exposes the site. /places/create is registered before
// /places/{id} so it is never treated as an id.
func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	r.HandleFunc("/", s.handleHome).Methods(http.MethodGet)

	r.HandleFunc("/places", s.handleListPlaces).Methods(http.MethodGet)
	r.HandleFunc("/places/create", s.handleNewPlace).Methods(http.MethodGet)
	r.HandleFunc("/places", s.handleCreatePlace).Methods(http.MethodPost)
	r.HandleFunc("/places/{id}/edit", s.handleEditPlace).Methods(http.MethodGet)
	r.HandleFunc("/places/{id}", s.handleShowPlace).Methods(http.MethodGet)
	r.HandleFunc("/places/{id}", s.handleUpdatePlace).Methods(http.MethodPut)
	r.HandleFunc("/places/{id}", s.handleDeletePlace).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(s.handleMethodNotAllowed)

	var handler http.Handler = r
	handler = middleware.MethodOverride()(handler)
	handler = middleware.Recovery()(handler)
	handler = middleware.RequestLogging()(handler)
	return handler
}
