package web

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"bestlocations/internal/app/places"
	"bestlocations/internal/models"
	"bestlocations/internal/store"
)

const placesPath = "/places"

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pageHome, nil)
}

func (s *Server) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	list, err := s.places.List(r.Context())
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	s.render(w, r, http.StatusOK, pagePlaceIndex, indexView{Places: list})
}

func (s *Server) handleNewPlace(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, pagePlaceCreate, newFormView(models.Place{}, nil))
}

func (s *Server) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	values, err := decodePlaceForm(r, true)
	if err == nil {
		_, err = s.places.Create(r.Context(), createInput(values))
	}

	switch {
	case err == nil:
		http.Redirect(w, r, placesPath, http.StatusFound)
	case places.IsValidationError(err):
		s.render(w, r, http.StatusBadRequest, pagePlaceCreate, newFormView(submitted(models.Place{}, values), err))
	default:
		s.serverError(w, r, err)
	}
}

func (s *Server) handleEditPlace(w http.ResponseWriter, r *http.Request) {
	place, ok := s.lookupPlace(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, pagePlaceEdit, newFormView(place, nil))
}

func (s *Server) handleShowPlace(w http.ResponseWriter, r *http.Request) {
	place, ok := s.lookupPlace(w, r)
	if !ok {
		return
	}
	s.render(w, r, http.StatusOK, pagePlaceShow, placeView{Place: place})
}

func (s *Server) handleUpdatePlace(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	values, err := decodePlaceForm(r, false)
	if err == nil {
		err = s.places.Update(r.Context(), id, updateInput(values))
	}

	switch {
	case err == nil:
		http.Redirect(w, r, placesPath, http.StatusFound)
	case places.IsValidationError(err):
		s.render(w, r, http.StatusBadRequest, pagePlaceEdit, newFormView(submitted(models.Place{ID: id}, values), err))
	default:
		s.serverError(w, r, err)
	}
}

func (s *Server) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	if err := s.places.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, placesPath, http.StatusFound)
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}

func (s *Server) handleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.renderError(w, r, http.StatusMethodNotAllowed, "That action is not supported here.")
}

// lookupPlace loads the place named by the {id} path variable. It writes
// the 404 or 500 page itself and reports false when nothing was found.
func (s *Server) lookupPlace(w http.ResponseWriter, r *http.Request) (models.Place, bool) {
	place, err := s.places.Get(r.Context(), mux.Vars(r)["id"])
	if errors.Is(err, store.ErrPlaceNotFound) {
		s.renderError(w, r, http.StatusNotFound, "That place could not be found.")
		return models.Place{}, false
	}
	if err != nil {
		s.serverError(w, r, err)
		return models.Place{}, false
	}
	return place, true
}

// submitted overlays the posted values on p for re-rendering a form.
func submitted(p models.Place, values map[string]string) models.Place {
	for field, value := range values {
		p.Set(field, value)
	}
	return p
}
