package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"bestlocations/internal/models"
)

// MemoryStore keeps places in process memory. Data is lost on restart.
type MemoryStore struct {
	mu     sync.RWMutex
	places map[string]models.Place
	order  []string
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{places: make(map[string]models.Place)}
}

// ListPlaces returns every place in insertion order.
func (s *MemoryStore) ListPlaces(_ context.Context) ([]models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Place, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.places[id])
	}
	return result, nil
}

// GetPlace returns a place by id.
func (s *MemoryStore) GetPlace(_ context.Context, id string) (models.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.places[id]
	if !ok {
		return models.Place{}, ErrPlaceNotFound
	}
	return p, nil
}

// CreatePlace stores a new place under a fresh UUID.
func (s *MemoryStore) CreatePlace(_ context.Context, in models.CreatePlaceInput) (models.Place, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(in), nil
}

// UpdatePlace overwrites the present fields. Unknown ids are ignored.
func (s *MemoryStore) UpdatePlace(_ context.Context, id string, in models.UpdatePlaceInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.places[id]
	if !ok {
		return nil
	}
	in.Apply(&p)
	s.places[id] = p
	return nil
}

// DeletePlace removes a place. Unknown ids are ignored.
func (s *MemoryStore) DeletePlace(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return nil
	}
	delete(s.places, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// CountPlaces returns the number of stored places.
func (s *MemoryStore) CountPlaces(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.places)), nil
}

// ReplaceAllPlaces discards every place and stores places instead.
func (s *MemoryStore) ReplaceAllPlaces(_ context.Context, places []models.CreatePlaceInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.places = make(map[string]models.Place, len(places))
	s.order = nil
	for _, in := range places {
		s.insertLocked(in)
	}
	return nil
}

func (s *MemoryStore) insertLocked(in models.CreatePlaceInput) models.Place {
	p := in.Place()
	p.ID = uuid.NewString()
	s.places[p.ID] = p
	s.order = append(s.order, p.ID)
	return p
}
