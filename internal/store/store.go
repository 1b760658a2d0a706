package store

import (
	"context"
	"errors"

	"bestlocations/internal/models"
)

var (
	// ErrPlaceNotFound signals that an id does not resolve to a place,
	// including ids that are not valid for the backend.
	ErrPlaceNotFound = errors.New("place not found")
)

const placesCollection = "places"

// PlaceStore is implemented by every place backend.
type PlaceStore interface {
	ListPlaces(ctx context.Context) ([]models.Place, error)
	GetPlace(ctx context.Context, id string) (models.Place, error)
	CreatePlace(ctx context.Context, in models.CreatePlaceInput) (models.Place, error)
	UpdatePlace(ctx context.Context, id string, in models.UpdatePlaceInput) error
	DeletePlace(ctx context.Context, id string) error

	CountPlaces(ctx context.Context) (int64, error)
	ReplaceAllPlaces(ctx context.Context, places []models.CreatePlaceInput) error
}

var (
	_ PlaceStore = (*MongoStore)(nil)
	_ PlaceStore = (*PGStore)(nil)
	_ PlaceStore = (*MemoryStore)(nil)
)
