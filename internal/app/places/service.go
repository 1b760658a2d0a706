package places

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"bestlocations/internal/models"
)

// Store defines persistence operations for places.
type Store interface {
	ListPlaces(ctx context.Context) ([]models.Place, error)
	GetPlace(ctx context.Context, id string) (models.Place, error)
	CreatePlace(ctx context.Context, in models.CreatePlaceInput) (models.Place, error)
	UpdatePlace(ctx context.Context, id string, in models.UpdatePlaceInput) error
	DeletePlace(ctx context.Context, id string) error
}

// Service coordinates place operations.
type Service interface {
	List(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id string) (models.Place, error)
	Create(ctx context.Context, in models.CreatePlaceInput) (models.Place, error)
	Update(ctx context.Context, id string, in models.UpdatePlaceInput) error
	Delete(ctx context.Context, id string) error
}

type service struct {
	store    Store
	validate *validator.Validate
}

// New constructs a places Service backed by the provided Store.
func New(store Store) Service {
	return &service{
		store:    store,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) List(ctx context.Context) ([]models.Place, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.ListPlaces(ctx)
}

func (s *service) Get(ctx context.Context, id string) (models.Place, error) {
	if err := ctx.Err(); err != nil {
		return models.Place{}, err
	}
	return s.store.GetPlace(ctx, id)
}

// Create trims and validates the input before storing it.
func (s *service) Create(ctx context.Context, in models.CreatePlaceInput) (models.Place, error) {
	if err := ctx.Err(); err != nil {
		return models.Place{}, err
	}

	in = models.CreatePlaceInput{
		Title:       strings.TrimSpace(in.Title),
		Price:       strings.TrimSpace(in.Price),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		Image:       strings.TrimSpace(in.Image),
	}
	if err := checkFields(s.validate, in.Fields()); err != nil {
		return models.Place{}, err
	}

	return s.store.CreatePlace(ctx, in)
}

// Update trims and validates the present fields before storing them.
func (s *service) Update(ctx context.Context, id string, in models.UpdatePlaceInput) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in = models.UpdatePlaceInput{
		Title:       trimmed(in.Title),
		Price:       trimmed(in.Price),
		Description: trimmed(in.Description),
		Location:    trimmed(in.Location),
		Image:       trimmed(in.Image),
	}
	if err := checkFields(s.validate, in.Fields()); err != nil {
		return err
	}

	return s.store.UpdatePlace(ctx, id, in)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.store.DeletePlace(ctx, id)
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
