package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"bestlocations/internal/models"
)

// ErrSchemaMissing indicates the places table has not been migrated.
var ErrSchemaMissing = errors.New("places table missing: run migrations")

const (
	listPlacesQuery = `
		SELECT id, doc
		FROM places
		ORDER BY seq ASC
	`
	getPlaceQuery = `
		SELECT id, doc
		FROM places
		WHERE id = $1
	`
	insertPlaceQuery = `
		INSERT INTO places (id, doc)
		VALUES ($1, $2::jsonb)
	`
	updatePlaceQuery = `
		UPDATE places
		SET doc = doc || $1::jsonb, updated_at = NOW()
		WHERE id = $2
	`
	deletePlaceQuery = `DELETE FROM places WHERE id = $1`

	deleteAllPlacesQuery = `DELETE FROM places`

	countPlacesQuery = `SELECT COUNT(*) FROM places`
)

// PGStore keeps each place as a JSONB document in Postgres.
type PGStore struct {
	db *sql.DB
}

// NewPGStore sets up a PGStore using the provided database handle.
func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

type placeJSON struct {
	Title       string `json:"title"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
}

func scanPlace(id string, raw []byte) (models.Place, error) {
	var doc placeJSON
	if err := json.Unmarshal(raw, &doc); err != nil {
		return models.Place{}, fmt.Errorf("decode place %s: %w", id, err)
	}
	return models.Place{
		ID:          id,
		Title:       doc.Title,
		Price:       doc.Price,
		Description: doc.Description,
		Location:    doc.Location,
		Image:       doc.Image,
	}, nil
}

// ListPlaces returns every place in insertion order.
func (s *PGStore) ListPlaces(ctx context.Context) ([]models.Place, error) {
	rows, err := s.db.QueryContext(ctx, listPlacesQuery)
	if err != nil {
		return nil, wrapPGError("select places", err)
	}
	defer rows.Close()

	places := []models.Place{}
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scan place: %w", err)
		}
		p, err := scanPlace(id, raw)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate places: %w", err)
	}

	return places, nil
}

// GetPlace retrieves a single place by UUID.
func (s *PGStore) GetPlace(ctx context.Context, id string) (models.Place, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return models.Place{}, ErrPlaceNotFound
	}

	var (
		gotID string
		raw   []byte
	)
	err = s.db.QueryRowContext(ctx, getPlaceQuery, parsed.String()).Scan(&gotID, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Place{}, ErrPlaceNotFound
	}
	if err != nil {
		return models.Place{}, wrapPGError("select place", err)
	}

	return scanPlace(gotID, raw)
}

// CreatePlace inserts a new place with a fresh UUID.
func (s *PGStore) CreatePlace(ctx context.Context, in models.CreatePlaceInput) (models.Place, error) {
	doc, err := json.Marshal(in.Fields())
	if err != nil {
		return models.Place{}, fmt.Errorf("encode place: %w", err)
	}

	id := uuid.New().String()
	if _, err := s.db.ExecContext(ctx, insertPlaceQuery, id, string(doc)); err != nil {
		return models.Place{}, wrapPGError("insert place", err)
	}

	p := in.Place()
	p.ID = id
	return p, nil
}

// UpdatePlace merges the present fields into the stored document. Unknown
// and malformed ids are ignored.
func (s *PGStore) UpdatePlace(ctx context.Context, id string, in models.UpdatePlaceInput) error {
	if in.IsEmpty() {
		return nil
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	patch, err := json.Marshal(in.Fields())
	if err != nil {
		return fmt.Errorf("encode place patch: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, updatePlaceQuery, string(patch), parsed.String()); err != nil {
		return wrapPGError("update place", err)
	}
	return nil
}

// DeletePlace removes a place. Unknown and malformed ids are ignored.
func (s *PGStore) DeletePlace(ctx context.Context, id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil
	}

	if _, err := s.db.ExecContext(ctx, deletePlaceQuery, parsed.String()); err != nil {
		return wrapPGError("delete place", err)
	}
	return nil
}

// CountPlaces returns the number of stored places.
func (s *PGStore) CountPlaces(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, countPlacesQuery).Scan(&n); err != nil {
		return 0, wrapPGError("count places", err)
	}
	return n, nil
}

// ReplaceAllPlaces empties the table and inserts places in one transaction.
func (s *PGStore) ReplaceAllPlaces(ctx context.Context, places []models.CreatePlaceInput) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if tx != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, deleteAllPlacesQuery); err != nil {
		return wrapPGError("delete places", err)
	}

	for _, in := range places {
		doc, err := json.Marshal(in.Fields())
		if err != nil {
			return fmt.Errorf("encode place %q: %w", in.Title, err)
		}
		if _, err := tx.ExecContext(ctx, insertPlaceQuery, uuid.New().String(), string(doc)); err != nil {
			return wrapPGError(fmt.Sprintf("insert place %q", in.Title), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	tx = nil

	return nil
}

func wrapPGError(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w", op, ErrSchemaMissing)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01"
	}
	return false
}
