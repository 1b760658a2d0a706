package store

import (
	"context"
	"fmt"

	"bestlocations/internal/config"
	"bestlocations/internal/database"
)

// CloseFunc releases the resources held by an opened store.
type CloseFunc func(context.Context) error

// Open connects the backend selected by cfg and returns a ready store.
func Open(ctx context.Context, cfg config.StoreConfig) (PlaceStore, CloseFunc, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		client, db, err := database.OpenMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			return nil, nil, err
		}
		return NewMongoStore(db), client.Disconnect, nil

	case config.BackendPostgres:
		db, err := database.OpenPostgres(ctx, cfg.Database.URL)
		if err != nil {
			return nil, nil, err
		}
		return NewPGStore(db), func(context.Context) error { return db.Close() }, nil

	case config.BackendMemory:
		return NewMemoryStore(), func(context.Context) error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Backend)
	}
}
