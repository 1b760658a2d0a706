package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// retryPolicy bounds how long to wait for a database to come up.
type retryPolicy struct {
	pingTimeout    time.Duration
	maxWait        time.Duration
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

var defaultRetry = retryPolicy{
	pingTimeout:    5 * time.Second,
	maxWait:        30 * time.Second,
	initialBackoff: 500 * time.Millisecond,
	maxBackoff:     5 * time.Second,
}

// OpenPostgres establishes a Postgres connection and retries until the
// instance responds.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := waitFor(ctx, defaultRetry, db.PingContext); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// OpenMongo connects to MongoDB and retries until the primary responds.
// The caller owns the returned client and must Disconnect it.
func OpenMongo(ctx context.Context, uri, name string) (*mongo.Client, *mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongo: %w", err)
	}

	ping := func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
	if err := waitFor(ctx, defaultRetry, ping); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, client.Database(name), nil
}

// waitFor calls ping with exponential backoff until it succeeds, ctx is
// cancelled, or the policy's maxWait elapses.
func waitFor(ctx context.Context, p retryPolicy, ping func(context.Context) error) error {
	deadline := time.Now().Add(p.maxWait)
	backoff := p.initialBackoff
	var lastErr error

	for {
		pingCtx, cancel := context.WithTimeout(ctx, p.pingTimeout)
		lastErr = ping(pingCtx)
		cancel()

		if lastErr == nil {
			return nil
		}

		// Respect caller cancellation.
		if ctx.Err() != nil {
			break
		}

		if time.Now().After(deadline) {
			break
		}

		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(backoff):
		}
		backoff *= 2
		if backoff > p.maxBackoff {
			backoff = p.maxBackoff
		}
	}

	return lastErr
}
