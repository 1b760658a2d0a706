package config

import (
	"os"
	"strings"
	"testing"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PLACES_STORE", "MONGO_URI", "MONGO_DB_NAME", "DATABASE_URL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"HOST", "PORT", "LOG_LEVEL", "LOG_FORMAT", "SEED_ON_START",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Store.Backend != BackendMongo {
		t.Fatalf("expected mongo backend, got %q", cfg.Store.Backend)
	}
	if cfg.Store.Mongo.URI != "mongodb://127.0.0.1:27017" || cfg.Store.Mongo.Database != "bestlocations" {
		t.Fatalf("unexpected mongo config: %+v", cfg.Store.Mongo)
	}
	if got := cfg.Server.Addr(); got != "0.0.0.0:3000" {
		t.Fatalf("expected 0.0.0.0:3000, got %q", got)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
	if cfg.SeedOnStart {
		t.Fatalf("expected SeedOnStart to default to false")
	}
}

func TestLoadPostgresFromParts(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PLACES_STORE", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "places")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bestlocations")
	t.Setenv("SEED_ON_START", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := "postgresql://places:secret@db:5432/bestlocations?sslmode=disable"
	if cfg.Store.Database.URL != want {
		t.Fatalf("expected %q, got %q", want, cfg.Store.Database.URL)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected SeedOnStart")
	}
}

func TestLoadValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "unknown backend",
			env:     map[string]string{"PLACES_STORE": "redis"},
			wantErr: "PLACES_STORE must be one of",
		},
		{
			name:    "postgres without url",
			env:     map[string]string{"PLACES_STORE": "postgres"},
			wantErr: "DATABASE_URL is required",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "trace"},
			wantErr: "LOG_LEVEL must be one of",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"PORT": "70000"},
			wantErr: "PORT must be between",
		},
		{
			name:    "port not a number",
			env:     map[string]string{"PORT": "http"},
			wantErr: "invalid PORT",
		},
		{
			name:    "bad seed flag",
			env:     map[string]string{"SEED_ON_START": "sometimes"},
			wantErr: "invalid SEED_ON_START",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			chdir(t, t.TempDir())
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLoadDatabaseRequiresURL(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	if _, err := LoadDatabase(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/places")
	db, err := LoadDatabase()
	if err != nil {
		t.Fatalf("LoadDatabase: %v", err)
	}
	if db.URL != "postgres://localhost/places" {
		t.Fatalf("unexpected url %q", db.URL)
	}
}
