// Package testhelper starts a throwaway PostgreSQL for integration tests.
package testhelper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/notes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/notes-backend/internal/config"
)

const (
	image    = "postgres:17-alpine"
	user     = "notes"
	password = "notes"
	database = "notes_test"
)

// sharedDB is one migrated container per test binary.
var sharedDB struct {
	once sync.Once
	dsn  string
	err  error
}

// SetupTestDB returns a pool on a migrated PostgreSQL shared by the whole
// test run. The pool is closed via t.Cleanup; the container outlives it.
// Tests share the kv_items table, so each test must use its own partitions.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	sharedDB.once.Do(func() {
		sharedDB.dsn, sharedDB.err = startMigratedContainer()
	})
	if sharedDB.err != nil {
		t.Fatalf("testhelper: setup postgres: %v", sharedDB.err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.PostgresConfig{
		DSN:             sharedDB.dsn,
		MaxConns:        8,
		MinConns:        1,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: time.Minute,
	})
	if err != nil {
		t.Fatalf("testhelper: open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

// CountItems returns how many rows live under partition pk.
func CountItems(t *testing.T, pool *pgxpool.Pool, pk string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(), `SELECT count(*) FROM kv_items WHERE pk = $1`, pk).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: count items in %q: %v", pk, err)
	}
	return n
}

func startMigratedContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        image,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     user,
				"POSTGRES_PASSWORD": password,
				"POSTGRES_DB":       database,
			},
			// The server logs "ready" twice: once for the init pass, once for real.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "5432/tcp", "")
	if err != nil {
		return "", fmt.Errorf("container endpoint: %w", err)
	}
	dsn := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", user, password, endpoint, database)

	if err := postgres.Migrate(ctx, dsn, slog.New(slog.NewTextHandler(io.Discard, nil))); err != nil {
		return "", fmt.Errorf("migrate: %w", err)
	}

	return dsn, nil
}
