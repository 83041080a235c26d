package database_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Kirizan/kitt-sub000/pkg/database"
)

// newMigratedClient spins up a throwaway PostgreSQL container and connects
// through NewClient, which runs the embedded migrations. Unlike the shared
// test helper this exercises the production startup path.
func newMigratedClient(t *testing.T) (*database.Client, database.Config) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("kitt_test"),
		postgres.WithUsername("kitt"),
		postgres.WithPassword("kitt"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	cfg := database.Config{
		Host:         host,
		Port:         port.Int(),
		User:         "kitt",
		Password:     "kitt",
		Database:     "kitt_test",
		SSLMode:      "disable",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
	}

	client, err := database.NewClient(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client, cfg
}

func TestNewClientRunsMigrations(t *testing.T) {
	client, _ := newMigratedClient(t)
	ctx := context.Background()

	// Migrations must have created the ledger tables.
	for _, table := range []string{"agents", "campaigns", "planned_runs", "run_results", "stream_events"} {
		var exists bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`,
			table,
		).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist after migration", table)
	}
}

func TestNewClientMigrationsAreIdempotent(t *testing.T) {
	_, cfg := newMigratedClient(t)
	ctx := context.Background()

	// A second startup against the same database must be a no-op.
	second, err := database.NewClient(ctx, cfg)
	require.NoError(t, err)
	defer second.Close()

	require.NoError(t, second.DB().PingContext(ctx))
}

func TestHealthReportsPoolStats(t *testing.T) {
	client, _ := newMigratedClient(t)
	ctx := context.Background()

	health, err := database.Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, 10, health.MaxOpenConns)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "local ping should be well under a second")
}

func TestConfigDSN(t *testing.T) {
	cfg := database.Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "kitt",
		Password: "secret",
		Database: "kitt",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=kitt password=secret dbname=kitt sslmode=require",
		cfg.DSN())
}
