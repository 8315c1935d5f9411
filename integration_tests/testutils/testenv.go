package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/Black-And-White-Club/birdie-buddy/config"
	"github.com/Black-And-White-Club/birdie-buddy/db/bundb"
	"github.com/Black-And-White-Club/birdie-buddy/integration_tests/containers"
)

// TestEnvironment holds the Postgres container shared by a test binary.
type TestEnvironment struct {
	Ctx         context.Context
	PgContainer *postgres.PostgresContainer
	DB          *bun.DB
	Logger      *slog.Logger
}

var (
	sharedOnce sync.Once
	sharedEnv  *TestEnvironment
	sharedErr  error
)

// GetOrCreateTestEnv returns the shared environment with empty tables. It
// skips the test in -short mode.
func GetOrCreateTestEnv(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	sharedOnce.Do(func() {
		sharedEnv, sharedErr = newTestEnvironment(context.Background())
	})
	if sharedErr != nil {
		t.Fatalf("failed to set up test environment: %v", sharedErr)
	}
	if err := CleanAllIntegrationTables(sharedEnv.Ctx, sharedEnv.DB); err != nil {
		t.Fatalf("failed to clean tables: %v", err)
	}
	return sharedEnv
}

func newTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx, containers.DefaultPostgres)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	db, err := bundb.NewBunDB(ctx, config.PostgresConfig{DSN: connStr}, logger)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}
	if err := bundb.MigrateAll(ctx, db, logger); err != nil {
		_ = db.Close()
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &TestEnvironment{
		Ctx:         ctx,
		PgContainer: pgContainer,
		DB:          db,
		Logger:      logger,
	}, nil
}

// Shutdown closes the shared environment if one was created. Call it from
// TestMain after m.Run.
func Shutdown() {
	if sharedEnv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	_ = sharedEnv.DB.Close()
	_ = sharedEnv.PgContainer.Terminate(ctx)
}
