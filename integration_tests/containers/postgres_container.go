package containers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresSettings describes the throwaway database the tests run against.
type PostgresSettings struct {
	Image    string
	Database string
	User     string
	Password string
	Startup  time.Duration
}

var DefaultPostgres = PostgresSettings{
	Image:    "postgres:16-alpine",
	Database: "birdie_test",
	User:     "birdie",
	Password: "birdie",
	Startup:  45 * time.Second,
}

// dsn builds the URL the readiness probe connects with.
func (s PostgresSettings) dsn(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		s.User, s.Password, host, port.Port(), s.Database)
}

// SetupPostgresContainer starts Postgres and waits until it accepts queries.
// It returns the container and a DSN with TLS disabled.
func SetupPostgresContainer(ctx context.Context, settings PostgresSettings) (*postgres.PostgresContainer, string, error) {
	pg, err := postgres.Run(ctx,
		settings.Image,
		postgres.WithDatabase(settings.Database),
		postgres.WithUsername(settings.User),
		postgres.WithPassword(settings.Password),
		testcontainers.WithWaitStrategy(
			wait.ForSQL("5432/tcp", "pgx", settings.dsn).WithStartupTimeout(settings.Startup),
		),
	)
	if err != nil {
		if pg != nil {
			_ = pg.Terminate(ctx)
		}
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = pg.Terminate(ctx)
		return nil, "", fmt.Errorf("failed to get postgres connection string: %w", err)
	}

	log.Printf("Postgres %s ready", settings.Image)
	return pg, dsn, nil
}
