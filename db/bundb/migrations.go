package bundb

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	practicemigrations "github.com/Black-And-White-Club/birdie-buddy/app/modules/practice/infrastructure/repositories/migrations"
	roundmigrations "github.com/Black-And-White-Club/birdie-buddy/app/modules/round/infrastructure/repositories/migrations"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// ModuleMigrator pairs a module with its migrator. Each module keeps its
// history in its own bun_migrations_<module> table.
type ModuleMigrator struct {
	Module string
	*migrate.Migrator
}

var moduleMigrations = map[string]*migrate.Migrations{
	"round":    roundmigrations.Migrations,
	"practice": practicemigrations.Migrations,
}

// Migrators returns one migrator per module, sorted by module name.
func Migrators(db *bun.DB) []ModuleMigrator {
	out := make([]ModuleMigrator, 0, len(moduleMigrations))
	for name, ms := range moduleMigrations {
		out = append(out, ModuleMigrator{
			Module: name,
			Migrator: migrate.NewMigrator(db, ms,
				migrate.WithTableName("bun_migrations_"+name),
				migrate.WithLocksTableName("bun_migration_locks_"+name),
			),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Module < out[j].Module })
	return out
}

// MigrateAll initializes and applies every module's pending migrations.
func MigrateAll(ctx context.Context, db *bun.DB, logger *slog.Logger) error {
	for _, m := range Migrators(db) {
		if err := m.Init(ctx); err != nil {
			return fmt.Errorf("module %s: failed to init migrations: %w", m.Module, err)
		}
		group, err := m.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("module %s: failed to migrate: %w", m.Module, err)
		}
		if group.IsZero() {
			logger.InfoContext(ctx, "No new migrations", slog.String("module", m.Module))
			continue
		}
		logger.InfoContext(ctx, "Applied migrations",
			slog.String("module", m.Module),
			slog.String("group", group.String()),
		)
	}
	return nil
}
