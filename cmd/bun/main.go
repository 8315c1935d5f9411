package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/Black-And-White-Club/birdie-buddy/config"
	"github.com/Black-And-White-Club/birdie-buddy/db/bundb"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"github.com/urfave/cli/v2"
)

func main() {
	var db *bun.DB

	app := &cli.App{
		Name:  "bun",
		Usage: "birdie-buddy database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Value: "config.yaml", Usage: "path to the configuration file"},
			&cli.StringSliceFlag{Name: "module", Usage: "limit to these modules (default: all)"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.LoadConfig(c.String("config"))
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			db, err = bundb.NewBunDB(c.Context, cfg.Postgres, logger)
			return err
		},
		After: func(c *cli.Context) error {
			if db != nil {
				return db.Close()
			}
			return nil
		},
		Commands: migrateCommands(func(c *cli.Context) []bundb.ModuleMigrator {
			return selected(bundb.Migrators(db), c.StringSlice("module"))
		}),
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func selected(all []bundb.ModuleMigrator, names []string) []bundb.ModuleMigrator {
	if len(names) == 0 {
		return all
	}
	var out []bundb.ModuleMigrator
	for _, m := range all {
		if slices.Contains(names, m.Module) {
			out = append(out, m)
		}
	}
	return out
}

// locked runs fn while holding the module's migration lock.
func locked(ctx context.Context, m bundb.ModuleMigrator, fn func() (*migrate.MigrationGroup, error)) (*migrate.MigrationGroup, error) {
	if err := m.Lock(ctx); err != nil {
		return nil, err
	}
	defer m.Unlock(ctx) //nolint:errcheck
	return fn()
}

func migrateCommands(migrators func(*cli.Context) []bundb.ModuleMigrator) []*cli.Command {
	each := func(fn func(c *cli.Context, m bundb.ModuleMigrator) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			ms := migrators(c)
			if len(ms) == 0 {
				return fmt.Errorf("no module matches %v", c.StringSlice("module"))
			}
			for _, m := range ms {
				if err := fn(c, m); err != nil {
					return fmt.Errorf("module %s: %w", m.Module, err)
				}
			}
			return nil
		}
	}
	// one resolves the single module named by the first argument.
	one := func(c *cli.Context) (bundb.ModuleMigrator, error) {
		name := c.Args().First()
		var names []string
		for _, m := range migrators(c) {
			if m.Module == name {
				return m, nil
			}
			names = append(names, m.Module)
		}
		return bundb.ModuleMigrator{}, fmt.Errorf("invalid module name %q (want one of %s)", name, strings.Join(names, ", "))
	}
	report := func(module, verb string, group *migrate.MigrationGroup) {
		if group.IsZero() {
			fmt.Printf("%s: nothing to %s\n", module, verb)
			return
		}
		fmt.Printf("%s: %s %s\n", module, verb, group)
	}

	return []*cli.Command{
		{
			Name:  "init",
			Usage: "create migration tables",
			Action: each(func(c *cli.Context, m bundb.ModuleMigrator) error {
				fmt.Printf("%s: initializing\n", m.Module)
				return m.Init(c.Context)
			}),
		},
		{
			Name:  "migrate",
			Usage: "apply pending migrations",
			Action: each(func(c *cli.Context, m bundb.ModuleMigrator) error {
				group, err := locked(c.Context, m, func() (*migrate.MigrationGroup, error) { return m.Migrate(c.Context) })
				if err != nil {
					return err
				}
				report(m.Module, "migrate", group)
				return nil
			}),
		},
		{
			Name:  "rollback",
			Usage: "roll back the last migration group",
			Action: each(func(c *cli.Context, m bundb.ModuleMigrator) error {
				group, err := locked(c.Context, m, func() (*migrate.MigrationGroup, error) { return m.Rollback(c.Context) })
				if err != nil {
					return err
				}
				report(m.Module, "roll back", group)
				return nil
			}),
		},
		{
			Name:      "create_go",
			Usage:     "create a Go migration",
			ArgsUsage: "<module> <name...>",
			Action: func(c *cli.Context) error {
				m, err := one(c)
				if err != nil {
					return err
				}
				mf, err := m.CreateGoMigration(c.Context, strings.Join(c.Args().Tail(), "_"))
				if err != nil {
					return err
				}
				fmt.Printf("%s: created %s (%s)\n", m.Module, mf.Name, mf.Path)
				return nil
			},
		},
		{
			Name:      "create_sql",
			Usage:     "create up and down SQL migrations",
			ArgsUsage: "<module> <name...>",
			Action: func(c *cli.Context) error {
				m, err := one(c)
				if err != nil {
					return err
				}
				files, err := m.CreateSQLMigrations(c.Context, strings.Join(c.Args().Tail(), "_"))
				if err != nil {
					return err
				}
				for _, mf := range files {
					fmt.Printf("%s: created %s (%s)\n", m.Module, mf.Name, mf.Path)
				}
				return nil
			},
		},
		{
			Name:  "status",
			Usage: "print migration status",
			Action: each(func(c *cli.Context, m bundb.ModuleMigrator) error {
				ms, err := m.MigrationsWithStatus(c.Context)
				if err != nil {
					return err
				}
				fmt.Printf("%s:\n  applied:   %s\n  unapplied: %s\n", m.Module, ms.Applied(), ms.Unapplied())
				return nil
			}),
		},
	}
}
