package testutils

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
)

// appTables lists every application table, children first.
var appTables = []string{"scorecard_uploads", "shots", "holes", "rounds", "practice_sessions"}

// TruncateTables empties the given tables in one statement.
func TruncateTables(ctx context.Context, db bun.IDB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf("%q", table)
	}
	query := fmt.Sprintf("TRUNCATE TABLE %s CASCADE", strings.Join(quoted, ", "))
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CleanAllIntegrationTables truncates all tables for complete isolation between tests
func CleanAllIntegrationTables(ctx context.Context, db bun.IDB) error {
	return TruncateTables(ctx, db, appTables...)
}
