package practicemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating practice_sessions table...")

		if _, err := db.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS practice_sessions (
				id UUID PRIMARY KEY,
				user_id UUID NOT NULL,
				practice_type CHAR(2) NOT NULL DEFAULT 'FS' CHECK (practice_type IN ('FS', 'SG', 'PT')),
				outcome SMALLINT NOT NULL DEFAULT 2 CHECK (outcome BETWEEN 1 AND 4),
				notes TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
			);
			CREATE INDEX IF NOT EXISTS idx_practice_sessions_user_created ON practice_sessions(user_id, created_at DESC);
		`); err != nil {
			return fmt.Errorf("failed to create practice_sessions table: %w", err)
		}

		fmt.Println("Practice sessions table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping practice_sessions table...")
		if _, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS practice_sessions`); err != nil {
			return fmt.Errorf("failed to drop practice_sessions table: %w", err)
		}
		return nil
	})
}
