package roundmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rounds, holes and shots tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rounds (
					id UUID PRIMARY KEY,
					user_id UUID NOT NULL,
					course_name VARCHAR(100) NOT NULL,
					holes_played SMALLINT CHECK (holes_played BETWEEN 0 AND 18),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_rounds_user_created ON rounds(user_id, created_at DESC);
			`); err != nil {
				return fmt.Errorf("failed to create rounds table: %w", err)
			}

			// No unique index on (round_id, number): renumbering shifts rows
			// inside one UPDATE in no particular order.
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS holes (
					id UUID PRIMARY KEY,
					round_id UUID NOT NULL REFERENCES rounds(id) ON DELETE CASCADE,
					user_id UUID NOT NULL,
					number SMALLINT NOT NULL CHECK (number BETWEEN 1 AND 18),
					par SMALLINT NOT NULL CHECK (par BETWEEN 2 AND 6),
					score SMALLINT CHECK (score BETWEEN 1 AND 20),
					mental_scorecard SMALLINT CHECK (mental_scorecard BETWEEN 1 AND 20),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_holes_round_number ON holes(round_id, number);
				CREATE INDEX IF NOT EXISTS idx_holes_user ON holes(user_id);
			`); err != nil {
				return fmt.Errorf("failed to create holes table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS shots (
					id UUID PRIMARY KEY,
					hole_id UUID NOT NULL REFERENCES holes(id) ON DELETE CASCADE,
					user_id UUID NOT NULL,
					number SMALLINT NOT NULL CHECK (number >= 1),
					start_distance INTEGER NOT NULL CHECK (start_distance >= 1),
					lie VARCHAR(10) NOT NULL,
					category VARCHAR(20),
					strokes_gained DOUBLE PRECISION NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_shots_hole_number ON shots(hole_id, number);
			`); err != nil {
				return fmt.Errorf("failed to create shots table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS scorecard_uploads (
					id UUID PRIMARY KEY,
					user_id UUID NOT NULL,
					course_name VARCHAR(100) NOT NULL,
					filename VARCHAR(255) NOT NULL,
					payload JSONB NOT NULL,
					round_id UUID REFERENCES rounds(id) ON DELETE SET NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
			`); err != nil {
				return fmt.Errorf("failed to create scorecard_uploads table: %w", err)
			}

			fmt.Println("Round tables created successfully!")
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping round tables...")
		if _, err := db.ExecContext(ctx, `
			DROP TABLE IF EXISTS scorecard_uploads;
			DROP TABLE IF EXISTS shots;
			DROP TABLE IF EXISTS holes;
			DROP TABLE IF EXISTS rounds;
		`); err != nil {
			return fmt.Errorf("failed to drop round tables: %w", err)
		}
		return nil
	})
}
