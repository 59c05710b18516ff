package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express.
//
// The dedup index enforces the at-most-one-live-run invariant: two runs with
// the same (source, external_id) must not coexist while either is still
// actionable. Completed and failed runs fall out of the index so the same
// change request can be re-triggered after it terminates.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS crrun_source_external_id_live
		ON cr_runs (source, external_id)
		WHERE status NOT IN ('completed', 'failed') AND external_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create live-run dedup index: %w", err)
	}

	return nil
}
