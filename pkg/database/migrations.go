package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient full-text search on propositions and transcripts.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_debates_proposition_gin
		ON debates USING gin(to_tsvector('english', proposition))`)
	if err != nil {
		return fmt.Errorf("failed to create proposition GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_utterances_content_gin
		ON utterances USING gin(to_tsvector('english', content))`)
	if err != nil {
		return fmt.Errorf("failed to create utterance content GIN index: %w", err)
	}

	return nil
}
