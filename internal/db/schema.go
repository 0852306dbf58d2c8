package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

type Execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// schemaStatements creates the tables on first run and is a no-op afterwards.
// Question ids come from an identity column so a deleted id is never handed out again.
var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS trivia`,
	`CREATE TABLE IF NOT EXISTS trivia.categories (
		id INTEGER PRIMARY KEY,
		type TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trivia.questions (
		id INTEGER GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
		question TEXT NOT NULL CHECK (question <> ''),
		answer TEXT NOT NULL CHECK (answer <> ''),
		category INTEGER NOT NULL REFERENCES trivia.categories (id),
		difficulty INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_category ON trivia.questions (category)`,
}

func Migrate(ctx context.Context, db Execer) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i, err)
		}
	}
	return nil
}
