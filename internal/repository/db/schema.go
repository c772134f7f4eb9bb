package db

import (
	"database/sql"
	"fmt"
)

const schemaACState = `
CREATE TABLE IF NOT EXISTS ac_state (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    config TEXT NOT NULL,
    op_mode TEXT NOT NULL,
    fan_mode TEXT NOT NULL,
    swing_mode TEXT NOT NULL,
    temperature TEXT NOT NULL,
    device TEXT,
    updated_at TIMESTAMP NOT NULL
);
`

const schemaLearningEvents = `
CREATE TABLE IF NOT EXISTS learning_events (
    id TEXT PRIMARY KEY,
    occurred_at TIMESTAMP NOT NULL,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    meta TEXT
);
`

const indexLearningEvents = `
CREATE INDEX IF NOT EXISTS idx_learning_events_occurred_at ON learning_events (occurred_at);
`

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL,
    configs TEXT NOT NULL DEFAULT '[]'
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range []string{
		schemaACState,
		schemaLearningEvents,
		indexLearningEvents,
		schemaUsers,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}
