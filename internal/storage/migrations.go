package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects.
const ExpectedSchemaVersion = 2

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS organizations (
					org_id TEXT NOT NULL,
					year INTEGER NOT NULL,
					name TEXT NOT NULL,
					name_kana TEXT,
					address TEXT,
					representative_name TEXT,
					treasurer_name TEXT,
					contact_name TEXT,
					contact_phone TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					PRIMARY KEY (org_id, year)
				)`,

				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY,
					org_id TEXT NOT NULL,
					year INTEGER NOT NULL,
					date DATETIME NOT NULL,
					type TEXT NOT NULL,
					category TEXT NOT NULL,
					debit_account TEXT,
					credit_account TEXT,
					debit_amount REAL NOT NULL DEFAULT 0,
					credit_amount REAL NOT NULL DEFAULT 0,
					label TEXT,
					description TEXT,
					memo TEXT,
					occupation TEXT,
					cost_item TEXT,
					journal_line_no INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_report
					ON transactions(org_id, year, category, date, id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("migration 1 failed: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Prior-year carryover balances",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`CREATE TABLE IF NOT EXISTS carryovers (
				org_id TEXT NOT NULL,
				year INTEGER NOT NULL,
				amount INTEGER NOT NULL DEFAULT 0,
				PRIMARY KEY (org_id, year)
			)`)
			if err != nil {
				return fmt.Errorf("migration 2 failed: %w", err)
			}
			return nil
		},
	},
}

// Migrate brings the database schema up to the expected version.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_versions (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return fmt.Errorf("failed to create schema_versions table: %w", err)
	}

	var current int
	err := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_versions`).Scan(&current)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= current {
			continue
		}

		slog.Info("Applying migration",
			"version", migration.Version,
			"description", migration.Description)

		err := s.execTx(ctx, func(tx *sql.Tx) error {
			if err := migration.Up(tx); err != nil {
				return err
			}
			_, err := tx.Exec(`INSERT INTO schema_versions (version) VALUES (?)`, migration.Version)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}
	}

	return nil
}
