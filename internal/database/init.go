package database

import (
	"database/sql"
	"fmt"

	"github.com/Notifuse/sitebuilder/internal/database/schema"
)

// InitializeDatabase creates the tables and applies idempotent upgrades
func InitializeDatabase(db *sql.DB) error {
	for _, query := range schema.TableDefinitions {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	for _, query := range schema.MigrationStatements {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to run migration statement: %w", err)
		}
	}

	return nil
}
