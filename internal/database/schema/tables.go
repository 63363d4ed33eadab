// Package schema defines the database schema for development.
//
// DEVELOPMENT USE ONLY
// This file contains the current database schema and is used for development and testing.
// Before deploying to production, these table definitions should be converted to proper migrations.
package schema

// TableDefinitions contains all the SQL statements to create the database tables
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS pages (
		id UUID PRIMARY KEY,
		store_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(120) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL,
		UNIQUE (store_id, slug)
	)`,
	`CREATE TABLE IF NOT EXISTS elements (
		id UUID PRIMARY KEY,
		store_id VARCHAR(64) NOT NULL,
		page_id UUID NOT NULL,
		type VARCHAR(32) NOT NULL,
		position INTEGER NOT NULL DEFAULT 0,
		styles JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_elements_store_page ON elements (store_id, page_id, position)`,
}

// MigrationStatements upgrade tables created by earlier versions of TableDefinitions.
// They must be idempotent.
var MigrationStatements = []string{
	`ALTER TABLE elements ADD COLUMN IF NOT EXISTS position INTEGER NOT NULL DEFAULT 0`,
}
