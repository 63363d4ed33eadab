package database

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/Notifuse/sitebuilder/config"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// GetConnectionPoolSettings returns connection pool settings from the config,
// falling back to smaller pools for the test environment
func GetConnectionPoolSettings(cfg *config.DatabaseConfig, environment string) (maxOpen, maxIdle int, maxLifetime time.Duration) {
	maxOpen, maxIdle, maxLifetime = cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLife

	if environment == "test" {
		return 10, 5, 2 * time.Minute
	}
	if maxOpen <= 0 {
		maxOpen = 25
	}
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	if maxLifetime <= 0 {
		maxLifetime = 20 * time.Minute
	}
	return maxOpen, maxIdle, maxLifetime
}

// GetSystemDSN returns the DSN for the application database
func GetSystemDSN(cfg *config.DatabaseConfig) string {
	return buildDSN(cfg, cfg.DBName)
}

// GetPostgresDSN returns the DSN for connecting to PostgreSQL server without specifying a database
func GetPostgresDSN(cfg *config.DatabaseConfig) string {
	return buildDSN(cfg, "postgres")
}

func buildDSN(cfg *config.DatabaseConfig, dbName string) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}

// EnsureDatabaseExists creates the application database if it doesn't exist
func EnsureDatabaseExists(dsn string, dbName string) error {
	// Connect to PostgreSQL server without specifying a database
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL server: %w", err)
	}
	defer db.Close()

	return ensureDatabase(db, dbName)
}

func ensureDatabase(db *sql.DB, dbName string) error {
	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping PostgreSQL server: %w", err)
	}

	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	if err := db.QueryRow(query, dbName).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check if database exists: %w", err)
	}

	if !exists {
		createDBQuery := fmt.Sprintf(`CREATE DATABASE "%s"`, strings.ReplaceAll(dbName, `"`, `""`))
		if _, err := db.Exec(createDBQuery); err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}
	}

	return nil
}
