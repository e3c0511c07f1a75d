package repositories

import (
	"context"
	"database/sql"
)

var schemas = map[string][]string{
	DriverMySQL: {
		`CREATE TABLE IF NOT EXISTS listings (
			seq BIGINT AUTO_INCREMENT PRIMARY KEY,
			id VARCHAR(36) NOT NULL UNIQUE,
			address VARCHAR(255) NOT NULL DEFAULT '',
			bedrooms VARCHAR(32) NOT NULL DEFAULT '',
			bathrooms VARCHAR(32) NOT NULL DEFAULT '',
			living_area VARCHAR(64) NOT NULL DEFAULT '',
			lot_area VARCHAR(64) NOT NULL DEFAULT '',
			year_built VARCHAR(16) NOT NULL DEFAULT '',
			property_type VARCHAR(32) NOT NULL DEFAULT '',
			price VARCHAR(64) NOT NULL DEFAULT '',
			listing_dates VARCHAR(128) NOT NULL DEFAULT '',
			description TEXT,
			photos TEXT,
			status VARCHAR(16) NOT NULL DEFAULT '',
			cart TEXT,
			last_updated VARCHAR(64) NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			listing_id VARCHAR(36) NOT NULL,
			addons TEXT NOT NULL,
			quote TEXT NOT NULL,
			status VARCHAR(16) NOT NULL,
			confirmation_code VARCHAR(16) NOT NULL,
			boost TEXT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NULL,
			INDEX idx_orders_listing (listing_id)
		)`,
	},
	DriverPostgres: {
		`CREATE TABLE IF NOT EXISTS listings (
			seq BIGSERIAL PRIMARY KEY,
			id VARCHAR(36) NOT NULL UNIQUE,
			address VARCHAR(255) NOT NULL DEFAULT '',
			bedrooms VARCHAR(32) NOT NULL DEFAULT '',
			bathrooms VARCHAR(32) NOT NULL DEFAULT '',
			living_area VARCHAR(64) NOT NULL DEFAULT '',
			lot_area VARCHAR(64) NOT NULL DEFAULT '',
			year_built VARCHAR(16) NOT NULL DEFAULT '',
			property_type VARCHAR(32) NOT NULL DEFAULT '',
			price VARCHAR(64) NOT NULL DEFAULT '',
			listing_dates VARCHAR(128) NOT NULL DEFAULT '',
			description TEXT,
			photos TEXT,
			status VARCHAR(16) NOT NULL DEFAULT '',
			cart TEXT,
			last_updated VARCHAR(64) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id VARCHAR(36) PRIMARY KEY,
			listing_id VARCHAR(36) NOT NULL,
			addons TEXT NOT NULL,
			quote TEXT NOT NULL,
			status VARCHAR(16) NOT NULL,
			confirmation_code VARCHAR(16) NOT NULL,
			boost TEXT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			updated_at TIMESTAMPTZ NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_listing ON orders (listing_id)`,
	},
}

// EnsureSchema creates the listings and orders tables when missing.
func EnsureSchema(ctx context.Context, db *sql.DB, driver string) error {
	for _, stmt := range schemas[driver] {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
