package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the storefront tables when they do not exist yet.
// gen_random_uuid comes from pgcrypto, shipped with postgres 13+.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
			item_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(60) UNIQUE NOT NULL,
			description TEXT NOT NULL,
			category VARCHAR(50) NOT NULL,
			price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
			image_url TEXT NOT NULL,
			rating NUMERIC(3, 2),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_items_category ON items(category)`,
		`CREATE TABLE IF NOT EXISTS orders (
			order_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name VARCHAR(60) NOT NULL,
			hostel VARCHAR(80) NOT NULL,
			phone_number VARCHAR(15) NOT NULL,
			quantity INTEGER NOT NULL CHECK (quantity >= 1),
			product_id UUID NOT NULL REFERENCES items(item_id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`,
	}

	for _, statement := range statements {
		if _, err := db.ExecContext(ctx, statement); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}
