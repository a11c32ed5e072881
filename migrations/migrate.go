package migrations

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS public.carbon_credits (
		id TEXT PRIMARY KEY,
		project_name TEXT NOT NULL,
		supplier TEXT NOT NULL,
		credit_type TEXT NOT NULL,
		vintage INTEGER NOT NULL,
		quantity_available INTEGER NOT NULL CHECK (quantity_available >= 0),
		price_per_ton DOUBLE PRECISION NOT NULL,
		location TEXT NOT NULL,
		verification_status TEXT NOT NULL,
		methodology TEXT NOT NULL,
		public_details TEXT NOT NULL,
		private_details TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT current_timestamp
	)`,
	`CREATE TABLE IF NOT EXISTS public.transactions (
		id TEXT PRIMARY KEY,
		credit_id TEXT NOT NULL REFERENCES public.carbon_credits (id),
		buyer_id TEXT NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0),
		price_per_ton DOUBLE PRECISION NOT NULL,
		transaction_date TEXT NOT NULL,
		transaction_hash TEXT NOT NULL,
		status TEXT NOT NULL
	)`,
}

// Apply creates the marketplace tables when they do not exist yet.
func Apply(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
