package migrations

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"ccx-marketplace/model"

	"github.com/jmoiron/sqlx"
)

// seedCredit mirrors the catalog file shape.
type seedCredit struct {
	ID                 string        `json:"id"`
	ProjectName        string        `json:"project_name"`
	Supplier           string        `json:"supplier"`
	CreditType         string        `json:"credit_type"`
	Vintage            int           `json:"vintage"`
	QuantityAvailable  int           `json:"quantity_available"`
	PricePerTon        float64       `json:"price_per_ton"`
	Location           string        `json:"location"`
	VerificationStatus string        `json:"verification_status"`
	Methodology        string        `json:"methodology"`
	PublicDetails      model.JSONMap `json:"public_details"`
	PrivateDetails     model.JSONMap `json:"private_details"`
}

// SeedIfEmpty loads the initial catalog from the given JSON file when the
// credit table holds no rows. A non-empty store is left untouched.
func SeedIfEmpty(ctx context.Context, db *sqlx.DB, path string) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM public.carbon_credits`); err != nil {
		return fmt.Errorf("count credits: %w", err)
	}
	if count > 0 {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var credits []seedCredit
	if err := json.Unmarshal(data, &credits); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const stmt = `
	INSERT INTO public.carbon_credits (
		id, project_name, supplier, credit_type, vintage, quantity_available,
		price_per_ton, location, verification_status, methodology,
		public_details, private_details
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, credit := range credits {
		if _, err := tx.ExecContext(ctx, stmt,
			credit.ID,
			credit.ProjectName,
			credit.Supplier,
			credit.CreditType,
			credit.Vintage,
			credit.QuantityAvailable,
			credit.PricePerTon,
			credit.Location,
			credit.VerificationStatus,
			credit.Methodology,
			credit.PublicDetails,
			credit.PrivateDetails,
		); err != nil {
			return fmt.Errorf("seed credit %s: %w", credit.ID, err)
		}
	}

	return tx.Commit()
}
