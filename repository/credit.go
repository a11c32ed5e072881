package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"ccx-marketplace/model"
	"ccx-marketplace/util/errs"
	"ccx-marketplace/util/storage/sqldb/transactor"
)

// ErrQuantityConflict reports that a conditional decrement matched no row:
// the listing no longer holds the requested quantity.
var ErrQuantityConflict = errs.ConflictError("quantity_available changed concurrently")

type CreditRepository interface {
	FindAll(ctx context.Context) ([]model.CarbonCredit, error)
	TotalAvailable(ctx context.Context) (int, error)
	FindByID(ctx context.Context, id string) (*model.CarbonCredit, error)
	DecrementAvailability(ctx context.Context, id string, quantity int) error
}

type creditRepository struct {
	dbCtx transactor.DBTXContext
}

func NewCreditRepository(dbCtx transactor.DBTXContext) CreditRepository {
	return &creditRepository{
		dbCtx: dbCtx,
	}
}

const creditColumns = `
	id, project_name, supplier, credit_type, vintage, quantity_available,
	price_per_ton, location, verification_status, methodology,
	public_details, private_details, created_at, updated_at`

func (r *creditRepository) FindAll(ctx context.Context) ([]model.CarbonCredit, error) {
	query := `
	SELECT ` + creditColumns + `
	FROM public.carbon_credits
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	credits := []model.CarbonCredit{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &credits, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing credits: %w", err))
	}
	return credits, nil
}

func (r *creditRepository) TotalAvailable(ctx context.Context) (int, error) {
	query := `SELECT COALESCE(SUM(quantity_available), 0) FROM public.carbon_credits`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var total int
	if err := r.dbCtx(ctx).GetContext(ctx, &total, query); err != nil {
		return 0, errs.HandleDBError(fmt.Errorf("an error occurred while summing availability: %w", err))
	}
	return total, nil
}

func (r *creditRepository) FindByID(ctx context.Context, id string) (*model.CarbonCredit, error) {
	query := `
	SELECT ` + creditColumns + `
	FROM public.carbon_credits
	WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var credit model.CarbonCredit
	err := r.dbCtx(ctx).QueryRowxContext(ctx, query, id).StructScan(&credit)
	if err != nil {
		if err == sql.ErrNoRows {
			// Absence is a normal outcome; the caller decides what it means.
			return nil, nil
		}
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while finding a credit by id: %w", err))
	}
	return &credit, nil
}

func (r *creditRepository) DecrementAvailability(ctx context.Context, id string, quantity int) error {
	// Single conditional statement so concurrent purchases cannot jointly
	// oversell: the WHERE clause re-checks availability and the row count
	// tells us whether the decrement applied.
	query := `
	UPDATE public.carbon_credits
	SET quantity_available = quantity_available - $2,
	    updated_at = current_timestamp
	WHERE id = $1
	AND quantity_available >= $2
	`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.dbCtx(ctx).ExecContext(ctx, query, id, quantity)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while decrementing availability: %w", err))
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while reading affected rows: %w", err))
	}
	if rows == 0 {
		return ErrQuantityConflict
	}
	return nil
}
