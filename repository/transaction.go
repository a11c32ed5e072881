package repository

import (
	"context"
	"fmt"
	"time"

	"ccx-marketplace/model"
	"ccx-marketplace/util/errs"
	"ccx-marketplace/util/storage/sqldb/transactor"
)

type TransactionRepository interface {
	Create(ctx context.Context, tx *model.CreditTransaction) error
	FindAll(ctx context.Context) ([]model.CreditTransaction, error)
	FindByBuyer(ctx context.Context, buyerID string) ([]model.CreditTransaction, error)
}

type transactionRepository struct {
	dbCtx transactor.DBTXContext
}

func NewTransactionRepository(dbCtx transactor.DBTXContext) TransactionRepository {
	return &transactionRepository{
		dbCtx: dbCtx,
	}
}

const transactionColumns = `
	id, credit_id, buyer_id, quantity, price_per_ton,
	transaction_date, transaction_hash, status`

func (r *transactionRepository) Create(ctx context.Context, m *model.CreditTransaction) error {
	query := `
	INSERT INTO public.transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.dbCtx(ctx).ExecContext(ctx, query,
		m.ID,
		m.CreditID,
		m.BuyerID,
		m.Quantity,
		m.PricePerTon,
		m.TransactionDate,
		m.TransactionHash,
		m.Status,
	)
	if err != nil {
		return errs.HandleDBError(fmt.Errorf("an error occurred while inserting a transaction: %w", err))
	}
	return nil
}

func (r *transactionRepository) FindAll(ctx context.Context) ([]model.CreditTransaction, error) {
	query := `
	SELECT ` + transactionColumns + `
	FROM public.transactions
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	transactions := []model.CreditTransaction{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &transactions, query); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing transactions: %w", err))
	}
	return transactions, nil
}

func (r *transactionRepository) FindByBuyer(ctx context.Context, buyerID string) ([]model.CreditTransaction, error) {
	query := `
	SELECT ` + transactionColumns + `
	FROM public.transactions
	WHERE buyer_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	transactions := []model.CreditTransaction{}
	if err := r.dbCtx(ctx).SelectContext(ctx, &transactions, query, buyerID); err != nil {
		return nil, errs.HandleDBError(fmt.Errorf("an error occurred while listing buyer transactions: %w", err))
	}
	return transactions, nil
}
