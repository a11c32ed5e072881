package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// NestedTransactionsNone flattens nested WithinTransaction calls into the
// outermost transaction: inner commits and rollbacks are no-ops.
func NestedTransactionsNone(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &sqlxTxWrapper{Tx: tx}, tx
	case *sqlxTxWrapper:
		return typedDB, nestedTransactionNone{}
	default:
		panic("unsupported transactor database type")
	}
}

type sqlxTxWrapper struct {
	*sqlx.Tx
}

// BeginTxx reuses the already-open transaction; the strategy decides what a
// nested begin means.
func (w *sqlxTxWrapper) BeginTxx(_ context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	return w.Tx, nil
}

type nestedTransactionNone struct{}

func (nestedTransactionNone) Commit() error   { return nil }
func (nestedTransactionNone) Rollback() error { return nil }
