package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX is the query surface shared by *sqlx.DB and *sqlx.Tx. Repositories
// receive it through a DBTXContext so the same code runs inside or outside
// a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
}

// DBTXContext resolves the current DBTX: the ambient transaction when one is
// bound to the context, the pool otherwise.
type DBTXContext func(ctx context.Context) DBTX

type sqlxDB interface {
	DBTX
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type sqlxTx interface {
	Commit() error
	Rollback() error
}
