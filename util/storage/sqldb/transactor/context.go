package transactor

import "context"

type transactorKey struct{}

func txToContext(ctx context.Context, db sqlxDB) context.Context {
	return context.WithValue(ctx, transactorKey{}, db)
}

func txFromContext(ctx context.Context) sqlxDB {
	db, _ := ctx.Value(transactorKey{}).(sqlxDB)
	return db
}
