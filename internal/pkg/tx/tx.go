package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type key string

const KeyTx = key("tx")

// WithTx returns a copy of ctx carrying an open transaction.
func WithTx(ctx context.Context, t *sqlx.Tx) context.Context {
	return context.WithValue(ctx, KeyTx, t)
}

// FromContext returns the transaction stored by WithTx, if any.
func FromContext(ctx context.Context) (*sqlx.Tx, bool) {
	t, ok := ctx.Value(KeyTx).(*sqlx.Tx)
	return t, ok && t != nil
}
