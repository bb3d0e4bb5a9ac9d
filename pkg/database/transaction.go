package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Gobusters/ectologger"
	"github.com/jmoiron/sqlx"
)

type txContextKey string

const txKey = txContextKey("juniper-tx")

// Tx is the transactional query surface. Commit and Rollback are no-ops when
// the transaction was opened further up the call stack; the opener owns it.
type Tx interface {
	IsOpen() bool
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Transaction wraps sqlx.Tx with close tracking and nested-transaction
// semantics: a Tx retrieved from a context it did not open will not commit or
// roll back the underlying transaction.
type Transaction struct {
	*sqlx.Tx
	logger   ectologger.Logger
	isOwner  bool
	isClosed bool
}

// TxFromContext returns the open transaction carried by ctx, or nil.
func TxFromContext(ctx context.Context) Tx {
	tx, ok := ctx.Value(txKey).(Tx)
	if ok && tx != nil && tx.IsOpen() {
		return tx
	}
	return nil
}

// GetTx returns the transaction already carried by ctx, or begins a new one
// and stores it on the returned context. Only the caller that began the
// transaction can commit or roll it back; nested callers get no-op
// Commit/Rollback so the outermost operation controls atomicity.
func GetTx(ctx context.Context, logger ectologger.Logger, db DB, opts *sql.TxOptions) (context.Context, Tx, error) {
	if existing := TxFromContext(ctx); existing != nil {
		if base, ok := existing.(*Transaction); ok {
			nested := &Transaction{
				Tx:      base.Tx,
				logger:  logger,
				isOwner: false,
			}
			return ctx, nested, nil
		}
		return ctx, existing, nil
	}

	tx, err := db.BeginTxx(ctx, opts)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Errorf("error while beginning transaction")
		return ctx, nil, fmt.Errorf("error while beginning transaction")
	}

	newTx := &Transaction{
		Tx:      tx,
		logger:  logger,
		isOwner: true,
	}

	ctx = context.WithValue(ctx, txKey, Tx(newTx))
	return ctx, newTx, nil
}

func (t *Transaction) IsOpen() bool {
	return !t.isClosed
}

func (t *Transaction) Rollback(ctx context.Context) error {
	if t.isClosed || !t.isOwner {
		return nil
	}

	if err := t.Tx.Rollback(); err != nil {
		t.logger.WithContext(ctx).WithError(err).Errorf("error while rolling back transaction")
		return fmt.Errorf("error while rolling back transaction")
	}

	t.isClosed = true
	return nil
}

func (t *Transaction) Commit(ctx context.Context) error {
	if t.isClosed || !t.isOwner {
		return nil
	}

	if err := t.Tx.Commit(); err != nil {
		t.logger.WithContext(ctx).WithError(err).Errorf("error while committing transaction")
		return fmt.Errorf("error while committing transaction")
	}

	t.isClosed = true
	return nil
}
