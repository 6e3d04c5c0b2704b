package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-book-tracker/internal/logger"
)

// TxGetter returns the transaction bound to the request context, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// statement is any goqu dataset that renders to SQL with arguments.
type statement interface {
	ToSQL() (string, []interface{}, error)
}

type base struct {
	db       *sqlx.DB
	txGetter TxGetter
}

// executor prefers the request-scoped transaction over the pool.
func (b base) executor(ctx context.Context) sqlx.ExtContext {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return b.db
}

// inTx runs fn inside a transaction. A transaction already bound to ctx is
// joined and left for its owner to commit.
func (b base) inTx(ctx context.Context, fn func(tx sqlx.ExtContext) error) error {
	if b.txGetter != nil {
		if tx := b.txGetter(ctx); tx != nil {
			return fn(tx)
		}
	}

	tx, err := b.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

func execStmt(ctx context.Context, exec sqlx.ExecerContext, stmt statement) (int64, error) {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return 0, err
	}

	res, err := exec.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, args, rowsAffected, err)
	return rowsAffected, err
}

func selectStmt(ctx context.Context, q sqlx.QueryerContext, dest any, stmt statement) error {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return err
	}

	err = sqlx.SelectContext(ctx, q, dest, query, args...)
	logQuery(query, args, nil, err)
	return err
}

func getStmt(ctx context.Context, q sqlx.QueryerContext, dest any, stmt statement) error {
	query, args, err := stmt.ToSQL()
	if err != nil {
		return err
	}

	err = sqlx.GetContext(ctx, q, dest, query, args...)
	logQuery(query, args, dest, err)
	return err
}

func logQuery(query string, args []any, result any, err error) {
	logger.Log.Debugw("query",
		"sql", logger.OneLine(query),
		"args", args,
		"result", result,
		"error", err,
	)
}
