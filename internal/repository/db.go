package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"tours/internal/entities"
)

const (
	uniqueViolation = "23505"
	checkViolation  = "23514"
)

// conn resolves the transaction stored in ctx by the transaction manager, or the
// plain pool when there is none.
type conn struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func newConn(db *sqlx.DB) conn {
	return conn{db: db, getter: trmsqlx.DefaultCtxGetter}
}

func (c conn) tr(ctx context.Context) trmsqlx.Tr {
	return c.getter.DefaultTrOrDB(ctx, c.db)
}

func notFound(err error, what string, id any) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", what, id, entities.ErrNotFound)
	}

	return fmt.Errorf("failed to get %s %v: %w", what, id, err)
}

func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func isCheckViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == checkViolation
}

func mustAffect(res sql.Result, what string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", what, id, entities.ErrNotFound)
	}

	return nil
}

// where accumulates AND-ed conditions written with ? placeholders.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, args ...any) {
	w.conds = append(w.conds, cond)
	w.args = append(w.args, args...)
}

func (w *where) query(base, suffix string) (string, []any) {
	q := base
	if len(w.conds) > 0 {
		q += " WHERE " + strings.Join(w.conds, " AND ")
	}
	if suffix != "" {
		q += " " + suffix
	}

	return sqlx.Rebind(sqlx.DOLLAR, q), w.args
}

func like(s string) string {
	return "%" + s + "%"
}
