package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const (
	codeForeignKeyViolation = "23503"
	codeUniqueViolation     = "23505"
)

// DataBase is the query surface shared by pgxpool.Pool and pgx.Tx.
type DataBase interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

var _ AuthorRepository = (*postgresRepository)(nil)
var _ BooksRepository = (*postgresRepository)(nil)
var _ RentersRepository = (*postgresRepository)(nil)
var _ RentalsRepository = (*postgresRepository)(nil)

type postgresRepository struct {
	logger *zap.Logger
	db     DataBase
}

func New(logger *zap.Logger, db DataBase) *postgresRepository {
	return &postgresRepository{
		logger: logger,
		db:     db,
	}
}

// q returns the transaction injected by the Transactor when one is present,
// the pool otherwise. Every repository method goes through it so that
// usecase-level WithTx covers all reads and writes of an operation.
func (p *postgresRepository) q(ctx context.Context) DataBase {
	if tx, err := extractTx(ctx); err == nil {
		return tx
	}
	return p.db
}

// constraintViolated reports whether err is the given pg error code on the
// given constraint.
func constraintViolated(err error, code, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code && pgErr.ConstraintName == constraint
}

// nullable maps the empty string to NULL for optional text columns.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func exists(ctx context.Context, db DataBase, query string, args ...any) (bool, error) {
	var found bool
	if err := db.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, err
	}
	return found, nil
}
