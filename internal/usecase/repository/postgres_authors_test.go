package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/project/biblioteca/internal/entity"
)

func initPostgresTest(t *testing.T) (context.Context, pgxmock.PgxPoolIface, *postgresRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	logger, err := zap.NewProduction()
	require.NoError(t, err)
	return context.Background(), mock, New(logger, mock)
}

func pgError(code, constraint string) *pgconn.PgError {
	return &pgconn.PgError{Code: code, ConstraintName: constraint}
}

func Test_postgresRepository_CreateAuthor(t *testing.T) {
	t.Parallel()

	author := entity.Author{
		ID:        "a1",
		Name:      "Jorge Amado",
		Sex:       entity.SexMasculine,
		BirthDate: time.Date(1912, 8, 10, 0, 0, 0, 0, time.UTC),
		CPF:       "12345678901",
	}

	tests := []struct {
		name       string
		txL        txLayer
		dbErr      error
		requireErr error
	}{
		{name: "ok without transaction",
			txL: none},

		{name: "ok with transaction",
			txL: extract},

		{name: "duplicate cpf",
			dbErr:      pgError(codeUniqueViolation, "author_cpf_key"),
			requireErr: entity.ErrCPFTaken},

		{name: "internal error",
			dbErr:      errInternal,
			requireErr: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectQuery(`INSERT INTO author`).
				WithArgs(author.ID, author.Name, pgxmock.AnyArg(), author.BirthDate, author.CPF)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				now := time.Now()
				expected.WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
			}

			got, err := p.CreateAuthor(ctx, author)
			require.ErrorIs(t, err, tt.requireErr)
			if err != nil {
				require.Empty(t, got)
				return
			}

			require.Equal(t, author.ID, got.ID)
			require.False(t, got.CreatedAt.IsZero())
		})
	}
}

func Test_postgresRepository_UpdateAuthor(t *testing.T) {
	t.Parallel()

	author := entity.Author{
		ID:   "a1",
		Name: "Graciliano Ramos",
		CPF:  "12345678901",
	}

	tests := []struct {
		name         string
		dbErr        error
		rowsAffected int64
		requireErr   error
	}{
		{name: "ok",
			rowsAffected: 1},

		{name: "author missing",
			rowsAffected: 0,
			requireErr:   entity.ErrAuthorNotFound},

		{name: "duplicate cpf",
			dbErr:      pgError(codeUniqueViolation, "author_cpf_key"),
			requireErr: entity.ErrCPFTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectExec(`UPDATE author`).
				WithArgs(author.ID, author.Name, pgxmock.AnyArg(), author.BirthDate, author.CPF)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))
			}

			err := p.UpdateAuthor(ctx, author)
			require.ErrorIs(t, err, tt.requireErr)
		})
	}
}

func Test_postgresRepository_DeleteAuthor(t *testing.T) {
	t.Parallel()

	const idAuthor = "a1"

	tests := []struct {
		name         string
		dbErr        error
		rowsAffected int64
		requireErr   error
	}{
		{name: "ok",
			rowsAffected: 1},

		{name: "author missing",
			rowsAffected: 0,
			requireErr:   entity.ErrAuthorNotFound},

		{name: "join rows still credit the author",
			dbErr:      pgError(codeForeignKeyViolation, "author_book_author_id_fkey"),
			requireErr: entity.ErrAuthorHasBooks},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectExec(`DELETE FROM author`).WithArgs(idAuthor)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("DELETE", tt.rowsAffected))
			}

			err := p.DeleteAuthor(ctx, idAuthor)
			require.ErrorIs(t, err, tt.requireErr)
		})
	}
}

func Test_postgresRepository_GetAuthor(t *testing.T) {
	t.Parallel()

	const idAuthor = "a1"
	now := time.Now()
	birth := time.Date(1912, 8, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		dbErr       error
		bookIDs     []string
		expectBooks bool
		requireErr  error
	}{
		{name: "ok with books",
			bookIDs:     []string{"b1", "b2"},
			expectBooks: true},

		{name: "ok without books",
			bookIDs:     []string{},
			expectBooks: true},

		{name: "author missing",
			dbErr:      pgx.ErrNoRows,
			requireErr: entity.ErrAuthorNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectQuery(`SELECT id, name, sex, birth_date, cpf`).WithArgs(idAuthor)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnRows(pgxmock.
					NewRows([]string{"id", "name", "sex", "birth_date", "cpf", "created_at", "updated_at"}).
					AddRow(idAuthor, "Jorge Amado", nil, birth, "12345678901", now, now))
			}

			if tt.expectBooks {
				rows := pgxmock.NewRows([]string{"book_id"})
				for _, id := range tt.bookIDs {
					rows.AddRow(id)
				}
				mock.ExpectQuery(`SELECT book_id`).WithArgs(idAuthor).WillReturnRows(rows)
			}

			author, err := p.GetAuthor(ctx, idAuthor)
			require.ErrorIs(t, err, tt.requireErr)
			if err != nil {
				require.Empty(t, author)
				return
			}

			require.Equal(t, idAuthor, author.ID)
			require.Empty(t, author.Sex)
			require.Equal(t, tt.bookIDs, author.BookIDs)
		})
	}
}

func Test_postgresRepository_AuthorCPFTaken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		excludeID string
		taken     bool
	}{
		{name: "taken", taken: true},
		{name: "free", taken: false},
		{name: "free when only held by the excluded author", excludeID: "a1", taken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs("12345678901", tt.excludeID).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.taken))

			taken, err := p.AuthorCPFTaken(ctx, "12345678901", tt.excludeID)
			require.NoError(t, err)
			require.Equal(t, tt.taken, taken)
		})
	}
}
