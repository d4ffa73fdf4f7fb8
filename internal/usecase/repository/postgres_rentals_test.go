package repository

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"github.com/project/biblioteca/internal/entity"
)

func testRental() entity.Rental {
	checkout := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return entity.Rental{
		ID:           "rent1",
		RenterID:     "r1",
		BookIDs:      []string{"b1", "b2"},
		CheckoutDate: checkout,
		DueDate:      checkout.AddDate(0, 0, entity.RentalPeriodDays),
	}
}

func Test_postgresRepository_CreateRental(t *testing.T) {
	t.Parallel()

	rental := testRental()

	type bookErr struct {
		err        error
		requireErr error
	}

	tests := []struct {
		name        string
		txL         txLayer
		rentalErr   error
		booksFailAt int
		bookErr     *bookErr
		requireErr  error
	}{
		{name: "ok without transaction",
			txL: none},

		{name: "ok with transaction",
			txL: extract},

		{name: "renter missing",
			rentalErr:  pgError(codeForeignKeyViolation, "rental_renter_id_fkey"),
			requireErr: entity.ErrRenterNotFound},

		{name: "book already on an open rental",
			booksFailAt: 1,
			bookErr: &bookErr{
				err:        pgError(codeUniqueViolation, "rental_book_book_id_key"),
				requireErr: entity.ErrBooksAlreadyRented,
			},
			requireErr: entity.ErrBooksAlreadyRented},

		{name: "book missing",
			booksFailAt: 0,
			bookErr: &bookErr{
				err:        pgError(codeForeignKeyViolation, "rental_book_book_id_fkey"),
				requireErr: entity.ErrBooksNotFound,
			},
			requireErr: entity.ErrBooksNotFound},

		{name: "internal error",
			rentalErr:  errInternal,
			requireErr: errInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			if tt.txL == extract {
				ctx = insertTxInMock(ctx, mock)
			}

			expected := mock.ExpectQuery(`INSERT INTO rental`).
				WithArgs(rental.ID, rental.RenterID, rental.CheckoutDate, rental.DueDate)
			if tt.rentalErr != nil {
				expected.WillReturnError(tt.rentalErr)

				got, err := p.CreateRental(ctx, rental)
				require.ErrorIs(t, err, tt.requireErr)
				require.Empty(t, got)
				return
			}

			now := time.Now()
			expected.WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

			for i, bookID := range rental.BookIDs {
				book := mock.ExpectExec(`INSERT INTO rental_book`).WithArgs(rental.ID, bookID)
				if tt.bookErr != nil && i == tt.booksFailAt {
					book.WillReturnError(tt.bookErr.err)
					break
				}
				book.WillReturnResult(pgxmock.NewResult("INSERT", 1))
			}

			got, err := p.CreateRental(ctx, rental)
			require.ErrorIs(t, err, tt.requireErr)
			if err != nil {
				require.Empty(t, got)
				return
			}

			require.Equal(t, rental.ID, got.ID)
			require.Equal(t, rental.BookIDs, got.BookIDs)
			require.False(t, got.CreatedAt.IsZero())
		})
	}
}

func Test_postgresRepository_UpdateRental(t *testing.T) {
	t.Parallel()

	rental := testRental()

	tests := []struct {
		name         string
		dbErr        error
		rowsAffected int64
		expectBooks  bool
		requireErr   error
	}{
		{name: "ok",
			rowsAffected: 1,
			expectBooks:  true},

		{name: "rental missing",
			rowsAffected: 0,
			requireErr:   entity.ErrRentalNotFound},

		{name: "renter missing",
			dbErr:      pgError(codeForeignKeyViolation, "rental_renter_id_fkey"),
			requireErr: entity.ErrRenterNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectExec(`UPDATE rental`).
				WithArgs(rental.ID, rental.RenterID, rental.CheckoutDate, rental.DueDate)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))
			}

			if tt.expectBooks {
				mock.ExpectExec(`DELETE FROM rental_book`).WithArgs(rental.ID).
					WillReturnResult(pgxmock.NewResult("DELETE", 2))
				for _, bookID := range rental.BookIDs {
					mock.ExpectExec(`INSERT INTO rental_book`).WithArgs(rental.ID, bookID).
						WillReturnResult(pgxmock.NewResult("INSERT", 1))
				}
			}

			err := p.UpdateRental(ctx, rental)
			require.ErrorIs(t, err, tt.requireErr)
		})
	}
}

func Test_postgresRepository_DeleteRental(t *testing.T) {
	t.Parallel()

	const idRental = "rent1"

	tests := []struct {
		name         string
		rowsAffected int64
		requireErr   error
	}{
		{name: "ok",
			rowsAffected: 1},

		{name: "rental missing",
			rowsAffected: 0,
			requireErr:   entity.ErrRentalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			mock.ExpectExec(`DELETE FROM rental_book`).WithArgs(idRental).
				WillReturnResult(pgxmock.NewResult("DELETE", 2))
			mock.ExpectExec(`DELETE FROM rental`).WithArgs(idRental).
				WillReturnResult(pgxmock.NewResult("DELETE", tt.rowsAffected))

			err := p.DeleteRental(ctx, idRental)
			require.ErrorIs(t, err, tt.requireErr)
		})
	}
}

func Test_postgresRepository_GetRental(t *testing.T) {
	t.Parallel()

	rental := testRental()
	now := time.Now()

	tests := []struct {
		name        string
		dbErr       error
		bookIDs     []string
		expectBooks bool
		requireErr  error
	}{
		{name: "ok",
			bookIDs:     []string{"b1", "b2"},
			expectBooks: true},

		{name: "rental missing",
			dbErr:      pgx.ErrNoRows,
			requireErr: entity.ErrRentalNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectQuery(`SELECT id, renter_id, checkout_date`).WithArgs(rental.ID)
			if tt.dbErr != nil {
				expected.WillReturnError(tt.dbErr)
			} else {
				expected.WillReturnRows(pgxmock.
					NewRows([]string{"id", "renter_id", "checkout_date", "due_date", "created_at", "updated_at"}).
					AddRow(rental.ID, rental.RenterID, rental.CheckoutDate, rental.DueDate, now, now))
			}

			if tt.expectBooks {
				rows := pgxmock.NewRows([]string{"book_id"})
				for _, id := range tt.bookIDs {
					rows.AddRow(id)
				}
				mock.ExpectQuery(`SELECT book_id`).WithArgs(rental.ID).WillReturnRows(rows)
			}

			got, err := p.GetRental(ctx, rental.ID)
			require.ErrorIs(t, err, tt.requireErr)
			if err != nil {
				require.Empty(t, got)
				return
			}

			require.Equal(t, rental.ID, got.ID)
			require.Equal(t, rental.DueDate, got.DueDate)
			require.Equal(t, tt.bookIDs, got.BookIDs)
		})
	}
}

func Test_postgresRepository_ListRentals(t *testing.T) {
	t.Parallel()

	rental := testRental()
	now := time.Now()

	tests := []struct {
		name       string
		errL       errLayer
		requireErr error
	}{
		{name: "ok", errL: null},
		{name: "db error", errL: db, requireErr: errInternal},
		{name: "scan error", errL: scan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			expected := mock.ExpectQuery(`SELECT id, renter_id, checkout_date`)
			switch tt.errL {
			case db:
				expected.WillReturnError(errInternal)
			case scan:
				expected.WillReturnRows(pgxmock.
					NewRows([]string{"id", "renter_id", "checkout_date", "due_date", "created_at", "updated_at"}).
					AddRow(-1, -1, -1, -1, -1, -1))
			default:
				expected.WillReturnRows(pgxmock.
					NewRows([]string{"id", "renter_id", "checkout_date", "due_date", "created_at", "updated_at"}).
					AddRow(rental.ID, rental.RenterID, rental.CheckoutDate, rental.DueDate, now, now))
				mock.ExpectQuery(`SELECT rental_id, book_id`).
					WillReturnRows(pgxmock.NewRows([]string{"rental_id", "book_id"}).
						AddRow(rental.ID, "b1").
						AddRow(rental.ID, "b2"))
			}

			rentals, err := p.ListRentals(ctx)
			if tt.errL != null {
				require.Error(t, err)
				if tt.requireErr != nil {
					require.ErrorIs(t, err, tt.requireErr)
				}
				require.Nil(t, rentals)
				return
			}

			require.NoError(t, err)
			require.Len(t, rentals, 1)
			require.Equal(t, []string{"b1", "b2"}, rentals[0].BookIDs)
		})
	}
}

func Test_postgresRepository_AnyBookRented(t *testing.T) {
	t.Parallel()

	bookIDs := []string{"b1", "b2"}

	tests := []struct {
		name            string
		excludeRentalID string
		rented          bool
	}{
		{name: "rented", rented: true},
		{name: "free", rented: false},
		{name: "free when only on the excluded rental", excludeRentalID: "rent1", rented: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, mock, p := initPostgresTest(t)
			mock.ExpectQuery(`SELECT EXISTS`).
				WithArgs(bookIDs, tt.excludeRentalID).
				WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(tt.rented))

			rented, err := p.AnyBookRented(ctx, bookIDs, tt.excludeRentalID)
			require.NoError(t, err)
			require.Equal(t, tt.rented, rented)
		})
	}
}

func Test_postgresRepository_RentedBookIDs(t *testing.T) {
	t.Parallel()

	ctx, mock, p := initPostgresTest(t)
	mock.ExpectQuery(`SELECT DISTINCT book_id`).
		WillReturnRows(pgxmock.NewRows([]string{"book_id"}).AddRow("b1").AddRow("b2"))

	ids, err := p.RentedBookIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"b1", "b2"}, ids)
}
