package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/project/biblioteca/internal/entity"
)

func (p *postgresRepository) CreateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error) {
	const query = `
INSERT INTO rental (id, renter_id, checkout_date, due_date)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at
`
	result := rental
	err := p.q(ctx).QueryRow(ctx, query,
		rental.ID, rental.RenterID, rental.CheckoutDate, rental.DueDate).
		Scan(&result.CreatedAt, &result.UpdatedAt)

	if constraintViolated(err, codeForeignKeyViolation, "rental_renter_id_fkey") {
		return entity.Rental{}, entity.ErrRenterNotFound
	}

	if err != nil {
		return entity.Rental{}, err
	}

	if err = p.insertRentalBooks(ctx, rental.ID, rental.BookIDs); err != nil {
		return entity.Rental{}, err
	}

	return result, nil
}

// UpdateRental rewrites the rental row and replaces the whole book set in one
// transaction, so the rented inventory never holds a half-updated rental.
func (p *postgresRepository) UpdateRental(ctx context.Context, updRental entity.Rental) error {
	const query = `
UPDATE rental
SET renter_id = $2, checkout_date = $3, due_date = $4, updated_at = now()
WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query,
		updRental.ID, updRental.RenterID, updRental.CheckoutDate, updRental.DueDate)

	if constraintViolated(err, codeForeignKeyViolation, "rental_renter_id_fkey") {
		return entity.ErrRenterNotFound
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRentalNotFound
	}

	const queryDeleteOldBooks = `
DELETE FROM rental_book WHERE rental_id = $1
`
	if _, err = p.q(ctx).Exec(ctx, queryDeleteOldBooks, updRental.ID); err != nil {
		return err
	}

	return p.insertRentalBooks(ctx, updRental.ID, updRental.BookIDs)
}

func (p *postgresRepository) DeleteRental(ctx context.Context, idRental string) error {
	const queryBooks = `
DELETE FROM rental_book WHERE rental_id = $1
`
	if _, err := p.q(ctx).Exec(ctx, queryBooks, idRental); err != nil {
		return err
	}

	const query = `
DELETE FROM rental WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query, idRental)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRentalNotFound
	}

	return nil
}

func (p *postgresRepository) GetRental(ctx context.Context, idRental string) (entity.Rental, error) {
	const query = `
SELECT id, renter_id, checkout_date, due_date, created_at, updated_at
FROM rental
WHERE id = $1
`
	rental, err := scanRentalRow(p.q(ctx).QueryRow(ctx, query, idRental))

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Rental{}, entity.ErrRentalNotFound
	}

	if err != nil {
		return entity.Rental{}, err
	}

	const queryBooks = `
SELECT book_id
FROM rental_book
WHERE rental_id = $1
`
	rental.BookIDs, err = p.scanIDs(ctx, queryBooks, idRental)

	if err != nil {
		return entity.Rental{}, err
	}

	return rental, nil
}

func (p *postgresRepository) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	const query = `
SELECT id, renter_id, checkout_date, due_date, created_at, updated_at
FROM rental
ORDER BY created_at
`
	return p.rentalsWithBooks(ctx, query)
}

func (p *postgresRepository) ListRenterRentals(ctx context.Context, idRenter string) ([]entity.Rental, error) {
	const query = `
SELECT id, renter_id, checkout_date, due_date, created_at, updated_at
FROM rental
WHERE renter_id = $1
ORDER BY created_at
`
	return p.rentalsWithBooks(ctx, query, idRenter)
}

func (p *postgresRepository) RentedBookIDs(ctx context.Context) ([]string, error) {
	const query = `
SELECT DISTINCT book_id
FROM rental_book
ORDER BY book_id
`
	return p.scanIDs(ctx, query)
}

func (p *postgresRepository) AnyBookRented(ctx context.Context, bookIDs []string, excludeRentalID string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1 FROM rental_book
	WHERE book_id::text = ANY($1) AND rental_id::text <> $2
)
`
	return exists(ctx, p.q(ctx), query, bookIDs, excludeRentalID)
}

func (p *postgresRepository) BookRented(ctx context.Context, idBook string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM rental_book WHERE book_id = $1)
`
	return exists(ctx, p.q(ctx), query, idBook)
}

func (p *postgresRepository) RenterHasRentals(ctx context.Context, idRenter string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM rental WHERE renter_id = $1)
`
	return exists(ctx, p.q(ctx), query, idRenter)
}

func (p *postgresRepository) insertRentalBooks(ctx context.Context, idRental string, bookIDs []string) error {
	const query = `
INSERT INTO rental_book (rental_id, book_id)
VALUES ($1, $2)
`
	for _, bookID := range bookIDs {
		_, err := p.q(ctx).Exec(ctx, query, idRental, bookID)

		// unique(book_id) makes a concurrently rented book lose the race here
		// instead of ending up on two open rentals.
		if constraintViolated(err, codeUniqueViolation, "rental_book_book_id_key") {
			return entity.ErrBooksAlreadyRented
		}

		if constraintViolated(err, codeForeignKeyViolation, "rental_book_book_id_fkey") {
			return entity.ErrBooksNotFound
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func scanRentalRow(row rowScanner) (entity.Rental, error) {
	var rental entity.Rental

	err := row.Scan(&rental.ID, &rental.RenterID, &rental.CheckoutDate, &rental.DueDate,
		&rental.CreatedAt, &rental.UpdatedAt)

	if err != nil {
		return entity.Rental{}, err
	}

	rental.BookIDs = make([]string, 0)
	return rental, nil
}

func (p *postgresRepository) rentalsWithBooks(ctx context.Context, query string, args ...any) ([]entity.Rental, error) {
	rows, err := p.q(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rentals := make([]entity.Rental, 0)
	for rows.Next() {
		rental, scanErr := scanRentalRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		rentals = append(rentals, rental)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	const queryBooks = `
SELECT rental_id, book_id
FROM rental_book
`
	bookIDs, err := p.scanIDPairs(ctx, queryBooks)

	if err != nil {
		return nil, err
	}

	for i := range rentals {
		if ids, ok := bookIDs[rentals[i].ID]; ok {
			rentals[i].BookIDs = ids
		}
	}

	return rentals, nil
}
