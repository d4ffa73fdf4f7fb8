package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/project/biblioteca/internal/entity"
)

func (p *postgresRepository) CreateRenter(ctx context.Context, renter entity.Renter) (entity.Renter, error) {
	const query = `
INSERT INTO renter (id, name, sex, phone, email, birth_date, cpf)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING created_at, updated_at
`
	result := renter
	err := p.q(ctx).QueryRow(ctx, query,
		renter.ID, renter.Name, nullable(renter.Sex), renter.Phone, renter.Email,
		renter.BirthDate, renter.CPF).
		Scan(&result.CreatedAt, &result.UpdatedAt)

	if constraintViolated(err, codeUniqueViolation, "renter_cpf_key") {
		return entity.Renter{}, entity.ErrCPFTaken
	}

	if constraintViolated(err, codeUniqueViolation, "renter_email_key") {
		return entity.Renter{}, entity.ErrEmailTaken
	}

	if err != nil {
		return entity.Renter{}, err
	}

	return result, nil
}

func (p *postgresRepository) UpdateRenter(ctx context.Context, updRenter entity.Renter) error {
	const query = `
UPDATE renter
SET name = $2, sex = $3, phone = $4, email = $5, birth_date = $6, cpf = $7, updated_at = now()
WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query,
		updRenter.ID, updRenter.Name, nullable(updRenter.Sex), updRenter.Phone,
		updRenter.Email, updRenter.BirthDate, updRenter.CPF)

	if constraintViolated(err, codeUniqueViolation, "renter_cpf_key") {
		return entity.ErrCPFTaken
	}

	if constraintViolated(err, codeUniqueViolation, "renter_email_key") {
		return entity.ErrEmailTaken
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRenterNotFound
	}

	return nil
}

func (p *postgresRepository) DeleteRenter(ctx context.Context, idRenter string) error {
	const query = `
DELETE FROM renter WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query, idRenter)

	if constraintViolated(err, codeForeignKeyViolation, "rental_renter_id_fkey") {
		return entity.ErrRenterHasRentals
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrRenterNotFound
	}

	return nil
}

func (p *postgresRepository) GetRenter(ctx context.Context, idRenter string) (entity.Renter, error) {
	const query = `
SELECT id, name, sex, phone, email, birth_date, cpf, created_at, updated_at
FROM renter
WHERE id = $1
`
	renter, err := scanRenterRow(p.q(ctx).QueryRow(ctx, query, idRenter))

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Renter{}, entity.ErrRenterNotFound
	}

	if err != nil {
		return entity.Renter{}, err
	}

	const queryRentals = `
SELECT id
FROM rental
WHERE renter_id = $1
`
	renter.RentalIDs, err = p.scanIDs(ctx, queryRentals, idRenter)

	if err != nil {
		return entity.Renter{}, err
	}

	return renter, nil
}

func (p *postgresRepository) ListRenters(ctx context.Context) ([]entity.Renter, error) {
	const query = `
SELECT id, name, sex, phone, email, birth_date, cpf, created_at, updated_at
FROM renter
ORDER BY created_at
`
	rows, err := p.q(ctx).Query(ctx, query)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	renters := make([]entity.Renter, 0)
	for rows.Next() {
		renter, scanErr := scanRenterRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		renters = append(renters, renter)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	const queryRentals = `
SELECT renter_id, id
FROM rental
`
	rentalIDs, err := p.scanIDPairs(ctx, queryRentals)

	if err != nil {
		return nil, err
	}

	for i := range renters {
		if ids, ok := rentalIDs[renters[i].ID]; ok {
			renters[i].RentalIDs = ids
		}
	}

	return renters, nil
}

func (p *postgresRepository) RenterCPFTaken(ctx context.Context, cpf, excludeID string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM renter WHERE cpf = $1 AND id::text <> $2)
`
	return exists(ctx, p.q(ctx), query, cpf, excludeID)
}

func (p *postgresRepository) RenterEmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM renter WHERE email = $1 AND id::text <> $2)
`
	return exists(ctx, p.q(ctx), query, email, excludeID)
}

func scanRenterRow(row rowScanner) (entity.Renter, error) {
	var renter entity.Renter
	var sex sql.NullString

	err := row.Scan(&renter.ID, &renter.Name, &sex, &renter.Phone, &renter.Email,
		&renter.BirthDate, &renter.CPF, &renter.CreatedAt, &renter.UpdatedAt)

	if err != nil {
		return entity.Renter{}, err
	}

	renter.Sex = sex.String
	renter.RentalIDs = make([]string, 0)
	return renter, nil
}
