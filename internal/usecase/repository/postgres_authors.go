package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/project/biblioteca/internal/entity"
)

func (p *postgresRepository) CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error) {
	const query = `
INSERT INTO author (id, name, sex, birth_date, cpf)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at, updated_at
`
	result := author
	err := p.q(ctx).QueryRow(ctx, query,
		author.ID, author.Name, nullable(author.Sex), author.BirthDate, author.CPF).
		Scan(&result.CreatedAt, &result.UpdatedAt)

	if constraintViolated(err, codeUniqueViolation, "author_cpf_key") {
		return entity.Author{}, entity.ErrCPFTaken
	}

	if err != nil {
		return entity.Author{}, err
	}

	return result, nil
}

func (p *postgresRepository) UpdateAuthor(ctx context.Context, updAuthor entity.Author) error {
	const query = `
UPDATE author
SET name = $2, sex = $3, birth_date = $4, cpf = $5, updated_at = now()
WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query,
		updAuthor.ID, updAuthor.Name, nullable(updAuthor.Sex), updAuthor.BirthDate, updAuthor.CPF)

	if constraintViolated(err, codeUniqueViolation, "author_cpf_key") {
		return entity.ErrCPFTaken
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrAuthorNotFound
	}

	return nil
}

func (p *postgresRepository) DeleteAuthor(ctx context.Context, idAuthor string) error {
	const query = `
DELETE FROM author WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query, idAuthor)

	// Backstop for the usecase-level guard: join rows still crediting the
	// author keep the delete from committing.
	if constraintViolated(err, codeForeignKeyViolation, "author_book_author_id_fkey") {
		return entity.ErrAuthorHasBooks
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrAuthorNotFound
	}

	return nil
}

func (p *postgresRepository) GetAuthor(ctx context.Context, idAuthor string) (entity.Author, error) {
	const query = `
SELECT id, name, sex, birth_date, cpf, created_at, updated_at
FROM author
WHERE id = $1
`
	author, err := p.scanAuthor(ctx, query, idAuthor)

	if err != nil {
		return entity.Author{}, err
	}

	author.BookIDs, err = p.authorBookIDs(ctx, author.ID)

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) GetAuthorByName(ctx context.Context, name string) (entity.Author, error) {
	const query = `
SELECT id, name, sex, birth_date, cpf, created_at, updated_at
FROM author
WHERE lower(name) = lower($1)
`
	author, err := p.scanAuthor(ctx, query, name)

	if err != nil {
		return entity.Author{}, err
	}

	author.BookIDs, err = p.authorBookIDs(ctx, author.ID)

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	const query = `
SELECT id, name, sex, birth_date, cpf, created_at, updated_at
FROM author
ORDER BY created_at
`
	rows, err := p.q(ctx).Query(ctx, query)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]entity.Author, 0)
	for rows.Next() {
		author, scanErr := scanAuthorRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		authors = append(authors, author)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	bookIDs, err := p.bookIDsByAuthor(ctx)

	if err != nil {
		return nil, err
	}

	for i := range authors {
		if ids, ok := bookIDs[authors[i].ID]; ok {
			authors[i].BookIDs = ids
		}
	}

	return authors, nil
}

func (p *postgresRepository) GetAuthorsByIDs(ctx context.Context, ids []string) ([]entity.Author, error) {
	const query = `
SELECT id, name, sex, birth_date, cpf, created_at, updated_at
FROM author
WHERE id::text = ANY($1)
`
	rows, err := p.q(ctx).Query(ctx, query, ids)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]entity.Author, 0, len(ids))
	for rows.Next() {
		author, scanErr := scanAuthorRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		authors = append(authors, author)
	}

	return authors, rows.Err()
}

func (p *postgresRepository) AuthorCPFTaken(ctx context.Context, cpf, excludeID string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM author WHERE cpf = $1 AND id::text <> $2)
`
	return exists(ctx, p.q(ctx), query, cpf, excludeID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAuthorRow(row rowScanner) (entity.Author, error) {
	var author entity.Author
	var sex sql.NullString

	err := row.Scan(&author.ID, &author.Name, &sex, &author.BirthDate, &author.CPF,
		&author.CreatedAt, &author.UpdatedAt)

	if err != nil {
		return entity.Author{}, err
	}

	author.Sex = sex.String
	author.BookIDs = make([]string, 0)
	return author, nil
}

func (p *postgresRepository) scanAuthor(ctx context.Context, query string, arg any) (entity.Author, error) {
	author, err := scanAuthorRow(p.q(ctx).QueryRow(ctx, query, arg))

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Author{}, entity.ErrAuthorNotFound
	}

	if err != nil {
		return entity.Author{}, err
	}

	return author, nil
}

func (p *postgresRepository) authorBookIDs(ctx context.Context, idAuthor string) ([]string, error) {
	const query = `
SELECT book_id
FROM author_book
WHERE author_id = $1
`
	return p.scanIDs(ctx, query, idAuthor)
}

// bookIDsByAuthor loads the whole join relation in one query for list
// responses.
func (p *postgresRepository) bookIDsByAuthor(ctx context.Context) (map[string][]string, error) {
	const query = `
SELECT author_id, book_id
FROM author_book
`
	return p.scanIDPairs(ctx, query)
}

func (p *postgresRepository) scanIDs(ctx context.Context, query string, args ...any) ([]string, error) {
	rows, err := p.q(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (p *postgresRepository) scanIDPairs(ctx context.Context, query string, args ...any) (map[string][]string, error) {
	rows, err := p.q(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make(map[string][]string)
	for rows.Next() {
		var left, right string
		if err = rows.Scan(&left, &right); err != nil {
			return nil, err
		}
		pairs[left] = append(pairs[left], right)
	}

	return pairs, rows.Err()
}
