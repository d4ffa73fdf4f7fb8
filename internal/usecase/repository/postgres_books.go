package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/project/biblioteca/internal/entity"
)

func (p *postgresRepository) CreateBook(ctx context.Context, book entity.Book) (entity.Book, error) {
	const query = `
INSERT INTO book (id, title, isbn, published_at)
VALUES ($1, $2, $3, $4)
RETURNING created_at, updated_at
`
	result := book
	err := p.q(ctx).QueryRow(ctx, query,
		book.ID, book.Title, book.ISBN, book.PublishedAt).
		Scan(&result.CreatedAt, &result.UpdatedAt)

	if constraintViolated(err, codeUniqueViolation, "book_isbn_key") {
		return entity.Book{}, entity.ErrISBNTaken
	}

	if err != nil {
		return entity.Book{}, err
	}

	if err = p.insertBookAuthors(ctx, book.ID, book.AuthorIDs); err != nil {
		return entity.Book{}, err
	}

	return result, nil
}

// UpdateBook rewrites the book row and replaces the whole author set, so a
// change to the credited authors is one atomic swap.
func (p *postgresRepository) UpdateBook(ctx context.Context, updBook entity.Book) error {
	const query = `
UPDATE book
SET title = $2, isbn = $3, published_at = $4, updated_at = now()
WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query,
		updBook.ID, updBook.Title, updBook.ISBN, updBook.PublishedAt)

	if constraintViolated(err, codeUniqueViolation, "book_isbn_key") {
		return entity.ErrISBNTaken
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	const queryDeleteOldAuthors = `
DELETE FROM author_book WHERE book_id = $1
`
	if _, err = p.q(ctx).Exec(ctx, queryDeleteOldAuthors, updBook.ID); err != nil {
		return err
	}

	return p.insertBookAuthors(ctx, updBook.ID, updBook.AuthorIDs)
}

func (p *postgresRepository) DeleteBook(ctx context.Context, idBook string) error {
	const queryAuthors = `
DELETE FROM author_book WHERE book_id = $1
`
	if _, err := p.q(ctx).Exec(ctx, queryAuthors, idBook); err != nil {
		return err
	}

	const query = `
DELETE FROM book WHERE id = $1
`
	tag, err := p.q(ctx).Exec(ctx, query, idBook)

	// A rental_book row still referencing the book means it is rented.
	if constraintViolated(err, codeForeignKeyViolation, "rental_book_book_id_fkey") {
		return entity.ErrBookRented
	}

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrBookNotFound
	}

	return nil
}

func (p *postgresRepository) GetBook(ctx context.Context, idBook string) (entity.Book, error) {
	const query = `
SELECT id, title, isbn, published_at, created_at, updated_at
FROM book
WHERE id = $1
`
	book, err := scanBookRow(p.q(ctx).QueryRow(ctx, query, idBook))

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Book{}, entity.ErrBookNotFound
	}

	if err != nil {
		return entity.Book{}, err
	}

	const queryAuthors = `
SELECT author_id
FROM author_book
WHERE book_id = $1
`
	book.AuthorIDs, err = p.scanIDs(ctx, queryAuthors, idBook)

	if err != nil {
		return entity.Book{}, err
	}

	return book, nil
}

func (p *postgresRepository) ListBooks(ctx context.Context) ([]entity.Book, error) {
	const query = `
SELECT id, title, isbn, published_at, created_at, updated_at
FROM book
ORDER BY created_at
`
	return p.booksWithAuthors(ctx, query)
}

func (p *postgresRepository) GetBooksByIDs(ctx context.Context, ids []string) ([]entity.Book, error) {
	const query = `
SELECT id, title, isbn, published_at, created_at, updated_at
FROM book
WHERE id::text = ANY($1)
`
	return p.booksWithAuthors(ctx, query, ids)
}

func (p *postgresRepository) GetAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error) {
	const query = `
SELECT b.id, b.title, b.isbn, b.published_at, b.created_at, b.updated_at
FROM book b
JOIN author_book ab ON ab.book_id = b.id
WHERE ab.author_id = $1
ORDER BY b.created_at
`
	return p.booksWithAuthors(ctx, query, idAuthor)
}

func (p *postgresRepository) BookISBNTaken(ctx context.Context, isbn, excludeID string) (bool, error) {
	const query = `
SELECT EXISTS (SELECT 1 FROM book WHERE isbn = $1 AND id::text <> $2)
`
	return exists(ctx, p.q(ctx), query, isbn, excludeID)
}

func (p *postgresRepository) insertBookAuthors(ctx context.Context, idBook string, authorIDs []string) error {
	const query = `
INSERT INTO author_book (author_id, book_id)
VALUES ($1, $2)
`
	for _, authorID := range authorIDs {
		_, err := p.q(ctx).Exec(ctx, query, authorID, idBook)

		if constraintViolated(err, codeForeignKeyViolation, "author_book_author_id_fkey") {
			return entity.ErrAuthorsNotFound
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func scanBookRow(row rowScanner) (entity.Book, error) {
	var book entity.Book

	err := row.Scan(&book.ID, &book.Title, &book.ISBN, &book.PublishedAt,
		&book.CreatedAt, &book.UpdatedAt)

	if err != nil {
		return entity.Book{}, err
	}

	book.AuthorIDs = make([]string, 0)
	return book, nil
}

func (p *postgresRepository) booksWithAuthors(ctx context.Context, query string, args ...any) ([]entity.Book, error) {
	rows, err := p.q(ctx).Query(ctx, query, args...)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]entity.Book, 0)
	for rows.Next() {
		book, scanErr := scanBookRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		books = append(books, book)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	const queryAuthors = `
SELECT book_id, author_id
FROM author_book
`
	authorIDs, err := p.scanIDPairs(ctx, queryAuthors)

	if err != nil {
		return nil, err
	}

	for i := range books {
		if ids, ok := authorIDs[books[i].ID]; ok {
			books[i].AuthorIDs = ids
		}
	}

	return books, nil
}
