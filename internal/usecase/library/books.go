package library

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/log"
	"github.com/project/biblioteca/internal/validation"
)

func (l *libraryImpl) ListBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	books, err := l.booksRepository.ListBooks(ctx)

	if log.Error(l.logger, err, "Failed list books", traceID, log.ListBooks) {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

func (l *libraryImpl) GetBook(ctx context.Context, idBook string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", idBook))

	book, err := l.booksRepository.GetBook(ctx, idBook)

	if log.Error(l.logger, err, "Failed get book", traceID, log.GetBook) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	return book, nil
}

func (l *libraryImpl) ListAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))

	if _, err := l.authorRepository.GetAuthor(ctx, idAuthor); err != nil {
		log.Error(l.logger, err, "Failed list author books", traceID, log.ListAuthorBooks)
		span.RecordError(err)
		return nil, err
	}

	books, err := l.booksRepository.GetAuthorBooks(ctx, idAuthor)

	if log.Error(l.logger, err, "Failed list author books", traceID, log.ListAuthorBooks) {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

// CreateBook resolves its checks in order: isbn uniqueness, publication date,
// non-empty author set, then author existence.
func (l *libraryImpl) CreateBook(ctx context.Context, input BookInput) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateBook(l.logger, "Start of create book", traceID, input.Title, input.AuthorIDs)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		taken, txErr := l.booksRepository.BookISBNTaken(ctx, input.ISBN, "")

		if txErr != nil {
			return txErr
		}

		if taken {
			return entity.ErrISBNTaken
		}

		publishedAt, txErr := validation.ParsePublicationDate(input.PublishedAt)

		if txErr != nil {
			return txErr
		}

		authorIDs, txErr := l.resolveAuthors(ctx, input.AuthorIDs)

		if txErr != nil {
			return txErr
		}

		book, txErr = l.booksRepository.CreateBook(ctx, entity.Book{
			ID:          uuid.NewString(),
			Title:       input.Title,
			ISBN:        input.ISBN,
			PublishedAt: publishedAt,
			AuthorIDs:   authorIDs,
		})

		return txErr
	})

	if log.ErrorCreateBook(l.logger, err, "Failed create book", traceID, input.Title, input.AuthorIDs) {
		span.SetAttributes(attribute.String("book_title", input.Title))
		span.RecordError(err)
		return entity.Book{}, err
	}

	span.SetAttributes(attribute.String("book_id", book.ID))
	log.InfoCreateBook(l.logger, "Created the book", traceID, input.Title, input.AuthorIDs, book.ID)
	return book, nil
}

func (l *libraryImpl) UpdateBook(ctx context.Context, idBook string, upd BookUpdate) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", idBook))
	log.InfoUpdateBook(l.logger, "Start of update book", traceID, idBook)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, idBook)

		if txErr != nil {
			return txErr
		}

		if upd.ISBN != nil {
			if txErr = validation.ISBN(*upd.ISBN); txErr != nil {
				return txErr
			}

			taken, takenErr := l.booksRepository.BookISBNTaken(ctx, *upd.ISBN, idBook)

			if takenErr != nil {
				return takenErr
			}

			if taken {
				return entity.ErrISBNTaken
			}

			book.ISBN = *upd.ISBN
		}

		if upd.PublishedAt != nil {
			book.PublishedAt, txErr = validation.ParsePublicationDate(*upd.PublishedAt)

			if txErr != nil {
				return txErr
			}
		}

		if upd.Title != nil {
			if strings.TrimSpace(*upd.Title) == "" {
				return entity.ErrBlankName
			}

			book.Title = *upd.Title
		}

		if upd.AuthorIDs != nil {
			book.AuthorIDs, txErr = l.resolveAuthors(ctx, *upd.AuthorIDs)

			if txErr != nil {
				return txErr
			}
		}

		return l.booksRepository.UpdateBook(ctx, book)
	})

	if log.ErrorUpdateBook(l.logger, err, "Failed update book", traceID, idBook) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoUpdateBook(l.logger, "Updated the book", traceID, idBook)
	return book, nil
}

func (l *libraryImpl) DeleteBook(ctx context.Context, idBook string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", idBook))
	log.InfoDeleteBook(l.logger, "Start of delete book", traceID, idBook)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.booksRepository.GetBook(ctx, idBook); txErr != nil {
			return txErr
		}

		rented, txErr := l.rentalsRepository.BookRented(ctx, idBook)

		if txErr != nil {
			return txErr
		}

		if rented {
			return entity.ErrBookRented
		}

		return l.booksRepository.DeleteBook(ctx, idBook)
	})

	if log.ErrorDeleteBook(l.logger, err, "Failed delete book", traceID, idBook) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteBook(l.logger, "Deleted the book", traceID, idBook)
	return nil
}

func (l *libraryImpl) AddBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", idBook), attribute.String("author_id", idAuthor))
	log.InfoAddBookAuthor(l.logger, "Start of add book author", traceID, idBook, idAuthor)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, idBook)

		if txErr != nil {
			return txErr
		}

		if _, txErr = l.authorRepository.GetAuthor(ctx, idAuthor); txErr != nil {
			return txErr
		}

		if lo.Contains(book.AuthorIDs, idAuthor) {
			return entity.ErrAuthorAlreadyOnBook
		}

		book.AuthorIDs = append(book.AuthorIDs, idAuthor)
		return l.booksRepository.UpdateBook(ctx, book)
	})

	if log.ErrorAddBookAuthor(l.logger, err, "Failed add book author", traceID, idBook, idAuthor) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoAddBookAuthor(l.logger, "Added the author to the book", traceID, idBook, idAuthor)
	return book, nil
}

// RemoveBookAuthor distinguishes an author that is not on the book (a
// validation problem) from removing the last author (which would strand the
// book).
func (l *libraryImpl) RemoveBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("book_id", idBook), attribute.String("author_id", idAuthor))
	log.InfoRemoveBookAuthor(l.logger, "Start of remove book author", traceID, idBook, idAuthor)

	var book entity.Book
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		book, txErr = l.booksRepository.GetBook(ctx, idBook)

		if txErr != nil {
			return txErr
		}

		if _, txErr = l.authorRepository.GetAuthor(ctx, idAuthor); txErr != nil {
			return txErr
		}

		if !lo.Contains(book.AuthorIDs, idAuthor) {
			return entity.ErrAuthorNotOnBook
		}

		if len(book.AuthorIDs) == 1 {
			return entity.ErrLastAuthor
		}

		book.AuthorIDs = lo.Filter(book.AuthorIDs, func(id string, _ int) bool {
			return id != idAuthor
		})
		return l.booksRepository.UpdateBook(ctx, book)
	})

	if log.ErrorRemoveBookAuthor(l.logger, err, "Failed remove book author", traceID, idBook, idAuthor) {
		span.RecordError(err)
		return entity.Book{}, err
	}

	log.InfoRemoveBookAuthor(l.logger, "Removed the author from the book", traceID, idBook, idAuthor)
	return book, nil
}

// resolveAuthors rejects an empty set and verifies that every id exists.
func (l *libraryImpl) resolveAuthors(ctx context.Context, authorIDs []string) ([]string, error) {
	ids := lo.Uniq(authorIDs)

	if len(ids) == 0 {
		return nil, entity.ErrNoAuthors
	}

	authors, err := l.authorRepository.GetAuthorsByIDs(ctx, ids)

	if err != nil {
		return nil, err
	}

	if len(authors) != len(ids) {
		return nil, entity.ErrAuthorsNotFound
	}

	return ids, nil
}
