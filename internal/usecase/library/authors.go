package library

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/log"
	"github.com/project/biblioteca/internal/validation"
)

func (l *libraryImpl) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	authors, err := l.authorRepository.ListAuthors(ctx)

	if log.Error(l.logger, err, "Failed list authors", traceID, log.ListAuthors) {
		span.RecordError(err)
		return nil, err
	}

	return authors, nil
}

// CreateAuthor checks cpf uniqueness before date and sex validity, so a
// duplicate cpf wins over a malformed birth date in the response.
func (l *libraryImpl) CreateAuthor(ctx context.Context, input AuthorInput) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateAuthor(l.logger, "Start of create author", traceID, input.Name)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		taken, txErr := l.authorRepository.AuthorCPFTaken(ctx, input.CPF, "")

		if txErr != nil {
			return txErr
		}

		if taken {
			return entity.ErrCPFTaken
		}

		birthDate, txErr := validation.ParseBirthDate(input.BirthDate)

		if txErr != nil {
			return txErr
		}

		if input.Sex != "" {
			if txErr = validation.Sex(input.Sex); txErr != nil {
				return txErr
			}
		}

		author, txErr = l.authorRepository.CreateAuthor(ctx, entity.Author{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Sex:       input.Sex,
			BirthDate: birthDate,
			CPF:       input.CPF,
		})

		return txErr
	})

	if log.ErrorCreateAuthor(l.logger, err, "Failed create author", traceID, input.Name) {
		span.SetAttributes(attribute.String("author_name", input.Name))
		span.RecordError(err)
		return entity.Author{}, err
	}

	author.BookIDs = make([]string, 0)
	span.SetAttributes(attribute.String("author_id", author.ID))
	log.InfoCreateAuthor(l.logger, "Created the author", traceID, input.Name, author.ID)
	return author, nil
}

func (l *libraryImpl) GetAuthorByName(ctx context.Context, name string) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoGetAuthorByName(l.logger, "Start of get author by name", traceID, name)

	author, err := l.authorRepository.GetAuthorByName(ctx, name)

	if log.ErrorGetAuthorByName(l.logger, err, "Failed get author by name", traceID, name) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	span.SetAttributes(attribute.String("author_id", author.ID))
	return author, nil
}

func (l *libraryImpl) UpdateAuthor(ctx context.Context, idAuthor string, upd AuthorUpdate) (entity.Author, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))
	log.InfoUpdateAuthor(l.logger, "Start of update author", traceID, idAuthor)

	var author entity.Author
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		author, txErr = l.authorRepository.GetAuthor(ctx, idAuthor)

		if txErr != nil {
			return txErr
		}

		if upd.CPF != nil {
			if txErr = validation.CPF(*upd.CPF); txErr != nil {
				return txErr
			}

			taken, takenErr := l.authorRepository.AuthorCPFTaken(ctx, *upd.CPF, idAuthor)

			if takenErr != nil {
				return takenErr
			}

			if taken {
				return entity.ErrCPFTaken
			}

			author.CPF = *upd.CPF
		}

		if upd.BirthDate != nil {
			author.BirthDate, txErr = validation.ParseBirthDate(*upd.BirthDate)

			if txErr != nil {
				return txErr
			}
		}

		if upd.Sex != nil {
			if txErr = validation.Sex(*upd.Sex); txErr != nil {
				return txErr
			}

			author.Sex = *upd.Sex
		}

		if upd.Name != nil {
			if strings.TrimSpace(*upd.Name) == "" {
				return entity.ErrBlankName
			}

			author.Name = *upd.Name
		}

		return l.authorRepository.UpdateAuthor(ctx, author)
	})

	if log.ErrorUpdateAuthor(l.logger, err, "Failed update author", traceID, idAuthor) {
		span.RecordError(err)
		return entity.Author{}, err
	}

	log.InfoUpdateAuthor(l.logger, "Updated the author", traceID, idAuthor)
	return author, nil
}

func (l *libraryImpl) DeleteAuthor(ctx context.Context, idAuthor string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("author_id", idAuthor))
	log.InfoDeleteAuthor(l.logger, "Start of delete author", traceID, idAuthor)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		author, txErr := l.authorRepository.GetAuthor(ctx, idAuthor)

		if txErr != nil {
			return txErr
		}

		if len(author.BookIDs) > 0 {
			return entity.ErrAuthorHasBooks
		}

		return l.authorRepository.DeleteAuthor(ctx, idAuthor)
	})

	if log.ErrorDeleteAuthor(l.logger, err, "Failed delete author", traceID, idAuthor) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteAuthor(l.logger, "Deleted the author", traceID, idAuthor)
	return nil
}
