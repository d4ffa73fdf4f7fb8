package library

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/log"
	"github.com/project/biblioteca/internal/usecase/repository"
)

func (l *libraryImpl) ListRentals(ctx context.Context) ([]entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	rentals, err := l.rentalsRepository.ListRentals(ctx)

	if log.Error(l.logger, err, "Failed list rentals", traceID, log.ListRentals) {
		span.RecordError(err)
		return nil, err
	}

	return rentals, nil
}

// CreateRental runs entirely in one transaction: the renter must exist, every
// book must exist, and none may sit on another rental. The outbox message
// commits or rolls back with the rental itself.
func (l *libraryImpl) CreateRental(ctx context.Context, input RentalInput) (entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateRental(l.logger, "Start of create rental", traceID, input.RenterID, input.BookIDs)

	var rental entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.rentersRepository.GetRenter(ctx, input.RenterID); txErr != nil {
			return txErr
		}

		bookIDs, txErr := l.resolveBooks(ctx, input.BookIDs)

		if txErr != nil {
			return txErr
		}

		rented, txErr := l.rentalsRepository.AnyBookRented(ctx, bookIDs, "")

		if txErr != nil {
			return txErr
		}

		if rented {
			return entity.ErrBooksAlreadyRented
		}

		checkout := l.now()
		rental, txErr = l.rentalsRepository.CreateRental(ctx, entity.Rental{
			ID:           uuid.NewString(),
			RenterID:     input.RenterID,
			CheckoutDate: checkout,
			DueDate:      checkout.AddDate(0, 0, entity.RentalPeriodDays),
			BookIDs:      bookIDs,
		})

		if txErr != nil {
			return txErr
		}

		return l.sendRentalMessage(ctx, repository.OutboxKindRental, rental)
	})

	if log.ErrorCreateRental(l.logger, err, "Failed create rental", traceID, input.RenterID, input.BookIDs) {
		span.SetAttributes(attribute.String("renter_id", input.RenterID))
		span.RecordError(err)
		return entity.Rental{}, err
	}

	span.SetAttributes(attribute.String("rental_id", rental.ID))
	log.InfoCreateRental(l.logger, "Created the rental", traceID, input.RenterID, input.BookIDs, rental.ID)
	return rental, nil
}

func (l *libraryImpl) UpdateRental(ctx context.Context, idRental string, upd RentalUpdate) (entity.Rental, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("rental_id", idRental))
	log.InfoUpdateRental(l.logger, "Start of update rental", traceID, idRental)

	var rental entity.Rental
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		rental, txErr = l.rentalsRepository.GetRental(ctx, idRental)

		if txErr != nil {
			return txErr
		}

		if upd.RenterID != nil {
			if _, txErr = l.rentersRepository.GetRenter(ctx, *upd.RenterID); txErr != nil {
				return txErr
			}

			rental.RenterID = *upd.RenterID
		}

		if upd.BookIDs != nil {
			bookIDs, resolveErr := l.resolveBooks(ctx, *upd.BookIDs)

			if resolveErr != nil {
				return resolveErr
			}

			// Books held by this very rental do not count as taken.
			rented, rentedErr := l.rentalsRepository.AnyBookRented(ctx, bookIDs, idRental)

			if rentedErr != nil {
				return rentedErr
			}

			if rented {
				return entity.ErrBooksAlreadyRented
			}

			rental.BookIDs = bookIDs
		}

		return l.rentalsRepository.UpdateRental(ctx, rental)
	})

	if log.ErrorUpdateRental(l.logger, err, "Failed update rental", traceID, idRental) {
		span.RecordError(err)
		return entity.Rental{}, err
	}

	log.InfoUpdateRental(l.logger, "Updated the rental", traceID, idRental)
	return rental, nil
}

// DeleteRental returns the books to the available pool and queues the return
// notification in the same transaction.
func (l *libraryImpl) DeleteRental(ctx context.Context, idRental string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("rental_id", idRental))
	log.InfoDeleteRental(l.logger, "Start of delete rental", traceID, idRental)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		rental, txErr := l.rentalsRepository.GetRental(ctx, idRental)

		if txErr != nil {
			return txErr
		}

		if txErr = l.rentalsRepository.DeleteRental(ctx, idRental); txErr != nil {
			return txErr
		}

		return l.sendRentalMessage(ctx, repository.OutboxKindReturn, rental)
	})

	if log.ErrorDeleteRental(l.logger, err, "Failed delete rental", traceID, idRental) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteRental(l.logger, "Deleted the rental", traceID, idRental)
	return nil
}

func (l *libraryImpl) ListAvailableBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	books, err := l.booksRepository.ListBooks(ctx)

	if log.Error(l.logger, err, "Failed list available books", traceID, log.ListAvailableBooks) {
		span.RecordError(err)
		return nil, err
	}

	rentedIDs, err := l.rentalsRepository.RentedBookIDs(ctx)

	if log.Error(l.logger, err, "Failed list available books", traceID, log.ListAvailableBooks) {
		span.RecordError(err)
		return nil, err
	}

	return lo.Filter(books, func(b entity.Book, _ int) bool {
		return !lo.Contains(rentedIDs, b.ID)
	}), nil
}

func (l *libraryImpl) ListRentedBooks(ctx context.Context) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	rentedIDs, err := l.rentalsRepository.RentedBookIDs(ctx)

	if log.Error(l.logger, err, "Failed list rented books", traceID, log.ListRentedBooks) {
		span.RecordError(err)
		return nil, err
	}

	if len(rentedIDs) == 0 {
		return make([]entity.Book, 0), nil
	}

	books, err := l.booksRepository.GetBooksByIDs(ctx, rentedIDs)

	if log.Error(l.logger, err, "Failed list rented books", traceID, log.ListRentedBooks) {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

func (l *libraryImpl) ListRenterBooks(ctx context.Context, idRenter string) ([]entity.Book, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("renter_id", idRenter))

	if _, err := l.rentersRepository.GetRenter(ctx, idRenter); err != nil {
		log.Error(l.logger, err, "Failed list renter books", traceID, log.ListRenterBooks)
		span.RecordError(err)
		return nil, err
	}

	rentals, err := l.rentalsRepository.ListRenterRentals(ctx, idRenter)

	if log.Error(l.logger, err, "Failed list renter books", traceID, log.ListRenterBooks) {
		span.RecordError(err)
		return nil, err
	}

	bookIDs := lo.Uniq(lo.FlatMap(rentals, func(r entity.Rental, _ int) []string {
		return r.BookIDs
	}))

	if len(bookIDs) == 0 {
		return make([]entity.Book, 0), nil
	}

	books, err := l.booksRepository.GetBooksByIDs(ctx, bookIDs)

	if log.Error(l.logger, err, "Failed list renter books", traceID, log.ListRenterBooks) {
		span.RecordError(err)
		return nil, err
	}

	return books, nil
}

// resolveBooks rejects an empty set and verifies that every id exists.
func (l *libraryImpl) resolveBooks(ctx context.Context, bookIDs []string) ([]string, error) {
	ids := lo.Uniq(bookIDs)

	if len(ids) == 0 {
		return nil, entity.ErrNoBooks
	}

	books, err := l.booksRepository.GetBooksByIDs(ctx, ids)

	if err != nil {
		return nil, err
	}

	if len(books) != len(ids) {
		return nil, entity.ErrBooksNotFound
	}

	return ids, nil
}

func (l *libraryImpl) sendRentalMessage(ctx context.Context, kind repository.OutboxKind, rental entity.Rental) error {
	serialized, err := json.Marshal(rental)

	if err != nil {
		return err
	}

	idempotencyKey := kind.String() + "_" + rental.ID
	return l.outboxRepository.SendMessage(ctx, idempotencyKey, kind, serialized)
}
