package repository

import (
	"context"
	"time"

	"github.com/project/biblioteca/internal/entity"
)

type (
	AuthorRepository interface {
		CreateAuthor(ctx context.Context, author entity.Author) (entity.Author, error)
		UpdateAuthor(ctx context.Context, updAuthor entity.Author) error
		DeleteAuthor(ctx context.Context, idAuthor string) error
		GetAuthor(ctx context.Context, idAuthor string) (entity.Author, error)
		GetAuthorByName(ctx context.Context, name string) (entity.Author, error)
		ListAuthors(ctx context.Context) ([]entity.Author, error)
		GetAuthorsByIDs(ctx context.Context, ids []string) ([]entity.Author, error)
		AuthorCPFTaken(ctx context.Context, cpf, excludeID string) (bool, error)
	}

	BooksRepository interface {
		CreateBook(ctx context.Context, book entity.Book) (entity.Book, error)
		UpdateBook(ctx context.Context, updBook entity.Book) error
		DeleteBook(ctx context.Context, idBook string) error
		GetBook(ctx context.Context, idBook string) (entity.Book, error)
		ListBooks(ctx context.Context) ([]entity.Book, error)
		GetBooksByIDs(ctx context.Context, ids []string) ([]entity.Book, error)
		GetAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error)
		BookISBNTaken(ctx context.Context, isbn, excludeID string) (bool, error)
	}

	RentersRepository interface {
		CreateRenter(ctx context.Context, renter entity.Renter) (entity.Renter, error)
		UpdateRenter(ctx context.Context, updRenter entity.Renter) error
		DeleteRenter(ctx context.Context, idRenter string) error
		GetRenter(ctx context.Context, idRenter string) (entity.Renter, error)
		ListRenters(ctx context.Context) ([]entity.Renter, error)
		RenterCPFTaken(ctx context.Context, cpf, excludeID string) (bool, error)
		RenterEmailTaken(ctx context.Context, email, excludeID string) (bool, error)
	}

	RentalsRepository interface {
		CreateRental(ctx context.Context, rental entity.Rental) (entity.Rental, error)
		UpdateRental(ctx context.Context, updRental entity.Rental) error
		DeleteRental(ctx context.Context, idRental string) error
		GetRental(ctx context.Context, idRental string) (entity.Rental, error)
		ListRentals(ctx context.Context) ([]entity.Rental, error)
		ListRenterRentals(ctx context.Context, idRenter string) ([]entity.Rental, error)
		RentedBookIDs(ctx context.Context) ([]string, error)
		AnyBookRented(ctx context.Context, bookIDs []string, excludeRentalID string) (bool, error)
		BookRented(ctx context.Context, idBook string) (bool, error)
		RenterHasRentals(ctx context.Context, idRenter string) (bool, error)
	}

	OutboxRepository interface {
		SendMessage(ctx context.Context, idempotencyKey string, kind OutboxKind, message []byte) error
		GetMessages(ctx context.Context, batchSize int, inProgressTTL time.Duration) ([]OutboxData, error)
		MarkAs(ctx context.Context, idempotencyKeys []string, s Status) error
	}

	OutboxData struct {
		IdempotencyKey string
		Kind           OutboxKind
		RawData        []byte
	}

	Transactor interface {
		WithTx(ctx context.Context, function func(ctx context.Context) error) error
	}
)

type OutboxKind int

const (
	OutboxKindUndefined OutboxKind = iota
	// OutboxKindRental is emitted when a rental is created.
	OutboxKindRental
	// OutboxKindReturn is emitted when a rental is deleted and its books
	// become available again.
	OutboxKindReturn
)

func (o OutboxKind) String() string {
	switch o {
	case OutboxKindRental:
		return "rental"
	case OutboxKindReturn:
		return "return"
	default:
		return "undefined"
	}
}
