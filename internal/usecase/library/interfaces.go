package library

import (
	"context"

	"github.com/project/biblioteca/internal/entity"
)

type (
	AuthorsUseCase interface {
		ListAuthors(ctx context.Context) ([]entity.Author, error)
		CreateAuthor(ctx context.Context, input AuthorInput) (entity.Author, error)
		GetAuthorByName(ctx context.Context, name string) (entity.Author, error)
		UpdateAuthor(ctx context.Context, idAuthor string, upd AuthorUpdate) (entity.Author, error)
		DeleteAuthor(ctx context.Context, idAuthor string) error
	}

	BooksUseCase interface {
		ListBooks(ctx context.Context) ([]entity.Book, error)
		GetBook(ctx context.Context, idBook string) (entity.Book, error)
		ListAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error)
		CreateBook(ctx context.Context, input BookInput) (entity.Book, error)
		UpdateBook(ctx context.Context, idBook string, upd BookUpdate) (entity.Book, error)
		DeleteBook(ctx context.Context, idBook string) error
		AddBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error)
		RemoveBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error)
	}

	RentersUseCase interface {
		ListRenters(ctx context.Context) ([]entity.Renter, error)
		CreateRenter(ctx context.Context, input RenterInput) (entity.Renter, error)
		UpdateRenter(ctx context.Context, idRenter string, upd RenterUpdate) (entity.Renter, error)
		DeleteRenter(ctx context.Context, idRenter string) error
	}

	RentalsUseCase interface {
		ListRentals(ctx context.Context) ([]entity.Rental, error)
		CreateRental(ctx context.Context, input RentalInput) (entity.Rental, error)
		UpdateRental(ctx context.Context, idRental string, upd RentalUpdate) (entity.Rental, error)
		DeleteRental(ctx context.Context, idRental string) error
		ListAvailableBooks(ctx context.Context) ([]entity.Book, error)
		ListRentedBooks(ctx context.Context) ([]entity.Book, error)
		ListRenterBooks(ctx context.Context, idRenter string) ([]entity.Book, error)
	}
)

// Dates travel as yyyy-mm-dd strings so that the lifecycle can run its checks
// in order: uniqueness first, then date validity, then the sex enumeration.
type (
	AuthorInput struct {
		Name      string
		Sex       string
		BirthDate string
		CPF       string
	}

	// Update structs carry nil for fields the caller did not send.
	AuthorUpdate struct {
		Name      *string
		Sex       *string
		BirthDate *string
		CPF       *string
	}

	BookInput struct {
		Title       string
		ISBN        string
		PublishedAt string
		AuthorIDs   []string
	}

	BookUpdate struct {
		Title       *string
		ISBN        *string
		PublishedAt *string
		AuthorIDs   *[]string
	}

	RenterInput struct {
		Name      string
		Sex       string
		Phone     string
		Email     string
		BirthDate string
		CPF       string
	}

	RenterUpdate struct {
		Name      *string
		Sex       *string
		Phone     *string
		Email     *string
		BirthDate *string
		CPF       *string
	}

	RentalInput struct {
		RenterID string
		BookIDs  []string
	}

	RentalUpdate struct {
		RenterID *string
		BookIDs  *[]string
	}
)
