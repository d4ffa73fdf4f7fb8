package entity

import (
	"errors"
	"fmt"
)

// The four base kinds classify every domain error. Specific errors wrap one
// of them, so callers can branch with errors.Is on either the exact error or
// its kind (the controller maps kinds to HTTP statuses).
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrInvariantViolation = errors.New("invariant violation")
)

var (
	ErrAuthorNotFound = fmt.Errorf("author %w", ErrNotFound)
	ErrBookNotFound   = fmt.Errorf("book %w", ErrNotFound)
	ErrRenterNotFound = fmt.Errorf("renter %w", ErrNotFound)
	ErrRentalNotFound = fmt.Errorf("rental %w", ErrNotFound)

	ErrAuthorsNotFound = fmt.Errorf("%w: one or more authors not found", ErrValidation)
	ErrBooksNotFound   = fmt.Errorf("%w: one or more books not found", ErrValidation)

	ErrBlankName  = fmt.Errorf("%w: name must not be blank", ErrValidation)
	ErrBlankPhone = fmt.Errorf("%w: phone must not be blank", ErrValidation)

	ErrInvalidSex             = fmt.Errorf("%w: sex must be one of: masculine, feminine, other", ErrValidation)
	ErrInvalidBirthDate       = fmt.Errorf("%w: birth date must be yyyy-mm-dd and not in the future", ErrValidation)
	ErrInvalidPublicationDate = fmt.Errorf("%w: publication date must be yyyy-mm-dd", ErrValidation)

	ErrNoAuthors = fmt.Errorf("%w: a book must have at least one author", ErrValidation)
	ErrNoBooks   = fmt.Errorf("%w: a rental must contain at least one book", ErrValidation)

	ErrAuthorNotOnBook = fmt.Errorf("%w: author is not associated with this book", ErrValidation)

	ErrCPFTaken   = fmt.Errorf("%w: cpf already registered", ErrConflict)
	ErrEmailTaken = fmt.Errorf("%w: email already registered", ErrConflict)
	ErrISBNTaken  = fmt.Errorf("%w: isbn already registered", ErrConflict)

	ErrAuthorAlreadyOnBook = fmt.Errorf("%w: author already associated with this book", ErrConflict)
	ErrBooksAlreadyRented  = fmt.Errorf("%w: one or more books are already rented", ErrConflict)
	ErrBookRented          = fmt.Errorf("%w: book cannot be deleted while rented", ErrConflict)
	ErrAuthorHasBooks      = fmt.Errorf("%w: cannot delete an author with associated books", ErrConflict)
	ErrRenterHasRentals    = fmt.Errorf("%w: cannot delete a renter with open rentals", ErrConflict)

	ErrLastAuthor = fmt.Errorf("%w: a book cannot be left without an author, delete the book instead", ErrInvariantViolation)
)
