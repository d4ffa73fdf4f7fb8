// Package controller exposes the lifecycles over REST: thin handlers that
// decode and validate the request shape, call a usecase and map domain error
// kinds onto HTTP statuses.
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/usecase/library"
)

type (
	AuthorsUseCase interface {
		ListAuthors(ctx context.Context) ([]entity.Author, error)
		CreateAuthor(ctx context.Context, input library.AuthorInput) (entity.Author, error)
		GetAuthorByName(ctx context.Context, name string) (entity.Author, error)
		UpdateAuthor(ctx context.Context, idAuthor string, upd library.AuthorUpdate) (entity.Author, error)
		DeleteAuthor(ctx context.Context, idAuthor string) error
	}

	BooksUseCase interface {
		ListBooks(ctx context.Context) ([]entity.Book, error)
		GetBook(ctx context.Context, idBook string) (entity.Book, error)
		ListAuthorBooks(ctx context.Context, idAuthor string) ([]entity.Book, error)
		CreateBook(ctx context.Context, input library.BookInput) (entity.Book, error)
		UpdateBook(ctx context.Context, idBook string, upd library.BookUpdate) (entity.Book, error)
		DeleteBook(ctx context.Context, idBook string) error
		AddBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error)
		RemoveBookAuthor(ctx context.Context, idBook, idAuthor string) (entity.Book, error)
	}

	RentersUseCase interface {
		ListRenters(ctx context.Context) ([]entity.Renter, error)
		CreateRenter(ctx context.Context, input library.RenterInput) (entity.Renter, error)
		UpdateRenter(ctx context.Context, idRenter string, upd library.RenterUpdate) (entity.Renter, error)
		DeleteRenter(ctx context.Context, idRenter string) error
	}

	RentalsUseCase interface {
		ListRentals(ctx context.Context) ([]entity.Rental, error)
		CreateRental(ctx context.Context, input library.RentalInput) (entity.Rental, error)
		UpdateRental(ctx context.Context, idRental string, upd library.RentalUpdate) (entity.Rental, error)
		DeleteRental(ctx context.Context, idRental string) error
		ListAvailableBooks(ctx context.Context) ([]entity.Book, error)
		ListRentedBooks(ctx context.Context) ([]entity.Book, error)
		ListRenterBooks(ctx context.Context, idRenter string) ([]entity.Book, error)
	}
)

type implementation struct {
	logger         *zap.Logger
	authorsUseCase AuthorsUseCase
	booksUseCase   BooksUseCase
	rentersUseCase RentersUseCase
	rentalsUseCase RentalsUseCase
}

func New(
	logger *zap.Logger,
	authorsUseCase AuthorsUseCase,
	booksUseCase BooksUseCase,
	rentersUseCase RentersUseCase,
	rentalsUseCase RentalsUseCase,
) *implementation {
	return &implementation{
		logger:         logger,
		authorsUseCase: authorsUseCase,
		booksUseCase:   booksUseCase,
		rentersUseCase: rentersUseCase,
		rentalsUseCase: rentalsUseCase,
	}
}

func (i *implementation) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(spanMiddleware)

	r.Route("/authors", func(r chi.Router) {
		r.Get("/", i.listAuthors)
		r.Post("/", i.createAuthor)
		r.Get("/by-name/{name}", i.getAuthorByName)
		r.Patch("/{id}", i.updateAuthor)
		r.Delete("/{id}", i.deleteAuthor)
	})

	r.Route("/books", func(r chi.Router) {
		r.Get("/", i.listBooks)
		r.Post("/", i.createBook)
		r.Get("/by-author/{authorID}", i.listAuthorBooks)
		r.Get("/{id}", i.getBook)
		r.Put("/{id}", i.updateBook)
		r.Delete("/{id}", i.deleteBook)
		r.Put("/{id}/authors/{authorID}", i.addBookAuthor)
		r.Delete("/{id}/authors/{authorID}", i.removeBookAuthor)
	})

	r.Route("/renters", func(r chi.Router) {
		r.Get("/", i.listRenters)
		r.Post("/", i.createRenter)
		r.Patch("/{id}", i.updateRenter)
		r.Delete("/{id}", i.deleteRenter)
	})

	r.Route("/rentals", func(r chi.Router) {
		r.Get("/", i.listRentals)
		r.Post("/", i.createRental)
		r.Put("/{id}", i.updateRental)
		r.Delete("/{id}", i.deleteRental)
		r.Get("/books/available", i.listAvailableBooks)
		r.Get("/books/rented", i.listRentedBooks)
		r.Get("/renters/{renterID}/books", i.listRenterBooks)
	})

	return r
}

func spanMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx, span := otel.Tracer("biblioteca").Start(req.Context(), req.Method+" "+req.URL.Path)
		defer span.End()
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}

// convertErr maps the domain error kinds onto HTTP statuses.
func convertErr(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, entity.ErrInvariantViolation):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// observe times one handler invocation under the given operation label.
func observe(h *prometheus.HistogramVec, operation string) func() {
	start := time.Now()
	return func() {
		h.WithLabelValues(operation).Observe(float64(time.Since(start).Milliseconds()))
	}
}
