package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/log"
	"github.com/project/biblioteca/internal/usecase/library"
	"github.com/project/biblioteca/internal/validation"
)

var booksDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "biblioteca_books_duration_ms",
	Help:    "Duration of book operations in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

func init() {
	prometheus.MustRegister(booksDuration)
}

type createBookRequest struct {
	Title       string   `json:"title"`
	ISBN        string   `json:"isbn"`
	PublishedAt string   `json:"publishedAt"`
	AuthorIDs   []string `json:"authorIds"`
}

func (r createBookRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Title, validation.NameRule...),
		ozzo.Field(&r.ISBN, validation.ISBNRule...),
		ozzo.Field(&r.PublishedAt, ozzo.Required),
	)
}

type updateBookRequest struct {
	Title       *string   `json:"title"`
	ISBN        *string   `json:"isbn"`
	PublishedAt *string   `json:"publishedAt"`
	AuthorIDs   *[]string `json:"authorIds"`
}

type bookResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ISBN        string    `json:"isbn"`
	PublishedAt string    `json:"publishedAt"`
	AuthorIDs   []string  `json:"authorIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toBookResponse(book entity.Book) bookResponse {
	return bookResponse{
		ID:          book.ID,
		Title:       book.Title,
		ISBN:        book.ISBN,
		PublishedAt: formatDate(book.PublishedAt),
		AuthorIDs:   book.AuthorIDs,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}
}

func toBookResponses(books []entity.Book) []bookResponse {
	responses := make([]bookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, toBookResponse(book))
	}
	return responses
}

func (i *implementation) listBooks(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.ListBooks)()

	span := trace.SpanFromContext(r.Context())

	books, err := i.booksUseCase.ListBooks(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (i *implementation) getBook(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.GetBook)()

	span := trace.SpanFromContext(r.Context())
	idBook := chi.URLParam(r, "id")

	book, err := i.booksUseCase.GetBook(r.Context(), idBook)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (i *implementation) listAuthorBooks(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.ListAuthorBooks)()

	span := trace.SpanFromContext(r.Context())
	idAuthor := chi.URLParam(r, "authorID")

	books, err := i.booksUseCase.ListAuthorBooks(r.Context(), idAuthor)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (i *implementation) createBook(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.CreateBook)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var req createBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorCreateBook(i.logger, err, "Got malformed request body", traceID, req.Title, req.AuthorIDs) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := req.Validate(); log.ErrorCreateBook(i.logger, err, "Got invalid request", traceID, req.Title, req.AuthorIDs) {
		span.SetAttributes(attribute.String("book_title", req.Title))
		span.SetAttributes(attribute.StringSlice("author_ids", req.AuthorIDs))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := i.booksUseCase.CreateBook(r.Context(), library.BookInput{
		Title:       req.Title,
		ISBN:        req.ISBN,
		PublishedAt: req.PublishedAt,
		AuthorIDs:   req.AuthorIDs,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, toBookResponse(book))
}

func (i *implementation) updateBook(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.UpdateBook)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()
	idBook := chi.URLParam(r, "id")

	var req updateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorUpdateBook(i.logger, err, "Got malformed request body", traceID, idBook) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	book, err := i.booksUseCase.UpdateBook(r.Context(), idBook, library.BookUpdate{
		Title:       req.Title,
		ISBN:        req.ISBN,
		PublishedAt: req.PublishedAt,
		AuthorIDs:   req.AuthorIDs,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (i *implementation) deleteBook(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.DeleteBook)()

	span := trace.SpanFromContext(r.Context())
	idBook := chi.URLParam(r, "id")

	if err := i.booksUseCase.DeleteBook(r.Context(), idBook); err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (i *implementation) addBookAuthor(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.AddBookAuthor)()

	span := trace.SpanFromContext(r.Context())
	idBook := chi.URLParam(r, "id")
	idAuthor := chi.URLParam(r, "authorID")

	book, err := i.booksUseCase.AddBookAuthor(r.Context(), idBook, idAuthor)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}

func (i *implementation) removeBookAuthor(w http.ResponseWriter, r *http.Request) {
	defer observe(booksDuration, log.RemoveBookAuthor)()

	span := trace.SpanFromContext(r.Context())
	idBook := chi.URLParam(r, "id")
	idAuthor := chi.URLParam(r, "authorID")

	book, err := i.booksUseCase.RemoveBookAuthor(r.Context(), idBook, idAuthor)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponse(book))
}
