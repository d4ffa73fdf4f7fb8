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

var authorsDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "biblioteca_authors_duration_ms",
	Help:    "Duration of author operations in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

func init() {
	prometheus.MustRegister(authorsDuration)
}

type createAuthorRequest struct {
	Name      string `json:"name"`
	Sex       string `json:"sex"`
	BirthDate string `json:"birthDate"`
	CPF       string `json:"cpf"`
}

func (r createAuthorRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Name, validation.NameRule...),
		ozzo.Field(&r.CPF, validation.CPFRule...),
		ozzo.Field(&r.BirthDate, ozzo.Required),
	)
}

type updateAuthorRequest struct {
	Name      *string `json:"name"`
	Sex       *string `json:"sex"`
	BirthDate *string `json:"birthDate"`
	CPF       *string `json:"cpf"`
}

type authorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sex       string    `json:"sex,omitempty"`
	BirthDate string    `json:"birthDate"`
	CPF       string    `json:"cpf"`
	BookIDs   []string  `json:"bookIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toAuthorResponse(author entity.Author) authorResponse {
	return authorResponse{
		ID:        author.ID,
		Name:      author.Name,
		Sex:       author.Sex,
		BirthDate: formatDate(author.BirthDate),
		CPF:       author.CPF,
		BookIDs:   author.BookIDs,
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}
}

func formatDate(t time.Time) string {
	return t.Format(validation.DateLayout)
}

func (i *implementation) listAuthors(w http.ResponseWriter, r *http.Request) {
	defer observe(authorsDuration, log.ListAuthors)()

	span := trace.SpanFromContext(r.Context())

	authors, err := i.authorsUseCase.ListAuthors(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	responses := make([]authorResponse, 0, len(authors))
	for _, author := range authors {
		responses = append(responses, toAuthorResponse(author))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (i *implementation) createAuthor(w http.ResponseWriter, r *http.Request) {
	defer observe(authorsDuration, log.CreateAuthor)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var req createAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorCreateAuthor(i.logger, err, "Got malformed request body", traceID, req.Name) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := req.Validate(); log.ErrorCreateAuthor(i.logger, err, "Got invalid request", traceID, req.Name) {
		span.SetAttributes(attribute.String("author_name", req.Name))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	author, err := i.authorsUseCase.CreateAuthor(r.Context(), library.AuthorInput{
		Name:      req.Name,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		CPF:       req.CPF,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, toAuthorResponse(author))
}

func (i *implementation) getAuthorByName(w http.ResponseWriter, r *http.Request) {
	defer observe(authorsDuration, log.GetAuthorByName)()

	span := trace.SpanFromContext(r.Context())
	name := chi.URLParam(r, "name")

	author, err := i.authorsUseCase.GetAuthorByName(r.Context(), name)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorResponse(author))
}

func (i *implementation) updateAuthor(w http.ResponseWriter, r *http.Request) {
	defer observe(authorsDuration, log.UpdateAuthor)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()
	idAuthor := chi.URLParam(r, "id")

	var req updateAuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorUpdateAuthor(i.logger, err, "Got malformed request body", traceID, idAuthor) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	author, err := i.authorsUseCase.UpdateAuthor(r.Context(), idAuthor, library.AuthorUpdate{
		Name:      req.Name,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		CPF:       req.CPF,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toAuthorResponse(author))
}

func (i *implementation) deleteAuthor(w http.ResponseWriter, r *http.Request) {
	defer observe(authorsDuration, log.DeleteAuthor)()

	span := trace.SpanFromContext(r.Context())
	idAuthor := chi.URLParam(r, "id")

	if err := i.authorsUseCase.DeleteAuthor(r.Context(), idAuthor); err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
