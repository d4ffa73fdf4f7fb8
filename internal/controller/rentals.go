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
)

var rentalsDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "biblioteca_rentals_duration_ms",
	Help:    "Duration of rental operations in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

func init() {
	prometheus.MustRegister(rentalsDuration)
}

type createRentalRequest struct {
	RenterID string   `json:"renterId"`
	BookIDs  []string `json:"bookIds"`
}

func (r createRentalRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.RenterID, ozzo.Required),
	)
}

type updateRentalRequest struct {
	RenterID *string   `json:"renterId"`
	BookIDs  *[]string `json:"bookIds"`
}

type rentalResponse struct {
	ID           string    `json:"id"`
	RenterID     string    `json:"renterId"`
	CheckoutDate string    `json:"checkoutDate"`
	DueDate      string    `json:"dueDate"`
	BookIDs      []string  `json:"bookIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toRentalResponse(rental entity.Rental) rentalResponse {
	return rentalResponse{
		ID:           rental.ID,
		RenterID:     rental.RenterID,
		CheckoutDate: formatDate(rental.CheckoutDate),
		DueDate:      formatDate(rental.DueDate),
		BookIDs:      rental.BookIDs,
		CreatedAt:    rental.CreatedAt,
		UpdatedAt:    rental.UpdatedAt,
	}
}

func (i *implementation) listRentals(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.ListRentals)()

	span := trace.SpanFromContext(r.Context())

	rentals, err := i.rentalsUseCase.ListRentals(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	responses := make([]rentalResponse, 0, len(rentals))
	for _, rental := range rentals {
		responses = append(responses, toRentalResponse(rental))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (i *implementation) createRental(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.CreateRental)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var req createRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorCreateRental(i.logger, err, "Got malformed request body", traceID, req.RenterID, req.BookIDs) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := req.Validate(); log.ErrorCreateRental(i.logger, err, "Got invalid request", traceID, req.RenterID, req.BookIDs) {
		span.SetAttributes(attribute.String("renter_id", req.RenterID))
		span.SetAttributes(attribute.StringSlice("book_ids", req.BookIDs))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rental, err := i.rentalsUseCase.CreateRental(r.Context(), library.RentalInput{
		RenterID: req.RenterID,
		BookIDs:  req.BookIDs,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, toRentalResponse(rental))
}

func (i *implementation) updateRental(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.UpdateRental)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()
	idRental := chi.URLParam(r, "id")

	var req updateRentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorUpdateRental(i.logger, err, "Got malformed request body", traceID, idRental) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	rental, err := i.rentalsUseCase.UpdateRental(r.Context(), idRental, library.RentalUpdate{
		RenterID: req.RenterID,
		BookIDs:  req.BookIDs,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toRentalResponse(rental))
}

func (i *implementation) deleteRental(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.DeleteRental)()

	span := trace.SpanFromContext(r.Context())
	idRental := chi.URLParam(r, "id")

	if err := i.rentalsUseCase.DeleteRental(r.Context(), idRental); err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (i *implementation) listAvailableBooks(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.ListAvailableBooks)()

	span := trace.SpanFromContext(r.Context())

	books, err := i.rentalsUseCase.ListAvailableBooks(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (i *implementation) listRentedBooks(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.ListRentedBooks)()

	span := trace.SpanFromContext(r.Context())

	books, err := i.rentalsUseCase.ListRentedBooks(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}

func (i *implementation) listRenterBooks(w http.ResponseWriter, r *http.Request) {
	defer observe(rentalsDuration, log.ListRenterBooks)()

	span := trace.SpanFromContext(r.Context())
	idRenter := chi.URLParam(r, "renterID")

	books, err := i.rentalsUseCase.ListRenterBooks(r.Context(), idRenter)

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toBookResponses(books))
}
