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

var rentersDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "biblioteca_renters_duration_ms",
	Help:    "Duration of renter operations in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"operation"})

func init() {
	prometheus.MustRegister(rentersDuration)
}

type createRenterRequest struct {
	Name      string `json:"name"`
	Sex       string `json:"sex"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
	CPF       string `json:"cpf"`
}

func (r createRenterRequest) Validate() error {
	return ozzo.ValidateStruct(&r,
		ozzo.Field(&r.Name, validation.NameRule...),
		ozzo.Field(&r.Phone, validation.NameRule...),
		ozzo.Field(&r.Email, validation.EmailRule...),
		ozzo.Field(&r.CPF, validation.CPFRule...),
		ozzo.Field(&r.BirthDate, ozzo.Required),
	)
}

type updateRenterRequest struct {
	Name      *string `json:"name"`
	Sex       *string `json:"sex"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
	BirthDate *string `json:"birthDate"`
	CPF       *string `json:"cpf"`
}

type renterResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sex       string    `json:"sex,omitempty"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	BirthDate string    `json:"birthDate"`
	CPF       string    `json:"cpf"`
	RentalIDs []string  `json:"rentalIds"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toRenterResponse(renter entity.Renter) renterResponse {
	return renterResponse{
		ID:        renter.ID,
		Name:      renter.Name,
		Sex:       renter.Sex,
		Phone:     renter.Phone,
		Email:     renter.Email,
		BirthDate: formatDate(renter.BirthDate),
		CPF:       renter.CPF,
		RentalIDs: renter.RentalIDs,
		CreatedAt: renter.CreatedAt,
		UpdatedAt: renter.UpdatedAt,
	}
}

func (i *implementation) listRenters(w http.ResponseWriter, r *http.Request) {
	defer observe(rentersDuration, log.ListRenters)()

	span := trace.SpanFromContext(r.Context())

	renters, err := i.rentersUseCase.ListRenters(r.Context())

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	responses := make([]renterResponse, 0, len(renters))
	for _, renter := range renters {
		responses = append(responses, toRenterResponse(renter))
	}
	writeJSON(w, http.StatusOK, responses)
}

func (i *implementation) createRenter(w http.ResponseWriter, r *http.Request) {
	defer observe(rentersDuration, log.CreateRenter)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()

	var req createRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorCreateRenter(i.logger, err, "Got malformed request body", traceID, req.Name) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if err := req.Validate(); log.ErrorCreateRenter(i.logger, err, "Got invalid request", traceID, req.Name) {
		span.SetAttributes(attribute.String("renter_name", req.Name))
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	renter, err := i.rentersUseCase.CreateRenter(r.Context(), library.RenterInput{
		Name:      req.Name,
		Sex:       req.Sex,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		CPF:       req.CPF,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusCreated, toRenterResponse(renter))
}

func (i *implementation) updateRenter(w http.ResponseWriter, r *http.Request) {
	defer observe(rentersDuration, log.UpdateRenter)()

	span := trace.SpanFromContext(r.Context())
	traceID := span.SpanContext().TraceID().String()
	idRenter := chi.URLParam(r, "id")

	var req updateRenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); log.ErrorUpdateRenter(i.logger, err, "Got malformed request body", traceID, idRenter) {
		span.RecordError(err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	renter, err := i.rentersUseCase.UpdateRenter(r.Context(), idRenter, library.RenterUpdate{
		Name:      req.Name,
		Sex:       req.Sex,
		Phone:     req.Phone,
		Email:     req.Email,
		BirthDate: req.BirthDate,
		CPF:       req.CPF,
	})

	if err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	writeJSON(w, http.StatusOK, toRenterResponse(renter))
}

func (i *implementation) deleteRenter(w http.ResponseWriter, r *http.Request) {
	defer observe(rentersDuration, log.DeleteRenter)()

	span := trace.SpanFromContext(r.Context())
	idRenter := chi.URLParam(r, "id")

	if err := i.rentersUseCase.DeleteRenter(r.Context(), idRenter); err != nil {
		span.RecordError(err)
		writeError(w, convertErr(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
