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

func (l *libraryImpl) ListRenters(ctx context.Context) ([]entity.Renter, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()

	renters, err := l.rentersRepository.ListRenters(ctx)

	if log.Error(l.logger, err, "Failed list renters", traceID, log.ListRenters) {
		span.RecordError(err)
		return nil, err
	}

	return renters, nil
}

// CreateRenter checks cpf uniqueness, then email uniqueness, then the birth
// date and sex, in that order.
func (l *libraryImpl) CreateRenter(ctx context.Context, input RenterInput) (entity.Renter, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	log.InfoCreateRenter(l.logger, "Start of create renter", traceID, input.Name)

	var renter entity.Renter
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		taken, txErr := l.rentersRepository.RenterCPFTaken(ctx, input.CPF, "")

		if txErr != nil {
			return txErr
		}

		if taken {
			return entity.ErrCPFTaken
		}

		taken, txErr = l.rentersRepository.RenterEmailTaken(ctx, input.Email, "")

		if txErr != nil {
			return txErr
		}

		if taken {
			return entity.ErrEmailTaken
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

		renter, txErr = l.rentersRepository.CreateRenter(ctx, entity.Renter{
			ID:        uuid.NewString(),
			Name:      input.Name,
			Sex:       input.Sex,
			Phone:     input.Phone,
			Email:     input.Email,
			BirthDate: birthDate,
			CPF:       input.CPF,
		})

		return txErr
	})

	if log.ErrorCreateRenter(l.logger, err, "Failed create renter", traceID, input.Name) {
		span.SetAttributes(attribute.String("renter_name", input.Name))
		span.RecordError(err)
		return entity.Renter{}, err
	}

	renter.RentalIDs = make([]string, 0)
	span.SetAttributes(attribute.String("renter_id", renter.ID))
	log.InfoCreateRenter(l.logger, "Created the renter", traceID, input.Name, renter.ID)
	return renter, nil
}

func (l *libraryImpl) UpdateRenter(ctx context.Context, idRenter string, upd RenterUpdate) (entity.Renter, error) {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("renter_id", idRenter))
	log.InfoUpdateRenter(l.logger, "Start of update renter", traceID, idRenter)

	var renter entity.Renter
	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		var txErr error
		renter, txErr = l.rentersRepository.GetRenter(ctx, idRenter)

		if txErr != nil {
			return txErr
		}

		if upd.CPF != nil {
			if txErr = validation.CPF(*upd.CPF); txErr != nil {
				return txErr
			}

			taken, takenErr := l.rentersRepository.RenterCPFTaken(ctx, *upd.CPF, idRenter)

			if takenErr != nil {
				return takenErr
			}

			if taken {
				return entity.ErrCPFTaken
			}

			renter.CPF = *upd.CPF
		}

		if upd.Email != nil {
			if txErr = validation.Email(*upd.Email); txErr != nil {
				return txErr
			}

			taken, takenErr := l.rentersRepository.RenterEmailTaken(ctx, *upd.Email, idRenter)

			if takenErr != nil {
				return takenErr
			}

			if taken {
				return entity.ErrEmailTaken
			}

			renter.Email = *upd.Email
		}

		if upd.BirthDate != nil {
			renter.BirthDate, txErr = validation.ParseBirthDate(*upd.BirthDate)

			if txErr != nil {
				return txErr
			}
		}

		if upd.Sex != nil {
			if txErr = validation.Sex(*upd.Sex); txErr != nil {
				return txErr
			}

			renter.Sex = *upd.Sex
		}

		if upd.Name != nil {
			if strings.TrimSpace(*upd.Name) == "" {
				return entity.ErrBlankName
			}

			renter.Name = *upd.Name
		}

		if upd.Phone != nil {
			if strings.TrimSpace(*upd.Phone) == "" {
				return entity.ErrBlankPhone
			}

			renter.Phone = *upd.Phone
		}

		return l.rentersRepository.UpdateRenter(ctx, renter)
	})

	if log.ErrorUpdateRenter(l.logger, err, "Failed update renter", traceID, idRenter) {
		span.RecordError(err)
		return entity.Renter{}, err
	}

	log.InfoUpdateRenter(l.logger, "Updated the renter", traceID, idRenter)
	return renter, nil
}

func (l *libraryImpl) DeleteRenter(ctx context.Context, idRenter string) error {
	span := trace.SpanFromContext(ctx)
	traceID := span.SpanContext().TraceID().String()
	span.SetAttributes(attribute.String("renter_id", idRenter))
	log.InfoDeleteRenter(l.logger, "Start of delete renter", traceID, idRenter)

	err := l.transactor.WithTx(ctx, func(ctx context.Context) error {
		if _, txErr := l.rentersRepository.GetRenter(ctx, idRenter); txErr != nil {
			return txErr
		}

		hasRentals, txErr := l.rentalsRepository.RenterHasRentals(ctx, idRenter)

		if txErr != nil {
			return txErr
		}

		if hasRentals {
			return entity.ErrRenterHasRentals
		}

		return l.rentersRepository.DeleteRenter(ctx, idRenter)
	})

	if log.ErrorDeleteRenter(l.logger, err, "Failed delete renter", traceID, idRenter) {
		span.RecordError(err)
		return err
	}

	log.InfoDeleteRenter(l.logger, "Deleted the renter", traceID, idRenter)
	return nil
}
