package controller

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/usecase/library"
)

func testRenter() entity.Renter {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return entity.Renter{
		ID:        "r1",
		Name:      "Maria Silva",
		Sex:       entity.SexFeminine,
		Phone:     "+5511999990000",
		Email:     "maria@example.com",
		BirthDate: time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		CPF:       "98765432100",
		RentalIDs: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateRenterHandler(t *testing.T) {
	t.Parallel()

	const validBody = `{"name":"Maria Silva","sex":"feminine","phone":"+5511999990000",` +
		`"email":"maria@example.com","birthDate":"1990-05-20","cpf":"98765432100"}`

	tests := []struct {
		name       string
		body       string
		usecaseErr error
		skipCall   bool
		wantStatus int
	}{
		{name: "created",
			body:       validBody,
			wantStatus: http.StatusCreated},

		{name: "invalid email shape",
			body:       `{"name":"Maria","phone":"+55","email":"maria","birthDate":"1990-05-20","cpf":"98765432100"}`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "blank phone",
			body:       `{"name":"Maria","email":"maria@example.com","birthDate":"1990-05-20","cpf":"98765432100"}`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "cpf already registered",
			body:       validBody,
			usecaseErr: entity.ErrCPFTaken,
			wantStatus: http.StatusConflict},

		{name: "email already registered",
			body:       validBody,
			usecaseErr: entity.ErrEmailTaken,
			wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			if !tt.skipCall {
				call := m.renters.EXPECT().CreateRenter(gomock.Any(), gomock.Any())
				if tt.usecaseErr != nil {
					call.Return(entity.Renter{}, tt.usecaseErr)
				} else {
					call.DoAndReturn(func(_ any, input library.RenterInput) (entity.Renter, error) {
						require.Equal(t, "98765432100", input.CPF)
						require.Equal(t, "maria@example.com", input.Email)
						return testRenter(), nil
					})
				}
			}

			rec := doRequest(t, h, http.MethodPost, "/renters/", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				requireErrorBody(t, rec)
				return
			}

			resp := decodeBody[renterResponse](t, rec)
			require.Equal(t, "r1", resp.ID)
			require.Equal(t, "1990-05-20", resp.BirthDate)
			require.Empty(t, resp.RentalIDs)
		})
	}
}

func TestUpdateRenterHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		usecaseErr error
		skipCall   bool
		wantStatus int
	}{
		{name: "updated",
			body:       `{"phone":"+5511888880000"}`,
			wantStatus: http.StatusOK},

		{name: "malformed json",
			body:       `{"phone":`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "renter missing",
			body:       `{"phone":"+5511888880000"}`,
			usecaseErr: entity.ErrRenterNotFound,
			wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			if !tt.skipCall {
				m.renters.EXPECT().UpdateRenter(gomock.Any(), "r1", gomock.Any()).
					Return(testRenter(), tt.usecaseErr)
			}

			rec := doRequest(t, h, http.MethodPatch, "/renters/r1", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteRenterHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", usecaseErr: entity.ErrRenterNotFound, wantStatus: http.StatusNotFound},
		{name: "open rentals", usecaseErr: entity.ErrRenterHasRentals, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.renters.EXPECT().DeleteRenter(gomock.Any(), "r1").Return(tt.usecaseErr)

			rec := doRequest(t, h, http.MethodDelete, "/renters/r1", "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
