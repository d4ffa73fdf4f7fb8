package controller

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/project/biblioteca/internal/entity"
	"github.com/project/biblioteca/internal/usecase/library"
)

func testAuthor() entity.Author {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return entity.Author{
		ID:        "a1",
		Name:      "Jorge Amado",
		Sex:       entity.SexMasculine,
		BirthDate: time.Date(1912, 8, 10, 0, 0, 0, 0, time.UTC),
		CPF:       "12345678901",
		BookIDs:   []string{"b1"},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCreateAuthorHandler(t *testing.T) {
	t.Parallel()

	const validBody = `{"name":"Jorge Amado","sex":"masculine","birthDate":"1912-08-10","cpf":"12345678901"}`

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

		{name: "malformed json",
			body:       `{"name":`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "invalid cpf shape",
			body:       `{"name":"Jorge Amado","birthDate":"1912-08-10","cpf":"123"}`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "blank name",
			body:       `{"birthDate":"1912-08-10","cpf":"12345678901"}`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "cpf already registered",
			body:       validBody,
			usecaseErr: entity.ErrCPFTaken,
			wantStatus: http.StatusConflict},

		{name: "future birth date",
			body:       `{"name":"Jorge Amado","birthDate":"2100-01-01","cpf":"12345678901"}`,
			usecaseErr: entity.ErrInvalidBirthDate,
			wantStatus: http.StatusBadRequest},

		{name: "internal error",
			body:       validBody,
			usecaseErr: errors.New("internal error"),
			wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			if !tt.skipCall {
				call := m.authors.EXPECT().CreateAuthor(gomock.Any(), gomock.Any())
				if tt.usecaseErr != nil {
					call.Return(entity.Author{}, tt.usecaseErr)
				} else {
					call.DoAndReturn(func(_ any, input library.AuthorInput) (entity.Author, error) {
						require.Equal(t, "Jorge Amado", input.Name)
						require.Equal(t, "12345678901", input.CPF)
						return testAuthor(), nil
					})
				}
			}

			rec := doRequest(t, h, http.MethodPost, "/authors/", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				requireErrorBody(t, rec)
				return
			}

			resp := decodeBody[authorResponse](t, rec)
			require.Equal(t, "a1", resp.ID)
			require.Equal(t, "1912-08-10", resp.BirthDate)
			require.Equal(t, []string{"b1"}, resp.BookIDs)
		})
	}
}

func TestListAuthorsHandler(t *testing.T) {
	t.Parallel()

	m, h := initServerTest(t)
	m.authors.EXPECT().ListAuthors(gomock.Any()).Return([]entity.Author{testAuthor()}, nil)

	rec := doRequest(t, h, http.MethodGet, "/authors/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decodeBody[[]authorResponse](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, "Jorge Amado", resp[0].Name)
}

func TestGetAuthorByNameHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", usecaseErr: entity.ErrAuthorNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.authors.EXPECT().GetAuthorByName(gomock.Any(), "Jorge Amado").
				Return(testAuthor(), tt.usecaseErr)

			rec := doRequest(t, h, http.MethodGet, "/authors/by-name/Jorge%20Amado", "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestUpdateAuthorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		usecaseErr error
		skipCall   bool
		wantStatus int
	}{
		{name: "updated",
			body:       `{"name":"Graciliano Ramos"}`,
			wantStatus: http.StatusOK},

		{name: "malformed json",
			body:       `{"name":`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "author missing",
			body:       `{"name":"Graciliano Ramos"}`,
			usecaseErr: entity.ErrAuthorNotFound,
			wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			if !tt.skipCall {
				m.authors.EXPECT().UpdateAuthor(gomock.Any(), "a1", gomock.Any()).
					Return(testAuthor(), tt.usecaseErr)
			}

			rec := doRequest(t, h, http.MethodPatch, "/authors/a1", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteAuthorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", usecaseErr: entity.ErrAuthorNotFound, wantStatus: http.StatusNotFound},
		{name: "still credited on books", usecaseErr: entity.ErrAuthorHasBooks, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.authors.EXPECT().DeleteAuthor(gomock.Any(), "a1").Return(tt.usecaseErr)

			rec := doRequest(t, h, http.MethodDelete, "/authors/a1", "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				require.Empty(t, rec.Body.String())
			}
		})
	}
}
