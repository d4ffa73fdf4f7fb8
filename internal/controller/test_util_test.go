package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/project/biblioteca/internal/controller/mocks"
)

type serverMocks struct {
	authors *mocks.MockAuthorsUseCase
	books   *mocks.MockBooksUseCase
	renters *mocks.MockRentersUseCase
	rentals *mocks.MockRentalsUseCase
}

func initServerTest(t *testing.T) (serverMocks, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serverMocks{
		authors: mocks.NewMockAuthorsUseCase(ctrl),
		books:   mocks.NewMockBooksUseCase(ctrl),
		renters: mocks.NewMockRentersUseCase(ctrl),
		rentals: mocks.NewMockRentalsUseCase(ctrl),
	}

	logger, err := zap.NewProduction()
	require.NoError(t, err)

	i := New(logger, m.authors, m.books, m.renters, m.rentals)
	return m, i.Router()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func requireErrorBody(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	body := decodeBody[map[string]string](t, rec)
	require.NotEmpty(t, body["error"])
}
