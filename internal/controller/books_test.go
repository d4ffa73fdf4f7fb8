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

func testBook() entity.Book {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	return entity.Book{
		ID:          "b1",
		Title:       "Grande Sertao: Veredas",
		ISBN:        "9788520939918",
		PublishedAt: time.Date(1956, 5, 1, 0, 0, 0, 0, time.UTC),
		AuthorIDs:   []string{"a1"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestCreateBookHandler(t *testing.T) {
	t.Parallel()

	const validBody = `{"title":"Grande Sertao: Veredas","isbn":"9788520939918","publishedAt":"1956-05-01","authorIds":["a1"]}`

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

		{name: "invalid isbn shape",
			body:       `{"title":"X","isbn":"123","publishedAt":"1956-05-01"}`,
			skipCall:   true,
			wantStatus: http.StatusBadRequest},

		{name: "no authors",
			body:       `{"title":"X","isbn":"9788520939918","publishedAt":"1956-05-01","authorIds":[]}`,
			usecaseErr: entity.ErrNoAuthors,
			wantStatus: http.StatusBadRequest},

		{name: "isbn already registered",
			body:       validBody,
			usecaseErr: entity.ErrISBNTaken,
			wantStatus: http.StatusConflict},

		{name: "unknown author",
			body:       validBody,
			usecaseErr: entity.ErrAuthorsNotFound,
			wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			if !tt.skipCall {
				call := m.books.EXPECT().CreateBook(gomock.Any(), gomock.Any())
				if tt.usecaseErr != nil {
					call.Return(entity.Book{}, tt.usecaseErr)
				} else {
					call.DoAndReturn(func(_ any, input library.BookInput) (entity.Book, error) {
						require.Equal(t, "9788520939918", input.ISBN)
						require.Equal(t, []string{"a1"}, input.AuthorIDs)
						return testBook(), nil
					})
				}
			}

			rec := doRequest(t, h, http.MethodPost, "/books/", tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusCreated {
				requireErrorBody(t, rec)
				return
			}

			resp := decodeBody[bookResponse](t, rec)
			require.Equal(t, "b1", resp.ID)
			require.Equal(t, "1956-05-01", resp.PublishedAt)
		})
	}
}

func TestGetBookHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "found", wantStatus: http.StatusOK},
		{name: "missing", usecaseErr: entity.ErrBookNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.books.EXPECT().GetBook(gomock.Any(), "b1").Return(testBook(), tt.usecaseErr)

			rec := doRequest(t, h, http.MethodGet, "/books/b1", "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteBookHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "deleted", wantStatus: http.StatusNoContent},
		{name: "missing", usecaseErr: entity.ErrBookNotFound, wantStatus: http.StatusNotFound},
		{name: "rented", usecaseErr: entity.ErrBookRented, wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.books.EXPECT().DeleteBook(gomock.Any(), "b1").Return(tt.usecaseErr)

			rec := doRequest(t, h, http.MethodDelete, "/books/b1", "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAddBookAuthorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "added", wantStatus: http.StatusOK},
		{name: "already credited", usecaseErr: entity.ErrAuthorAlreadyOnBook, wantStatus: http.StatusConflict},
		{name: "author missing", usecaseErr: entity.ErrAuthorNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.books.EXPECT().AddBookAuthor(gomock.Any(), "b1", "a2").
				Return(testBook(), tt.usecaseErr)

			rec := doRequest(t, h, http.MethodPut, "/books/b1/authors/a2", "")
			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRemoveBookAuthorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		usecaseErr error
		wantStatus int
	}{
		{name: "removed", wantStatus: http.StatusOK},
		{name: "author not credited", usecaseErr: entity.ErrAuthorNotOnBook, wantStatus: http.StatusBadRequest},
		{name: "last author", usecaseErr: entity.ErrLastAuthor, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, h := initServerTest(t)
			m.books.EXPECT().RemoveBookAuthor(gomock.Any(), "b1", "a1").
				Return(testBook(), tt.usecaseErr)

			rec := doRequest(t, h, http.MethodDelete, "/books/b1/authors/a1", "")
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				requireErrorBody(t, rec)
			}
		})
	}
}

func TestListAuthorBooksHandler(t *testing.T) {
	t.Parallel()

	m, h := initServerTest(t)
	m.books.EXPECT().ListAuthorBooks(gomock.Any(), "a1").
		Return([]entity.Book{testBook()}, nil)

	rec := doRequest(t, h, http.MethodGet, "/books/by-author/a1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[[]bookResponse](t, rec)
	require.Len(t, resp, 1)
	require.Equal(t, []string{"a1"}, resp[0].AuthorIDs)
}
