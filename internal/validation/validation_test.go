package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/project/biblioteca/internal/entity"
)

func TestParseBirthDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		date       string
		want       time.Time
		requireErr error
	}{
		{name: "valid date",
			date: "1912-08-10",
			want: time.Date(1912, 8, 10, 0, 0, 0, 0, time.UTC)},

		{name: "malformed date",
			date:       "10/08/1912",
			requireErr: entity.ErrInvalidBirthDate},

		{name: "nonexistent day",
			date:       "1912-02-30",
			requireErr: entity.ErrInvalidBirthDate},

		{name: "future date",
			date:       time.Now().AddDate(1, 0, 0).Format(DateLayout),
			requireErr: entity.ErrInvalidBirthDate},

		{name: "empty",
			date:       "",
			requireErr: entity.ErrInvalidBirthDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseBirthDate(tt.date)
			require.ErrorIs(t, err, tt.requireErr)
			if err != nil {
				require.ErrorIs(t, err, entity.ErrValidation)
				require.True(t, got.IsZero())
				return
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParsePublicationDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		date       string
		want       time.Time
		requireErr error
	}{
		{name: "valid date",
			date: "1956-05-01",
			want: time.Date(1956, 5, 1, 0, 0, 0, 0, time.UTC)},

		// A publication date may be in the future (pre-orders).
		{name: "future date",
			date: "2100-01-01",
			want: time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)},

		{name: "malformed date",
			date:       "01.05.1956",
			requireErr: entity.ErrInvalidPublicationDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePublicationDate(tt.date)
			require.ErrorIs(t, err, tt.requireErr)
			if err == nil {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		sex        string
		requireErr error
	}{
		{name: "masculine", sex: entity.SexMasculine},
		{name: "feminine", sex: entity.SexFeminine},
		{name: "other", sex: entity.SexOther},
		{name: "unknown value", sex: "robot", requireErr: entity.ErrInvalidSex},
		{name: "wrong case", sex: "Masculine", requireErr: entity.ErrInvalidSex},
		{name: "empty", sex: "", requireErr: entity.ErrInvalidSex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, Sex(tt.sex), tt.requireErr)
		})
	}
}

func TestCPF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cpf     string
		wantErr bool
	}{
		{name: "valid", cpf: "12345678901"},
		{name: "too short", cpf: "1234567890", wantErr: true},
		{name: "too long", cpf: "123456789012", wantErr: true},
		{name: "punctuated", cpf: "123.456.789-01", wantErr: true},
		{name: "letters", cpf: "1234567890a", wantErr: true},
		{name: "empty", cpf: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := CPF(tt.cpf)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestISBN(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		isbn    string
		wantErr bool
	}{
		{name: "valid 978 prefix", isbn: "9788520939918"},
		{name: "valid 979 prefix", isbn: "9791234567890"},
		{name: "wrong prefix", isbn: "9771234567890", wantErr: true},
		{name: "isbn-10", isbn: "8520939910", wantErr: true},
		{name: "hyphenated", isbn: "978-85-2093-991-8", wantErr: true},
		{name: "empty", isbn: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ISBN(tt.isbn)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{name: "valid", email: "maria@example.com"},
		{name: "missing at", email: "maria.example.com", wantErr: true},
		{name: "missing domain", email: "maria@", wantErr: true},
		{name: "empty", email: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Email(tt.email)
			if tt.wantErr {
				require.ErrorIs(t, err, entity.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}
