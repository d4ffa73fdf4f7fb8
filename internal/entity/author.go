package entity

import "time"

// Sex is an optional enumerated attribute of authors and renters.
// The empty string means "not provided".
type Sex = string

const (
	SexMasculine Sex = "masculine"
	SexFeminine  Sex = "feminine"
	SexOther     Sex = "other"
)

type Author struct {
	ID        string
	Name      string
	Sex       Sex
	BirthDate time.Time
	CPF       string
	BookIDs   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
