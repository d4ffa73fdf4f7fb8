package entity

import "time"

// Book carries the ids of the authors credited on it. The relation is
// many-to-many and a book must keep at least one author at all times.
type Book struct {
	ID          string
	Title       string
	ISBN        string
	PublishedAt time.Time
	AuthorIDs   []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
