package entity

import "time"

type Renter struct {
	ID        string
	Name      string
	Sex       Sex
	Phone     string
	Email     string
	BirthDate time.Time
	CPF       string
	RentalIDs []string
	CreatedAt time.Time
	UpdatedAt time.Time
}
