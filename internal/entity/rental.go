package entity

import "time"

// RentalPeriodDays is the fixed loan window: a rental is always due two days
// after checkout.
const RentalPeriodDays = 2

// Rental links one renter to one or more books. A book is considered rented
// while any rental references it; availability is derived, never stored.
type Rental struct {
	ID           string
	RenterID     string
	CheckoutDate time.Time
	DueDate      time.Time
	BookIDs      []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
