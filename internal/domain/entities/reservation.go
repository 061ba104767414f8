package entities

import (
	"time"
)

// Reservation represents a row in the reservations table.
type Reservation struct {
	ID         int64     `json:"id" db:"id"`
	GuestID    int64     `json:"guest_id" db:"guest_id"`
	PropertyID int64     `json:"property_id" db:"property_id"`
	StartDate  time.Time `json:"start_date" db:"start_date"`
	EndDate    time.Time `json:"end_date" db:"end_date"`
}
