package repositories

import (
	"context"

	"github.com/lightbnb/backend/internal/domain/entities"
)

// ReservationRepository defines the interface for reservation reads
type ReservationRepository interface {
	// ListByGuest returns at most limit reservations for the guest ordered by
	// start date. A non-positive limit selects the configured default.
	ListByGuest(ctx context.Context, guestID int64, limit int) ([]*entities.Reservation, error)
}
