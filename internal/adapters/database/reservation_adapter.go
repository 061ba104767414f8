package database

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/lightbnb/backend/internal/domain/entities"
	"github.com/lightbnb/backend/internal/domain/repositories"
	"github.com/lightbnb/backend/internal/infrastructure/clients/postgres"
	apperrors "github.com/lightbnb/backend/pkg/errors"
)

// ReservationAdapter implements the ReservationRepository interface
type ReservationAdapter struct {
	adapter
}

// NewReservationAdapter creates a new reservation adapter
func NewReservationAdapter(client *postgres.Client, opts ...Option) repositories.ReservationRepository {
	return &ReservationAdapter{adapter: newAdapter(client, opts)}
}

// ListByGuest retrieves a guest's reservations, earliest start date first
func (a *ReservationAdapter) ListByGuest(ctx context.Context, guestID int64, limit int) (_ []*entities.Reservation, err error) {
	ctx, done := a.begin(ctx, "reservations.list_by_guest", "reservations")
	defer done(&err)

	query, args, err := a.db.From("reservations").
		Prepared(true).
		Where(goqu.Ex{"guest_id": guestID}).
		Order(goqu.I("start_date").Asc(), goqu.I("id").Asc()).
		Limit(a.limitOrDefault(limit)).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build reservation list query", err)
	}

	reservations := []*entities.Reservation{}
	if err := a.client.DB().SelectContext(ctx, &reservations, query, args...); err != nil {
		return nil, err
	}

	return reservations, nil
}
