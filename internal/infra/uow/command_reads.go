package uow

import (
	"context"
	"errors"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// commandReads runs the small validation reads the command side needs.
// When obtained through Tx.Reads the queries share the transaction, so a
// snapshot read and the write that depends on it see the same data.
type commandReads struct {
	dbtx db.DBTX
}

var _ shared.CommandReads = (*commandReads)(nil)

func (r *commandReads) VenueByID(ctx context.Context, id uuid.UUID) (*shared.VenueSnapshot, error) {
	var snap shared.VenueSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, name, location, capacity FROM venues WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.Name, &snap.Location, &snap.Capacity)
	if err != nil {
		return nil, wrapReadErr("venue", err)
	}
	return &snap, nil
}

func (r *commandReads) EventByID(ctx context.Context, id uuid.UUID) (*shared.EventSnapshot, error) {
	var snap shared.EventSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, venue_id, name, starts_at FROM events WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.VenueID, &snap.Name, &snap.StartsAt)
	if err != nil {
		return nil, wrapReadErr("event", err)
	}
	return &snap, nil
}

func (r *commandReads) TicketTypeByID(ctx context.Context, id uuid.UUID) (*shared.TicketTypeSnapshot, error) {
	var snap shared.TicketTypeSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, event_id, name, price_cents, capacity, committed FROM ticket_types WHERE id = $1`, id,
	).Scan(&snap.ID, &snap.EventID, &snap.Name, &snap.PriceCents, &snap.Capacity, &snap.Committed)
	if err != nil {
		return nil, wrapReadErr("ticket type", err)
	}
	return &snap, nil
}

// FOR UPDATE: two transactions transitioning the same booking must see each
// other's status change, or a racing cancel releases the quantity twice.
func (r *commandReads) BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := r.dbtx.QueryRow(ctx,
		`SELECT id, event_id, ticket_type_id, user_name, user_email,
		        quantity, unit_price_cents, total_price_cents, status,
		        confirmation_code, created_at, updated_at
		 FROM bookings WHERE id = $1
		 FOR UPDATE`, id,
	).Scan(
		&snap.ID, &snap.EventID, &snap.TicketTypeID, &snap.UserName, &snap.UserEmail,
		&snap.Quantity, &snap.UnitPriceCents, &snap.TotalPriceCents, &snap.Status,
		&snap.ConfirmationCode, &snap.CreatedAt, &snap.UpdatedAt,
	)
	if err != nil {
		return nil, wrapReadErr("booking", err)
	}
	return &snap, nil
}

func (r *commandReads) EventCountByVenue(ctx context.Context, venueID uuid.UUID) (int64, error) {
	var count int64
	err := r.dbtx.QueryRow(ctx,
		`SELECT COUNT(*) FROM events WHERE venue_id = $1`, venueID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count events", err)
	}
	return count, nil
}

func (r *commandReads) TicketTypeCountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error) {
	var count int64
	err := r.dbtx.QueryRow(ctx,
		`SELECT COUNT(*) FROM ticket_types WHERE event_id = $1`, eventID,
	).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count ticket types", err)
	}
	return count, nil
}

func wrapReadErr(entity string, err error) error {
	if isNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to read "+entity, err)
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
