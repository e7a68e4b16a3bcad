package readstore

import (
	"context"

	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketTypeReadStore struct {
	pool *pgxpool.Pool
}

func NewTicketTypeReadStore(pool *pgxpool.Pool) queries.TicketTypeReadStore {
	return &TicketTypeReadStore{pool: pool}
}

var _ queries.TicketTypeReadStore = (*TicketTypeReadStore)(nil)

const ticketTypeViewSQL = `
	SELECT id, event_id, name, price_cents, capacity, committed,
	       created_at, updated_at
	FROM ticket_types
	WHERE id = $1`

func (s *TicketTypeReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TicketTypeView, error) {
	var v queries.TicketTypeView
	err := s.pool.QueryRow(ctx, ticketTypeViewSQL, id).Scan(
		&v.ID, &v.EventID, &v.Name, &v.PriceCents, &v.Capacity, &v.Committed,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("ticket type", err)
	}
	v.Available = v.Capacity - v.Committed
	return &v, nil
}
