package repository

import (
	"context"

	"ticket-booking/internal/domain/tickettype"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type TicketTypeRepository struct{}

func NewTicketTypeRepository() *TicketTypeRepository {
	return &TicketTypeRepository{}
}

var _ shared.TicketTypeRepository = (*TicketTypeRepository)(nil)

const createTicketTypeSQL = `
	INSERT INTO ticket_types (id, event_id, name, price_cents, capacity, committed, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, 0, now(), now())
	RETURNING id`

func (r *TicketTypeRepository) Create(ctx context.Context, tx db.DBTX, t *tickettype.TicketType) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createTicketTypeSQL,
		t.ID(), t.EventID(), t.Name(), t.Price().Cents(), t.Capacity(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create ticket type", err)
	}
	return id, nil
}

func (r *TicketTypeRepository) UpdatePrice(ctx context.Context, tx db.DBTX, id uuid.UUID, priceCents int64) error {
	tag, err := tx.Exec(ctx,
		`UPDATE ticket_types SET price_cents = $2, updated_at = now() WHERE id = $1`,
		id, priceCents,
	)
	if err != nil {
		return classifyPgErr("failed to update ticket type price", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket type not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete only removes a pool nothing is committed against; the guard keeps
// a racing reservation from being orphaned.
func (r *TicketTypeRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM ticket_types WHERE id = $1 AND committed = 0`, id)
	if err != nil {
		return classifyPgErr("failed to delete ticket type", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM ticket_types WHERE id = $1)`, id).Scan(&exists); err != nil {
		return classifyPgErr("failed to check ticket type", err)
	}
	if !exists {
		return infra.WrapRepoErr("ticket type not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("ticket type still has active bookings", nil, infra.KindCapacityExceeded)
}
