package repository

import (
	"context"

	"ticket-booking/internal/domain/inventory"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"
)

// PoolRepository is the SQL side of the inventory ledger. The capacity check
// and the committed update are one guarded UPDATE, so concurrent reserves on
// the same pool serialize on the row lock and at most one can take the last
// tickets. Operations on different pools touch different rows and proceed
// in parallel.
type PoolRepository struct{}

func NewPoolRepository() *PoolRepository {
	return &PoolRepository{}
}

var _ shared.PoolRepository = (*PoolRepository)(nil)

const reservePoolSQL = `
	UPDATE ticket_types
	SET committed = committed + $3, updated_at = now()
	WHERE event_id = $1 AND id = $2 AND capacity - committed >= $3`

func (r *PoolRepository) Reserve(ctx context.Context, tx db.DBTX, key inventory.PoolKey, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}

	tag, err := tx.Exec(ctx, reservePoolSQL, key.EventID, key.TicketTypeID, quantity)
	if err != nil {
		return classifyPgErr("failed to reserve tickets", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyRejection(ctx, tx, key)
	}
	return nil
}

const releasePoolSQL = `
	UPDATE ticket_types
	SET committed = GREATEST(committed - $3, 0), updated_at = now()
	WHERE event_id = $1 AND id = $2`

func (r *PoolRepository) Release(ctx context.Context, tx db.DBTX, key inventory.PoolKey, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}

	tag, err := tx.Exec(ctx, releasePoolSQL, key.EventID, key.TicketTypeID, quantity)
	if err != nil {
		return classifyPgErr("failed to release tickets", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("ticket pool not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PoolRepository) Adjust(ctx context.Context, tx db.DBTX, key inventory.PoolKey, delta int) error {
	switch {
	case delta > 0:
		return r.Reserve(ctx, tx, key, delta)
	case delta < 0:
		return r.Release(ctx, tx, key, -delta)
	default:
		return nil
	}
}

// classifyRejection distinguishes a missing pool from a capacity rejection
// after a guarded update matched no row.
func (r *PoolRepository) classifyRejection(ctx context.Context, tx db.DBTX, key inventory.PoolKey) error {
	var exists bool
	err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM ticket_types WHERE event_id = $1 AND id = $2)`,
		key.EventID, key.TicketTypeID,
	).Scan(&exists)
	if err != nil {
		return classifyPgErr("failed to check ticket pool", err)
	}
	if !exists {
		return infra.WrapRepoErr("ticket pool not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("not enough tickets available", nil, infra.KindCapacityExceeded)
}
