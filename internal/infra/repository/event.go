package repository

import (
	"context"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type EventRepository struct{}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

var _ shared.EventRepository = (*EventRepository)(nil)

const createEventSQL = `
	INSERT INTO events (id, venue_id, name, description, starts_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id`

func (r *EventRepository) Create(ctx context.Context, tx db.DBTX, e *event.Event) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createEventSQL,
		e.ID(), e.VenueID(), e.Name(), e.Description(), e.StartsAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create event", err)
	}
	return id, nil
}

const updateEventSQL = `
	UPDATE events
	SET name = $2, description = $3, starts_at = $4, updated_at = now()
	WHERE id = $1`

func (r *EventRepository) Update(ctx context.Context, tx db.DBTX, e *event.Event) error {
	tag, err := tx.Exec(ctx, updateEventSQL,
		e.ID(), e.Name(), e.Description(), e.StartsAt(),
	)
	if err != nil {
		return classifyPgErr("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return classifyPgErr("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}
	return nil
}
