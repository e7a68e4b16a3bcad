package repository

import (
	"context"

	"ticket-booking/internal/domain/venue"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type VenueRepository struct{}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{}
}

var _ shared.VenueRepository = (*VenueRepository)(nil)

const createVenueSQL = `
	INSERT INTO venues (id, name, location, capacity, description, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, now(), now())
	RETURNING id`

func (r *VenueRepository) Create(ctx context.Context, tx db.DBTX, v *venue.Venue) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createVenueSQL,
		v.ID(), v.Name(), v.Location(), v.Capacity(), v.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, classifyPgErr("failed to create venue", err)
	}
	return id, nil
}

const updateVenueSQL = `
	UPDATE venues
	SET name = $2, location = $3, capacity = $4, description = $5, updated_at = now()
	WHERE id = $1`

func (r *VenueRepository) Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error {
	tag, err := tx.Exec(ctx, updateVenueSQL,
		v.ID(), v.Name(), v.Location(), v.Capacity(), v.Description(),
	)
	if err != nil {
		return classifyPgErr("failed to update venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return classifyPgErr("failed to delete venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", nil, infra.KindNotFound)
	}
	return nil
}
