package readstore

import (
	"context"
	"fmt"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type VenueReadStore struct {
	pool *pgxpool.Pool
}

func NewVenueReadStore(pool *pgxpool.Pool) queries.VenueReadStore {
	return &VenueReadStore{pool: pool}
}

var _ queries.VenueReadStore = (*VenueReadStore)(nil)

const venueViewSQL = `
	SELECT v.id, v.name, v.location, v.capacity,
	       (SELECT COUNT(*) FROM events e WHERE e.venue_id = v.id),
	       v.created_at, v.updated_at
	FROM venues v`

func (s *VenueReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VenueView, error) {
	var v queries.VenueView
	err := s.pool.QueryRow(ctx, venueViewSQL+` WHERE v.id = $1`, id).Scan(
		&v.ID, &v.Name, &v.Location, &v.Capacity, &v.EventCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("venue", err)
	}
	return &v, nil
}

func (s *VenueReadStore) FindPage(ctx context.Context, afterName *string, afterID *uuid.UUID, limit int32) ([]*queries.VenueView, error) {
	sql := venueViewSQL + ` WHERE 1=1`
	args := []any{}

	if afterName != nil && afterID != nil {
		args = append(args, *afterName, *afterID)
		sql += fmt.Sprintf(" AND (v.name, v.id) > ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY v.name ASC, v.id ASC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	items := []*queries.VenueView{}
	for rows.Next() {
		var v queries.VenueView
		err := rows.Scan(
			&v.ID, &v.Name, &v.Location, &v.Capacity, &v.EventCount,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan venue row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venue rows", err)
	}
	return items, nil
}
