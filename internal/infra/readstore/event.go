package readstore

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/infra"
	"ticket-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventReadStore struct {
	pool *pgxpool.Pool
}

func NewEventReadStore(pool *pgxpool.Pool) queries.EventReadStore {
	return &EventReadStore{pool: pool}
}

var _ queries.EventReadStore = (*EventReadStore)(nil)

const eventViewSQL = `
	SELECT e.id, e.venue_id, v.name, e.name, e.description, e.starts_at,
	       e.created_at, e.updated_at
	FROM events e
	JOIN venues v ON v.id = e.venue_id
	WHERE e.id = $1`

func (s *EventReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var v queries.EventView
	err := s.pool.QueryRow(ctx, eventViewSQL, id).Scan(
		&v.ID, &v.VenueID, &v.VenueName, &v.Name, &v.Description, &v.StartsAt,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, wrapQueryErr("event", err)
	}
	return &v, nil
}

func (s *EventReadStore) FindPage(
	ctx context.Context,
	search queries.EventSearch,
	afterStartsAt *time.Time,
	afterID *uuid.UUID,
	limit int32,
) ([]*queries.EventListItem, error) {
	sql := `
		SELECT e.id, v.name, e.name, e.starts_at, e.created_at
		FROM events e
		JOIN venues v ON v.id = e.venue_id
		WHERE 1=1`
	args := []any{}

	if search.VenueID != uuid.Nil {
		args = append(args, search.VenueID)
		sql += fmt.Sprintf(" AND e.venue_id = $%d", len(args))
	}
	if search.Name != "" {
		args = append(args, "%"+search.Name+"%")
		sql += fmt.Sprintf(" AND e.name ILIKE $%d", len(args))
	}
	if !search.From.IsZero() {
		args = append(args, search.From)
		sql += fmt.Sprintf(" AND e.starts_at >= $%d", len(args))
	}
	if !search.To.IsZero() {
		args = append(args, search.To)
		sql += fmt.Sprintf(" AND e.starts_at < $%d", len(args))
	}
	if afterStartsAt != nil && afterID != nil {
		args = append(args, *afterStartsAt, *afterID)
		sql += fmt.Sprintf(" AND (e.starts_at, e.id) > ($%d, $%d)", len(args)-1, len(args))
	}

	args = append(args, limit)
	sql += fmt.Sprintf(" ORDER BY e.starts_at ASC, e.id ASC LIMIT $%d", len(args))

	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list events", err)
	}
	defer rows.Close()

	items := []*queries.EventListItem{}
	for rows.Next() {
		var item queries.EventListItem
		if err := rows.Scan(&item.ID, &item.VenueName, &item.Name, &item.StartsAt, &item.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan event row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate event rows", err)
	}
	return items, nil
}

const ticketTypesByEventSQL = `
	SELECT id, event_id, name, price_cents, capacity, committed,
	       created_at, updated_at
	FROM ticket_types
	WHERE event_id = $1
	ORDER BY price_cents ASC, name ASC`

// FindTicketTypesByEvent verifies the event exists first so a missing event
// surfaces as NOT_FOUND rather than an empty list.
func (s *EventReadStore) FindTicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]*queries.TicketTypeView, error) {
	var exists bool
	if err := s.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM events WHERE id = $1)`, eventID).Scan(&exists); err != nil {
		return nil, infra.WrapRepoErr("failed to check event", err)
	}
	if !exists {
		return nil, infra.WrapRepoErr("event not found", nil, infra.KindNotFound)
	}

	rows, err := s.pool.Query(ctx, ticketTypesByEventSQL, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ticket types", err)
	}
	defer rows.Close()

	items := []*queries.TicketTypeView{}
	for rows.Next() {
		var v queries.TicketTypeView
		err := rows.Scan(
			&v.ID, &v.EventID, &v.Name, &v.PriceCents, &v.Capacity, &v.Committed,
			&v.CreatedAt, &v.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket type row", err)
		}
		v.Available = v.Capacity - v.Committed
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate ticket type rows", err)
	}
	return items, nil
}
