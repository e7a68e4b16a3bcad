package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventSearch narrows event list reads. Zero values mean no filter.
type EventSearch struct {
	VenueID uuid.UUID
	Name    string
	From    time.Time
	To      time.Time
}

type EventQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	Search(ctx context.Context, search EventSearch, after *Cursor, limit int) ([]*EventListItem, *Cursor, error)
	Availability(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
}

type EventReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EventView, error)
	FindPage(ctx context.Context, search EventSearch, afterStartsAt *time.Time, afterID *uuid.UUID, limit int32) ([]*EventListItem, error)
	FindTicketTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error)
}

type eventQueriesImpl struct {
	store EventReadStore
}

func NewEventQueries(store EventReadStore) EventQueries {
	return &eventQueriesImpl{store: store}
}

func (q *eventQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EventView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	types, err := q.store.FindTicketTypesByEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, t := range types {
		view.TicketTypes = append(view.TicketTypes, *t)
	}
	return view, nil
}

// Search pages upcoming events by (starts_at, id) ascending.
func (q *eventQueriesImpl) Search(ctx context.Context, search EventSearch, after *Cursor, limit int) ([]*EventListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterStartsAt *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		afterStartsAt = &t
		afterID = &id
	}

	rows, err := q.store.FindPage(ctx, search, afterStartsAt, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartsAt, last.ID)}
	}
	return rows, next, nil
}

func (q *eventQueriesImpl) Availability(ctx context.Context, eventID uuid.UUID) ([]*TicketTypeView, error) {
	return q.store.FindTicketTypesByEvent(ctx, eventID)
}
