package queries

import (
	"context"

	"github.com/google/uuid"
)

type VenueQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	List(ctx context.Context, after *Cursor, limit int) ([]*VenueView, *Cursor, error)
}

type VenueReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*VenueView, error)
	FindPage(ctx context.Context, afterName *string, afterID *uuid.UUID, limit int32) ([]*VenueView, error)
}

type venueQueriesImpl struct {
	store VenueReadStore
}

func NewVenueQueries(store VenueReadStore) VenueQueries {
	return &venueQueriesImpl{store: store}
}

func (q *venueQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	return q.store.FindByID(ctx, id)
}

// List pages venues by (name, id) ascending. Venue counts stay small, so the
// cursor here is plain name keyset rather than the timestamp encoding.
func (q *venueQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*VenueView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterName *string
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		name, id, err := decodeNameCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		afterName = &name
		afterID = &id
	}

	rows, err := q.store.FindPage(ctx, afterName, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: encodeNameCursor(last.Name, last.ID)}
	}
	return rows, next, nil
}
