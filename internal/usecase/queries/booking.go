package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error)
	// Search matches the query against event, venue and ticket type names.
	Search(ctx context.Context, nameQuery string, limit int) ([]*BookingListItem, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByConfirmationCode(ctx context.Context, code string) (*BookingView, error)
	FindPage(ctx context.Context, filter BookingFilter, afterCreated *time.Time, afterID *uuid.UUID, limit int32) ([]*BookingListItem, error)
	FindByNameQuery(ctx context.Context, nameQuery string, limit int32) ([]*BookingListItem, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.store.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) GetByConfirmationCode(ctx context.Context, code string) (*BookingView, error) {
	return q.store.FindByConfirmationCode(ctx, code)
}

func (q *bookingQueriesImpl) Search(ctx context.Context, nameQuery string, limit int) ([]*BookingListItem, error) {
	return q.store.FindByNameQuery(ctx, nameQuery, int32(ValidateLimit(limit)))
}

// List pages with a keyset cursor over (created_at, id) descending. The
// returned cursor is nil on the last page.
func (q *bookingQueriesImpl) List(ctx context.Context, filter BookingFilter, after *Cursor, limit int) ([]*BookingListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterCreated *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		afterCreated = &t
		afterID = &id
	}

	// Fetch one extra row to detect whether another page exists.
	rows, err := q.store.FindPage(ctx, filter, afterCreated, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
