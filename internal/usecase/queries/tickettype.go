package queries

import (
	"context"

	"github.com/google/uuid"
)

type TicketTypeQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
}

type TicketTypeReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TicketTypeView, error)
}

type ticketTypeQueriesImpl struct {
	store TicketTypeReadStore
}

func NewTicketTypeQueries(store TicketTypeReadStore) TicketTypeQueries {
	return &ticketTypeQueriesImpl{store: store}
}

func (q *ticketTypeQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TicketTypeView, error) {
	return q.store.FindByID(ctx, id)
}
