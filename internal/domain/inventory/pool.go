package inventory

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNegativeCapacity     = errors.New("capacity cannot be negative")
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrCommittedOutOfBounds = errors.New("committed quantity out of bounds")
	ErrPoolNotFound         = errors.New("ticket pool not found")
	ErrPoolExists           = errors.New("ticket pool already exists")
	ErrPoolInUse            = errors.New("ticket pool still has committed tickets")
)

// PoolKey identifies the capacity pool for one (event, ticket-type) pair.
type PoolKey struct {
	EventID      uuid.UUID
	TicketTypeID uuid.UUID
}

// TicketPool tracks how much of a ticket type's capacity is held by
// non-cancelled bookings. committed is mutated only through a Ledger;
// the entity itself is a read snapshot.
type TicketPool struct {
	key       PoolKey
	capacity  int
	committed int
}

func NewTicketPool(key PoolKey, capacity int) (*TicketPool, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &TicketPool{key: key, capacity: capacity}, nil
}

func ReconstructTicketPool(key PoolKey, capacity, committed int) (*TicketPool, error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	if committed < 0 || committed > capacity {
		return nil, ErrCommittedOutOfBounds
	}
	return &TicketPool{key: key, capacity: capacity, committed: committed}, nil
}

func (p *TicketPool) Key() PoolKey   { return p.key }
func (p *TicketPool) Capacity() int  { return p.capacity }
func (p *TicketPool) Committed() int { return p.committed }

func (p *TicketPool) Available() int {
	return p.capacity - p.committed
}
