// Package memledger is the in-memory reference implementation of the
// inventory ledger. Each pool owns its own mutex, so the check-and-update
// of committed is one atomic step per pool and pools never contend with
// each other.
package memledger

import (
	"context"
	"sync"

	"ticket-booking/internal/domain/inventory"
)

type pool struct {
	mu        sync.Mutex
	capacity  int
	committed int
}

type Ledger struct {
	mu    sync.RWMutex
	pools map[inventory.PoolKey]*pool
}

func New() *Ledger {
	return &Ledger{pools: make(map[inventory.PoolKey]*pool)}
}

var _ inventory.Ledger = (*Ledger)(nil)

// CreatePool registers a pool. Replacing an existing pool is not allowed;
// capacity is immutable for the life of the sale period.
func (l *Ledger) CreatePool(key inventory.PoolKey, capacity int) error {
	if capacity < 0 {
		return inventory.ErrNegativeCapacity
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.pools[key]; ok {
		return inventory.ErrPoolExists
	}
	l.pools[key] = &pool{capacity: capacity}
	return nil
}

// DropPool removes a pool. Only permitted once nothing is committed.
func (l *Ledger) DropPool(key inventory.PoolKey) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, ok := l.pools[key]
	if !ok {
		return inventory.ErrPoolNotFound
	}
	p.mu.Lock()
	committed := p.committed
	p.mu.Unlock()
	if committed != 0 {
		return inventory.ErrPoolInUse
	}
	delete(l.pools, key)
	return nil
}

func (l *Ledger) Reserve(_ context.Context, key inventory.PoolKey, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}
	p, err := l.lookup(key)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.capacity-p.committed < quantity {
		return inventory.ErrInsufficientCapacity
	}
	p.committed += quantity
	return nil
}

func (l *Ledger) Release(_ context.Context, key inventory.PoolKey, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}
	p, err := l.lookup(key)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.committed -= quantity
	if p.committed < 0 {
		p.committed = 0
	}
	return nil
}

func (l *Ledger) Adjust(ctx context.Context, key inventory.PoolKey, delta int) error {
	switch {
	case delta > 0:
		return l.Reserve(ctx, key, delta)
	case delta < 0:
		return l.Release(ctx, key, -delta)
	default:
		return nil
	}
}

// Snapshot returns a read-consistent view of one pool.
func (l *Ledger) Snapshot(key inventory.PoolKey) (*inventory.TicketPool, error) {
	p, err := l.lookup(key)
	if err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return inventory.ReconstructTicketPool(key, p.capacity, p.committed)
}

func (l *Ledger) lookup(key inventory.PoolKey) (*pool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	p, ok := l.pools[key]
	if !ok {
		return nil, inventory.ErrPoolNotFound
	}
	return p, nil
}
