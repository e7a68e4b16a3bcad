package inventory

import "context"

// Ledger is the only mutator of a pool's committed quantity. Every operation
// is atomic with respect to all other operations on the same pool key:
// concurrent calls observe a total order, and committed never leaves the
// [0, capacity] range. Operations on distinct keys do not block each other.
//
// There is deliberately no cross-pool primitive. Moving a booking between
// pools is a Release on the old key followed by a Reserve on the new one,
// and the caller compensates if the second step fails.
type Ledger interface {
	// Reserve atomically checks available capacity and increments committed
	// by quantity. Returns ErrInsufficientCapacity (and changes nothing) if
	// fewer than quantity tickets are available, ErrInvalidQuantity if
	// quantity is not positive.
	Reserve(ctx context.Context, key PoolKey, quantity int) error

	// Release decrements committed by quantity, flooring at zero. Releasing
	// more than was reserved is a caller bug the ledger does not detect.
	Release(ctx context.Context, key PoolKey, quantity int) error

	// Adjust applies a signed delta: positive behaves as Reserve, negative
	// as Release, zero is a no-op. Increases fail cleanly with
	// ErrInsufficientCapacity, leaving committed untouched.
	Adjust(ctx context.Context, key PoolKey, delta int) error
}
