//go:build unit

package memledger_test

import (
	"context"
	"sync"
	"testing"

	"ticket-booking/internal/domain/inventory"
	"ticket-booking/internal/infra/memledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey() inventory.PoolKey {
	return inventory.PoolKey{EventID: uuid.New(), TicketTypeID: uuid.New()}
}

func snapshot(t *testing.T, l *memledger.Ledger, key inventory.PoolKey) *inventory.TicketPool {
	t.Helper()
	p, err := l.Snapshot(key)
	require.NoError(t, err)
	return p
}

func TestLedgerReserve(t *testing.T) {
	ctx := context.Background()

	t.Run("reserve within capacity", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))

		require.NoError(t, l.Reserve(ctx, key, 6))

		p := snapshot(t, l, key)
		assert.Equal(t, 6, p.Committed())
		assert.Equal(t, 4, p.Available())
	})

	t.Run("reserve the exact remainder", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))

		require.NoError(t, l.Reserve(ctx, key, 10))
		assert.Equal(t, 0, snapshot(t, l, key).Available())
	})

	t.Run("over-capacity reserve fails and changes nothing", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))
		require.NoError(t, l.Reserve(ctx, key, 7))

		err := l.Reserve(ctx, key, 4)
		require.ErrorIs(t, err, inventory.ErrInsufficientCapacity)
		assert.Equal(t, 7, snapshot(t, l, key).Committed())
	})

	t.Run("non-positive quantity is rejected", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))

		assert.ErrorIs(t, l.Reserve(ctx, key, 0), inventory.ErrInvalidQuantity)
		assert.ErrorIs(t, l.Reserve(ctx, key, -1), inventory.ErrInvalidQuantity)
	})

	t.Run("unknown pool", func(t *testing.T) {
		l := memledger.New()
		assert.ErrorIs(t, l.Reserve(ctx, newKey(), 1), inventory.ErrPoolNotFound)
	})
}

func TestLedgerRelease(t *testing.T) {
	ctx := context.Background()

	t.Run("release frees capacity", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))
		require.NoError(t, l.Reserve(ctx, key, 8))

		require.NoError(t, l.Release(ctx, key, 3))
		assert.Equal(t, 5, snapshot(t, l, key).Committed())
	})

	t.Run("release floors at zero", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))
		require.NoError(t, l.Reserve(ctx, key, 2))

		require.NoError(t, l.Release(ctx, key, 5))
		assert.Equal(t, 0, snapshot(t, l, key).Committed())
	})
}

func TestLedgerAdjust(t *testing.T) {
	ctx := context.Background()

	l := memledger.New()
	key := newKey()
	require.NoError(t, l.CreatePool(key, 10))
	require.NoError(t, l.Reserve(ctx, key, 4))

	t.Run("positive delta behaves as reserve", func(t *testing.T) {
		require.NoError(t, l.Adjust(ctx, key, 5))
		assert.Equal(t, 9, snapshot(t, l, key).Committed())
	})

	t.Run("increase past capacity fails cleanly", func(t *testing.T) {
		err := l.Adjust(ctx, key, 2)
		require.ErrorIs(t, err, inventory.ErrInsufficientCapacity)
		assert.Equal(t, 9, snapshot(t, l, key).Committed())
	})

	t.Run("negative delta behaves as release", func(t *testing.T) {
		require.NoError(t, l.Adjust(ctx, key, -3))
		assert.Equal(t, 6, snapshot(t, l, key).Committed())
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		require.NoError(t, l.Adjust(ctx, key, 0))
		assert.Equal(t, 6, snapshot(t, l, key).Committed())
	})
}

func TestLedgerPoolLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate pool is rejected", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))
		assert.ErrorIs(t, l.CreatePool(key, 20), inventory.ErrPoolExists)
	})

	t.Run("drop requires zero committed", func(t *testing.T) {
		l := memledger.New()
		key := newKey()
		require.NoError(t, l.CreatePool(key, 10))
		require.NoError(t, l.Reserve(ctx, key, 1))

		assert.ErrorIs(t, l.DropPool(key), inventory.ErrPoolInUse)

		require.NoError(t, l.Release(ctx, key, 1))
		require.NoError(t, l.DropPool(key))
		assert.ErrorIs(t, l.DropPool(key), inventory.ErrPoolNotFound)
	})
}

// Concurrency properties. These are the point of the ledger: under arbitrary
// interleavings committed must never exceed capacity and every successful
// reservation must be accounted for.

func TestLedgerConcurrentReserveNeverOversells(t *testing.T) {
	ctx := context.Background()
	l := memledger.New()
	key := newKey()

	const capacity = 100
	const workers = 50
	const perWorker = 4 // 200 requested in total, twice the capacity

	require.NoError(t, l.CreatePool(key, capacity))

	var wg sync.WaitGroup
	var successes int64
	var mu sync.Mutex

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				if err := l.Reserve(ctx, key, 1); err == nil {
					mu.Lock()
					successes++
					mu.Unlock()
				}
			}
		}()
	}
	wg.Wait()

	p := snapshot(t, l, key)
	assert.Equal(t, capacity, p.Committed())
	assert.Equal(t, int64(capacity), successes)
	assert.Equal(t, 0, p.Available())
}

func TestLedgerConcurrentContendedRemainder(t *testing.T) {
	// Two bookings race for the last 6 of 10 seats when 4 are already held.
	// Exactly one of them can win.
	ctx := context.Background()
	l := memledger.New()
	key := newKey()
	require.NoError(t, l.CreatePool(key, 10))
	require.NoError(t, l.Reserve(ctx, key, 4))

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = l.Reserve(ctx, key, 6)
		}()
	}
	wg.Wait()

	var wins, losses int
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			require.ErrorIs(t, err, inventory.ErrInsufficientCapacity)
			losses++
		}
	}

	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, losses)
	assert.Equal(t, 10, snapshot(t, l, key).Committed())
}

func TestLedgerConcurrentReserveReleaseConservation(t *testing.T) {
	// Paired reserve/release cycles must return the pool to its starting
	// state no matter how they interleave.
	ctx := context.Background()
	l := memledger.New()
	key := newKey()
	require.NoError(t, l.CreatePool(key, 50))

	const workers = 20
	const cycles = 25

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range cycles {
				if err := l.Reserve(ctx, key, 2); err == nil {
					assert.NoError(t, l.Release(ctx, key, 2))
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, snapshot(t, l, key).Committed())
}

func TestLedgerIndependentPools(t *testing.T) {
	ctx := context.Background()
	l := memledger.New()
	a, b := newKey(), newKey()
	require.NoError(t, l.CreatePool(a, 5))
	require.NoError(t, l.CreatePool(b, 5))

	require.NoError(t, l.Reserve(ctx, a, 5))

	// Pool a being full must not affect pool b.
	require.NoError(t, l.Reserve(ctx, b, 3))
	assert.Equal(t, 5, snapshot(t, l, a).Committed())
	assert.Equal(t, 3, snapshot(t, l, b).Committed())
}
