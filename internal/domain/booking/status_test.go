//go:build unit

package booking_test

import (
	"testing"

	"ticket-booking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled"} {
		s, err := booking.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, s.String())
	}

	for _, invalid := range []string{"", "Pending", "CONFIRMED", "done", "refunded"} {
		_, err := booking.ParseStatus(invalid)
		assert.ErrorIs(t, err, booking.ErrInvalidStatus, "input %q", invalid)
	}
}

func TestStatusTransitionTable(t *testing.T) {
	all := []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled}

	allowed := map[booking.Status]map[booking.Status]bool{
		booking.StatusPending:   {booking.StatusConfirmed: true, booking.StatusCancelled: true},
		booking.StatusConfirmed: {booking.StatusCancelled: true},
		booking.StatusCancelled: {booking.StatusPending: true, booking.StatusConfirmed: true},
	}

	// Exhaustive closure: every pair must agree with the table, including
	// the diagonal (no-op transitions are invalid).
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to),
				"%s -> %s", from, to)
		}
	}
}

func TestStatusCommittedDelta(t *testing.T) {
	const quantity = 7

	cases := []struct {
		from, to booking.Status
		want     int
	}{
		{booking.StatusPending, booking.StatusConfirmed, 0},
		{booking.StatusPending, booking.StatusCancelled, -quantity},
		{booking.StatusConfirmed, booking.StatusCancelled, -quantity},
		{booking.StatusCancelled, booking.StatusPending, quantity},
		{booking.StatusCancelled, booking.StatusConfirmed, quantity},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CommittedDelta(c.to, quantity),
			"%s -> %s", c.from, c.to)
	}
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, booking.StatusPending.IsActive())
	assert.True(t, booking.StatusConfirmed.IsActive())
	assert.False(t, booking.StatusCancelled.IsActive())
}
