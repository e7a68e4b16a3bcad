package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether a booking in this status holds tickets against
// its pool's committed total.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo is the transition table. Anything not listed here is an
// invalid transition, including a no-op request for the current status.
//
//	pending   -> confirmed, cancelled
//	confirmed -> cancelled
//	cancelled -> pending, confirmed (re-reserves the full quantity)
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	case StatusCancelled:
		return next == StatusPending || next == StatusConfirmed
	default:
		return false
	}
}

// CommittedDelta returns the change to the pool's committed quantity implied
// by moving a booking of the given quantity from s to next. The caller must
// have validated the transition first.
func (s Status) CommittedDelta(next Status, quantity int) int {
	switch {
	case s.IsActive() && next == StatusCancelled:
		return -quantity
	case s == StatusCancelled && next.IsActive():
		return quantity
	default:
		return 0
	}
}
