package booking

import (
	"errors"
	"time"

	"ticket-booking/internal/domain/inventory"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantity must be positive")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrBookingCancelled  = errors.New("booking is cancelled")
	ErrEmptyConfirmation = errors.New("confirmation code cannot be empty")
)

// Booking is one reservation against a ticket pool. While its status is
// active (pending or confirmed) its quantity is part of the pool's committed
// total; the state machine keeps the two in step through the ledger.
type Booking struct {
	id               uuid.UUID
	pool             inventory.PoolKey
	buyer            Buyer
	quantity         int
	unitPrice        Money
	totalPrice       Money
	status           Status
	confirmationCode string
	createdAt        time.Time
	updatedAt        time.Time
}

func NewBooking(
	pool inventory.PoolKey,
	buyer Buyer,
	quantity int,
	unitPrice Money,
	confirmationCode string,
	now time.Time,
) (*Booking, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if confirmationCode == "" {
		return nil, ErrEmptyConfirmation
	}

	return &Booking{
		id:               uuid.New(),
		pool:             pool,
		buyer:            buyer,
		quantity:         quantity,
		unitPrice:        unitPrice,
		totalPrice:       TotalPrice(unitPrice, quantity),
		status:           StatusPending,
		confirmationCode: confirmationCode,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

func ReconstructBooking(
	id uuid.UUID,
	pool inventory.PoolKey,
	buyer Buyer,
	quantity int,
	unitPrice, totalPrice Money,
	status Status,
	confirmationCode string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		pool:             pool,
		buyer:            buyer,
		quantity:         quantity,
		unitPrice:        unitPrice,
		totalPrice:       totalPrice,
		status:           status,
		confirmationCode: confirmationCode,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

// TransitionTo validates the requested status change against the transition
// table and returns the pool delta the caller must apply through the ledger
// in the same atomic step as persisting the new status.
func (b *Booking) TransitionTo(next Status, now time.Time) (delta int, err error) {
	if !b.status.CanTransitionTo(next) {
		return 0, ErrInvalidTransition
	}
	delta = b.status.CommittedDelta(next, b.quantity)
	b.status = next
	b.updatedAt = now
	return delta, nil
}

// ChangeQuantity updates the quantity and recomputes the total from the
// unit-price snapshot, returning the pool delta (newQuantity - old) the
// caller must apply through the ledger atomically with the update.
// Cancelled bookings hold no tickets and cannot be resized.
func (b *Booking) ChangeQuantity(newQuantity int, now time.Time) (delta int, err error) {
	if newQuantity <= 0 {
		return 0, ErrInvalidQuantity
	}
	if b.status == StatusCancelled {
		return 0, ErrBookingCancelled
	}
	delta = newQuantity - b.quantity
	b.quantity = newQuantity
	b.totalPrice = TotalPrice(b.unitPrice, newQuantity)
	b.updatedAt = now
	return delta, nil
}

// AssignConfirmationCode replaces the code after a uniqueness collision.
func (b *Booking) AssignConfirmationCode(code string) error {
	if code == "" {
		return ErrEmptyConfirmation
	}
	b.confirmationCode = code
	return nil
}

func (b *Booking) IsActive() bool    { return b.status.IsActive() }
func (b *Booking) IsCancelled() bool { return b.status == StatusCancelled }

func (b *Booking) ID() uuid.UUID           { return b.id }
func (b *Booking) Pool() inventory.PoolKey { return b.pool }
func (b *Booking) Buyer() Buyer            { return b.buyer }
func (b *Booking) Quantity() int           { return b.quantity }
func (b *Booking) UnitPrice() Money        { return b.unitPrice }
func (b *Booking) TotalPrice() Money       { return b.totalPrice }
func (b *Booking) Status() Status          { return b.status }
func (b *Booking) ConfirmationCode() string { return b.confirmationCode }
func (b *Booking) CreatedAt() time.Time    { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time    { return b.updatedAt }
