package tickettype

import (
	"errors"
	"strings"
	"time"

	"ticket-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyTicketTypeName = errors.New("ticket type name cannot be empty")
	ErrNegativeCapacity    = errors.New("ticket type capacity cannot be negative")
)

// TicketType defines one sellable ticket class for an event. Its capacity
// seeds the (event, ticket-type) pool; the committed counter itself lives
// with the pool and is owned by the ledger.
type TicketType struct {
	id        uuid.UUID
	eventID   uuid.UUID
	name      string
	price     booking.Money
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewTicketType(eventID uuid.UUID, name string, price booking.Money, capacity int) (*TicketType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTicketTypeName
	}
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}

	return &TicketType{
		id:       uuid.New(),
		eventID:  eventID,
		name:     name,
		price:    price,
		capacity: capacity,
	}, nil
}

func ReconstructTicketType(id, eventID uuid.UUID, name string, price booking.Money, capacity int, createdAt, updatedAt time.Time) *TicketType {
	return &TicketType{
		id:        id,
		eventID:   eventID,
		name:      name,
		price:     price,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *TicketType) ID() uuid.UUID        { return t.id }
func (t *TicketType) EventID() uuid.UUID   { return t.eventID }
func (t *TicketType) Name() string         { return t.name }
func (t *TicketType) Price() booking.Money { return t.price }
func (t *TicketType) Capacity() int        { return t.capacity }
func (t *TicketType) CreatedAt() time.Time { return t.createdAt }
func (t *TicketType) UpdatedAt() time.Time { return t.updatedAt }
