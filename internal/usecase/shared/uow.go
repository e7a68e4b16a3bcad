package shared

import (
	"context"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/domain/inventory"
	"ticket-booking/internal/domain/tickettype"
	"ticket-booking/internal/domain/venue"
	"ticket-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Pools() PoolRepository
	Venues() VenueRepository
	Events() EventRepository
	TicketTypes() TicketTypeRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	VenueByID(ctx context.Context, id uuid.UUID) (*VenueSnapshot, error)
	EventByID(ctx context.Context, id uuid.UUID) (*EventSnapshot, error)
	TicketTypeByID(ctx context.Context, id uuid.UUID) (*TicketTypeSnapshot, error)
	// BookingByIDForUpdate locks the booking row for the rest of the
	// transaction, so the status read and the ledger call that depends on
	// it cannot interleave with a concurrent transition.
	BookingByIDForUpdate(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	EventCountByVenue(ctx context.Context, venueID uuid.UUID) (int64, error)
	TicketTypeCountByEvent(ctx context.Context, eventID uuid.UUID) (int64, error)
}

// Minimal snapshots for command-side validation reads
type VenueSnapshot struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int
}

type EventSnapshot struct {
	ID       uuid.UUID
	VenueID  uuid.UUID
	Name     string
	StartsAt time.Time
}

type TicketTypeSnapshot struct {
	ID         uuid.UUID
	EventID    uuid.UUID
	Name       string
	PriceCents int64
	Capacity   int
	Committed  int
}

type BookingSnapshot struct {
	ID               uuid.UUID
	EventID          uuid.UUID
	TicketTypeID     uuid.UUID
	UserName         string
	UserEmail        string
	Quantity         int
	UnitPriceCents   int64
	TotalPriceCents  int64
	Status           string
	ConfirmationCode string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, tx db.DBTX, b *booking.Booking) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, b *booking.Booking) error
}

// PoolRepository is the transactional ledger: each method is one guarded SQL
// statement, so the capacity check and the committed update are a single
// atomic step under the pool row's lock.
type PoolRepository interface {
	Reserve(ctx context.Context, tx db.DBTX, key inventory.PoolKey, quantity int) error
	Release(ctx context.Context, tx db.DBTX, key inventory.PoolKey, quantity int) error
	Adjust(ctx context.Context, tx db.DBTX, key inventory.PoolKey, delta int) error
}

type VenueRepository interface {
	Create(ctx context.Context, tx db.DBTX, v *venue.Venue) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, v *venue.Venue) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type EventRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *event.Event) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, e *event.Event) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type TicketTypeRepository interface {
	Create(ctx context.Context, tx db.DBTX, t *tickettype.TicketType) (uuid.UUID, error)
	UpdatePrice(ctx context.Context, tx db.DBTX, id uuid.UUID, priceCents int64) error
	// Delete removes a ticket type and its pool, guarded so it only
	// succeeds while committed == 0.
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}
