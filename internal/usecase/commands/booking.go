package commands

import (
	"context"
	"log/slog"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/inventory"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/confirmation"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/queries"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound           = errs.New("event not found")
	ErrTicketTypeNotFound      = errs.New("ticket type not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrTicketTypeMismatch      = errs.New("ticket type does not belong to event")
	ErrInsufficientCapacity    = errs.New("insufficient capacity")
	ErrInvalidBookingStatus    = errs.New("invalid booking status")
	ErrInvalidTransition       = errs.New("invalid status transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrConfirmationExhausted   = errs.New("confirmation code generation exhausted")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Unique-index collisions on the confirmation code are vanishingly rare with
// an 8-char alphanumeric code; a couple of retries is plenty.
const maxConfirmationAttempts = 3

type CreateBookingRequest struct {
	EventID      uuid.UUID
	TicketTypeID uuid.UUID
	UserName     string
	UserEmail    string
	Quantity     int
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error)
	ChangeQuantity(ctx context.Context, bookingID uuid.UUID, newQuantity int) (*queries.BookingView, error)
	SetStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*queries.BookingView, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	codes          confirmation.Generator
	publisher      BookingEventPublisher
	clock          clock.Clock
}

func NewBookingUseCase(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	codes confirmation.Generator,
	publisher BookingEventPublisher,
	clk clock.Clock,
) BookingCommands {
	return &bookingUseCaseImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		codes:          codes,
		publisher:      publisher,
		clock:          clk,
	}
}

// CreateBooking reserves capacity and persists the booking in one
// transaction, so a committed booking always has its tickets. The whole
// transaction is retried with a fresh code if the confirmation code collides,
// because the unique-index violation aborts the original transaction.
func (uc *bookingUseCaseImpl) CreateBooking(ctx context.Context, req CreateBookingRequest) (*queries.BookingView, error) {
	buyer, err := booking.NewBuyer(req.UserName, req.UserEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	var createdEvt BookingCreatedEvent

	for attempt := 0; attempt < maxConfirmationAttempts; attempt++ {
		code, err := uc.codes.NewCode()
		if err != nil {
			return nil, errs.Mark(err, ErrConfirmationExhausted)
		}

		err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			eventSnap, derr := tx.Reads().EventByID(ctx, req.EventID)
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrEventNotFound
				}
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}

			ttSnap, derr := tx.Reads().TicketTypeByID(ctx, req.TicketTypeID)
			if derr != nil {
				if infra.IsKind(derr, infra.KindNotFound) {
					return ErrTicketTypeNotFound
				}
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
			if ttSnap.EventID != eventSnap.ID {
				return ErrTicketTypeMismatch
			}

			key := inventory.PoolKey{EventID: eventSnap.ID, TicketTypeID: ttSnap.ID}
			unitPrice := booking.ReconstructMoney(ttSnap.PriceCents)

			entity, derr := booking.NewBooking(key, buyer, req.Quantity, unitPrice, code, uc.clock.Now())
			if derr != nil {
				return errs.Mark(derr, ErrDomainValidation)
			}

			if derr = tx.Pools().Reserve(ctx, tx.DB(), key, req.Quantity); derr != nil {
				return translatePoolErr(derr)
			}

			id, derr := tx.Bookings().Create(ctx, tx.DB(), entity)
			if derr != nil {
				return derr
			}
			bookingID = id

			createdEvt = BookingCreatedEvent{
				BookingID:        id,
				EventID:          eventSnap.ID,
				TicketTypeID:     ttSnap.ID,
				EventName:        eventSnap.Name,
				TicketTypeName:   ttSnap.Name,
				UserName:         buyer.Name(),
				UserEmail:        buyer.Email(),
				Quantity:         entity.Quantity(),
				TotalPriceCents:  entity.TotalPrice().Cents(),
				ConfirmationCode: entity.ConfirmationCode(),
				CreatedAt:        entity.CreatedAt().UTC().Format(time.RFC3339),
			}
			return nil
		})
		if err == nil {
			break
		}
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxConfirmationAttempts-1 {
			slog.Warn("confirmation code collision, retrying with a new code", "attempt", attempt+1)
			continue
		}
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrConfirmationExhausted)
		}
		return nil, err
	}

	uc.publishCreated(ctx, createdEvt)

	// Read-after-write: return the full view from the read store
	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// ChangeQuantity resizes an active booking and applies the ledger delta in
// the same transaction. Shrinking always succeeds; growing is subject to the
// pool's capacity guard.
func (uc *bookingUseCaseImpl) ChangeQuantity(ctx context.Context, bookingID uuid.UUID, newQuantity int) (*queries.BookingView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, derr := loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}

		delta, derr := entity.ChangeQuantity(newQuantity, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}

		if delta != 0 {
			if derr = tx.Pools().Adjust(ctx, tx.DB(), entity.Pool(), delta); derr != nil {
				return translatePoolErr(derr)
			}
		}

		return tx.Bookings().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

// SetStatus drives the booking state machine. The transition's ledger effect
// (release on cancel, re-reserve on reinstate) commits atomically with the
// status change, so a reinstate that cannot get tickets back fails whole.
func (uc *bookingUseCaseImpl) SetStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*queries.BookingView, error) {
	return uc.applyTransition(ctx, bookingID, next, false)
}

// CancelBooking is idempotent: cancelling an already-cancelled booking
// returns the current view without touching the ledger again.
func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*queries.BookingView, error) {
	return uc.applyTransition(ctx, bookingID, booking.StatusCancelled, true)
}

func (uc *bookingUseCaseImpl) applyTransition(ctx context.Context, bookingID uuid.UUID, next booking.Status, tolerateNoop bool) (*queries.BookingView, error) {
	var cancelledEvt *BookingCancelledEvent

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		entity, derr := loadBooking(ctx, tx, bookingID)
		if derr != nil {
			return derr
		}

		if tolerateNoop && entity.Status() == next {
			return nil
		}

		delta, derr := entity.TransitionTo(next, uc.clock.Now())
		if derr != nil {
			return errs.Mark(derr, ErrInvalidTransition)
		}

		if delta != 0 {
			if derr = tx.Pools().Adjust(ctx, tx.DB(), entity.Pool(), delta); derr != nil {
				return translatePoolErr(derr)
			}
		}

		if derr = tx.Bookings().Update(ctx, tx.DB(), entity); derr != nil {
			return derr
		}

		if next == booking.StatusCancelled {
			cancelledEvt = &BookingCancelledEvent{
				BookingID:    entity.ID(),
				EventID:      entity.Pool().EventID,
				TicketTypeID: entity.Pool().TicketTypeID,
				UserEmail:    entity.Buyer().Email(),
				Quantity:     entity.Quantity(),
				CancelledAt:  entity.UpdatedAt().UTC().Format(time.RFC3339),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if cancelledEvt != nil {
		uc.publishCancelled(ctx, *cancelledEvt)
	}

	view, err := uc.bookingQueries.GetByID(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func loadBooking(ctx context.Context, tx shared.Tx, id uuid.UUID) (*booking.Booking, error) {
	snap, err := tx.Reads().BookingByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	status, err := booking.ParseStatus(snap.Status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingStatus)
	}

	return booking.ReconstructBooking(
		snap.ID,
		inventory.PoolKey{EventID: snap.EventID, TicketTypeID: snap.TicketTypeID},
		booking.ReconstructBuyer(snap.UserName, snap.UserEmail),
		snap.Quantity,
		booking.ReconstructMoney(snap.UnitPriceCents),
		booking.ReconstructMoney(snap.TotalPriceCents),
		status,
		snap.ConfirmationCode,
		snap.CreatedAt,
		snap.UpdatedAt,
	), nil
}

func translatePoolErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindCapacityExceeded):
		return errs.Mark(err, ErrInsufficientCapacity)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrTicketTypeNotFound)
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

// Publishing is best effort. The booking is already committed; a broker
// outage must not surface as a booking failure.
func (uc *bookingUseCaseImpl) publishCreated(ctx context.Context, evt BookingCreatedEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishBookingCreated(ctx, evt); err != nil {
		slog.Warn("failed to publish booking created event",
			"booking_id", evt.BookingID, "error", err.Error())
	}
}

func (uc *bookingUseCaseImpl) publishCancelled(ctx context.Context, evt BookingCancelledEvent) {
	if uc.publisher == nil {
		return
	}
	if err := uc.publisher.PublishBookingCancelled(ctx, evt); err != nil {
		slog.Warn("failed to publish booking cancelled event",
			"booking_id", evt.BookingID, "error", err.Error())
	}
}
