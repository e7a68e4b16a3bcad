package commands

import (
	"context"
	"time"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFoundForEvent = errs.New("venue not found for event")
	ErrEventInUse            = errs.New("event still has ticket types")
)

type EventRequest struct {
	VenueID     uuid.UUID
	Name        string
	Description string
	StartsAt    time.Time
}

type EventCommands interface {
	CreateEvent(ctx context.Context, req EventRequest) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req EventRequest) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type eventUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewEventUseCase(uow shared.UnitOfWork) EventCommands {
	return &eventUseCaseImpl{uow: uow}
}

func (uc *eventUseCaseImpl) CreateEvent(ctx context.Context, req EventRequest) (uuid.UUID, error) {
	entity, err := event.NewEvent(req.VenueID, req.Name, req.Description, req.StartsAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().VenueByID(ctx, req.VenueID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrVenueNotFoundForEvent
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		id, derr := tx.Events().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrVenueNotFoundForEvent
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return createdID, nil
}

// UpdateEvent keeps the venue binding fixed; moving an event across venues
// is not supported since its pools would carry over unchecked.
func (uc *eventUseCaseImpl) UpdateEvent(ctx context.Context, id uuid.UUID, req EventRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().EventByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		entity, derr := event.NewEvent(snap.VenueID, req.Name, req.Description, req.StartsAt)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		updated := event.ReconstructEvent(
			id, snap.VenueID, entity.Name(), entity.Description(), entity.StartsAt(),
			time.Time{}, time.Time{},
		)

		if derr = tx.Events().Update(ctx, tx.DB(), updated); derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *eventUseCaseImpl) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, derr := tx.Reads().TicketTypeCountByEvent(ctx, id)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if count > 0 {
			return ErrEventInUse
		}

		if derr = tx.Events().Delete(ctx, tx.DB(), id); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrEventNotFound
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return ErrEventInUse
			default:
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
