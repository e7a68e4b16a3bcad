package commands

import (
	"context"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/domain/tickettype"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTicketTypeInUse = errs.New("ticket type still has committed tickets")

type TicketTypeRequest struct {
	EventID    uuid.UUID
	Name       string
	PriceCents int64
	Capacity   int
}

type TicketTypeCommands interface {
	CreateTicketType(ctx context.Context, req TicketTypeRequest) (uuid.UUID, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, priceCents int64) error
	DeleteTicketType(ctx context.Context, id uuid.UUID) error
}

type ticketTypeUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewTicketTypeUseCase(uow shared.UnitOfWork) TicketTypeCommands {
	return &ticketTypeUseCaseImpl{uow: uow}
}

// CreateTicketType seeds the (event, ticket type) pool with committed = 0.
func (uc *ticketTypeUseCaseImpl) CreateTicketType(ctx context.Context, req TicketTypeRequest) (uuid.UUID, error) {
	price, err := booking.NewMoney(req.PriceCents)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	entity, err := tickettype.NewTicketType(req.EventID, req.Name, price, req.Capacity)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().EventByID(ctx, req.EventID); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrEventNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		id, derr := tx.TicketTypes().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindForeignKeyViolated) {
				return ErrEventNotFound
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

// UpdatePrice does not touch existing bookings; each carries its own
// unit-price snapshot from creation time.
func (uc *ticketTypeUseCaseImpl) UpdatePrice(ctx context.Context, id uuid.UUID, priceCents int64) error {
	if _, err := booking.NewMoney(priceCents); err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.TicketTypes().UpdatePrice(ctx, tx.DB(), id, priceCents)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrTicketTypeNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (uc *ticketTypeUseCaseImpl) DeleteTicketType(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.TicketTypes().Delete(ctx, tx.DB(), id)
		if derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrTicketTypeNotFound
			case infra.IsKind(derr, infra.KindCapacityExceeded):
				return ErrTicketTypeInUse
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return ErrTicketTypeInUse
			default:
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
