package commands

import (
	"context"
	"time"

	"ticket-booking/internal/domain/venue"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/errs"
	"ticket-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrVenueNotFound  = errs.New("venue not found")
	ErrVenueInUse     = errs.New("venue still has events")
	ErrDuplicateVenue = errs.New("venue name already taken")
)

type VenueRequest struct {
	Name        string
	Location    string
	Capacity    int
	Description string
}

type VenueCommands interface {
	CreateVenue(ctx context.Context, req VenueRequest) (uuid.UUID, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req VenueRequest) error
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type venueUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewVenueUseCase(uow shared.UnitOfWork) VenueCommands {
	return &venueUseCaseImpl{uow: uow}
}

func (uc *venueUseCaseImpl) CreateVenue(ctx context.Context, req VenueRequest) (uuid.UUID, error) {
	entity, err := venue.NewVenue(req.Name, req.Location, req.Capacity, req.Description)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Venues().Create(ctx, tx.DB(), entity)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateVenue
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

func (uc *venueUseCaseImpl) UpdateVenue(ctx context.Context, id uuid.UUID, req VenueRequest) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().VenueByID(ctx, id); derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}

		entity, derr := venue.NewVenue(req.Name, req.Location, req.Capacity, req.Description)
		if derr != nil {
			return errs.Mark(derr, ErrDomainValidation)
		}
		// Timestamps are owned by the repository (updated_at = now()).
		updated := venue.ReconstructVenue(
			id, entity.Name(), entity.Location(), entity.Capacity(), entity.Description(),
			time.Time{}, time.Time{},
		)

		if derr = tx.Venues().Update(ctx, tx.DB(), updated); derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return ErrDuplicateVenue
			}
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// DeleteVenue refuses while events still reference the venue; cascading a
// delete through events would silently drop pools and their bookings.
func (uc *venueUseCaseImpl) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		count, derr := tx.Reads().EventCountByVenue(ctx, id)
		if derr != nil {
			return errs.Mark(derr, ErrDatabaseOperationFailed)
		}
		if count > 0 {
			return ErrVenueInUse
		}

		if derr = tx.Venues().Delete(ctx, tx.DB(), id); derr != nil {
			switch {
			case infra.IsKind(derr, infra.KindNotFound):
				return ErrVenueNotFound
			case infra.IsKind(derr, infra.KindForeignKeyViolated):
				return ErrVenueInUse
			default:
				return errs.Mark(derr, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}
