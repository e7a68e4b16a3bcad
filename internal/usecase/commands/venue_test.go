//go:build unit

package commands_test

import (
	"context"
	"testing"

	"ticket-booking/internal/domain/venue"
	"ticket-booking/internal/infra/db"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/shared"
	sharedmock "ticket-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VenueUseCaseTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	reads  *sharedmock.MockCommandReads
	venues *sharedmock.MockVenueRepository

	uc commands.VenueCommands
}

func (s *VenueUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.venues = sharedmock.NewMockVenueRepository(s.ctrl)

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Venues().Return(s.venues).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()

	s.uc = commands.NewVenueUseCase(s.uow)
}

func (s *VenueUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVenueUseCaseSuite(t *testing.T) {
	suite.Run(t, new(VenueUseCaseTestSuite))
}

func venueRequest() commands.VenueRequest {
	return commands.VenueRequest{
		Name:        "Royal Albert Hall",
		Location:    "Kensington Gore, London",
		Capacity:    5272,
		Description: "Victorian concert hall",
	}
}

// ================================================================================
// CreateVenue
// ================================================================================

func (s *VenueUseCaseTestSuite) TestCreateVenue() {
	ctx := context.Background()

	s.Run("success: returns the repository id", func() {
		id := uuid.New()
		s.venues.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(id, nil)

		got, err := s.uc.CreateVenue(ctx, venueRequest())
		s.NoError(err)
		s.Equal(id, got)
	})

	s.Run("error: duplicate name", func() {
		s.venues.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, duplicateKeyErr())

		_, err := s.uc.CreateVenue(ctx, venueRequest())
		s.ErrorIs(err, commands.ErrDuplicateVenue)
	})

	s.Run("error: invalid input never reaches the repository", func() {
		req := venueRequest()
		req.Name = "   "

		_, err := s.uc.CreateVenue(ctx, req)
		s.ErrorIs(err, commands.ErrDomainValidation)
	})
}

// ================================================================================
// UpdateVenue
// ================================================================================

func (s *VenueUseCaseTestSuite) TestUpdateVenue() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success: keeps the original id", func() {
		s.reads.EXPECT().VenueByID(gomock.Any(), id).Return(&shared.VenueSnapshot{ID: id}, nil)
		s.venues.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, v *venue.Venue) error {
				s.Equal(id, v.ID())
				return nil
			})

		s.NoError(s.uc.UpdateVenue(ctx, id, venueRequest()))
	})

	s.Run("error: unknown venue", func() {
		s.reads.EXPECT().VenueByID(gomock.Any(), id).
			Return(nil, notFoundErr())

		err := s.uc.UpdateVenue(ctx, id, venueRequest())
		s.ErrorIs(err, commands.ErrVenueNotFound)
	})
}

// ================================================================================
// DeleteVenue
// ================================================================================

func (s *VenueUseCaseTestSuite) TestDeleteVenue() {
	ctx := context.Background()
	id := uuid.New()

	s.Run("success: no events reference the venue", func() {
		s.reads.EXPECT().EventCountByVenue(gomock.Any(), id).Return(int64(0), nil)
		s.venues.EXPECT().Delete(gomock.Any(), gomock.Any(), id).Return(nil)

		s.NoError(s.uc.DeleteVenue(ctx, id))
	})

	s.Run("error: refuses while events remain", func() {
		s.reads.EXPECT().EventCountByVenue(gomock.Any(), id).Return(int64(3), nil)

		err := s.uc.DeleteVenue(ctx, id)
		s.ErrorIs(err, commands.ErrVenueInUse)
	})

	s.Run("error: unknown venue", func() {
		s.reads.EXPECT().EventCountByVenue(gomock.Any(), id).Return(int64(0), nil)
		s.venues.EXPECT().Delete(gomock.Any(), gomock.Any(), id).
			Return(notFoundErr())

		err := s.uc.DeleteVenue(ctx, id)
		s.ErrorIs(err, commands.ErrVenueNotFound)
	})
}
