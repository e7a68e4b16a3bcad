//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticket-booking/internal/domain/booking"
	"ticket-booking/internal/infra"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/confirmation"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"
	"ticket-booking/internal/usecase/shared"
	commandsmock "ticket-booking/tests/mock/commands"
	queriesmock "ticket-booking/tests/mock/queries"
	sharedmock "ticket-booking/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingUseCaseTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	reads     *sharedmock.MockCommandReads
	pools     *sharedmock.MockPoolRepository
	bookings  *sharedmock.MockBookingRepository
	views     *queriesmock.MockBookingQueries
	publisher *commandsmock.MockBookingEventPublisher
	clk       *clock.MockClock

	uc commands.BookingCommands

	eventID      uuid.UUID
	ticketTypeID uuid.UUID
}

func (s *BookingUseCaseTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.pools = sharedmock.NewMockPoolRepository(s.ctrl)
	s.bookings = sharedmock.NewMockBookingRepository(s.ctrl)
	s.views = queriesmock.NewMockBookingQueries(s.ctrl)
	s.publisher = commandsmock.NewMockBookingEventPublisher(s.ctrl)
	s.clk = clock.NewMockClock(time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC))

	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Pools().Return(s.pools).AnyTimes()
	s.tx.EXPECT().Bookings().Return(s.bookings).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()

	// Every Within call executes its body against the mocked transaction.
	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		},
	).AnyTimes()

	s.uc = commands.NewBookingUseCase(
		s.uow,
		s.views,
		&confirmation.FixedGenerator{Code: "TESTCODE"},
		s.publisher,
		s.clk,
	)

	s.eventID = uuid.New()
	s.ticketTypeID = uuid.New()
}

func (s *BookingUseCaseTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(BookingUseCaseTestSuite))
}

func (s *BookingUseCaseTestSuite) eventSnapshot() *shared.EventSnapshot {
	return &shared.EventSnapshot{
		ID:       s.eventID,
		VenueID:  uuid.New(),
		Name:     "Spring Jazz Night",
		StartsAt: time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC),
	}
}

func (s *BookingUseCaseTestSuite) ticketTypeSnapshot() *shared.TicketTypeSnapshot {
	return &shared.TicketTypeSnapshot{
		ID:         s.ticketTypeID,
		EventID:    s.eventID,
		Name:       "General Admission",
		PriceCents: 2500,
		Capacity:   100,
		Committed:  10,
	}
}

func (s *BookingUseCaseTestSuite) createRequest() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		EventID:      s.eventID,
		TicketTypeID: s.ticketTypeID,
		UserName:     "Jordan Lee",
		UserEmail:    "jordan@example.com",
		Quantity:     3,
	}
}

func notFoundErr() error {
	return infra.WrapRepoErr("no rows", errors.New("no rows"), infra.KindNotFound)
}

func duplicateKeyErr() error {
	return infra.WrapRepoErr("unique violation", errors.New("23505"), infra.KindDuplicateKey)
}

func capacityErr() error {
	return infra.WrapRepoErr("capacity check failed", nil, infra.KindCapacityExceeded)
}

// ================================================================================
// CreateBooking
// ================================================================================

func (s *BookingUseCaseTestSuite) TestCreateBooking() {
	s.Run("success reserves capacity, persists and publishes", func() {
		bookingID := uuid.New()
		view := &queries.BookingView{ID: bookingID, Status: "pending", Quantity: 3}

		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(s.ticketTypeSnapshot(), nil)
		s.pools.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(3, b.Quantity())
				s.Equal(int64(2500), b.UnitPrice().Cents())
				s.Equal(int64(7500), b.TotalPrice().Cents())
				s.Equal(booking.StatusPending, b.Status())
				s.Equal("TESTCODE", b.ConfirmationCode())
				return bookingID, nil
			},
		)
		s.publisher.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt commands.BookingCreatedEvent) error {
				s.Equal(bookingID, evt.BookingID)
				s.Equal("Spring Jazz Night", evt.EventName)
				s.Equal(3, evt.Quantity)
				s.Equal(int64(7500), evt.TotalPriceCents)
				return nil
			},
		)
		s.views.EXPECT().GetByID(gomock.Any(), bookingID).Return(view, nil)

		got, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("unknown event", func() {
		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(nil, notFoundErr())

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().ErrorIs(err, commands.ErrEventNotFound)
	})

	s.Run("unknown ticket type", func() {
		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(nil, notFoundErr())

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().ErrorIs(err, commands.ErrTicketTypeNotFound)
	})

	s.Run("ticket type belonging to another event", func() {
		foreign := s.ticketTypeSnapshot()
		foreign.EventID = uuid.New()

		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(foreign, nil)

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().ErrorIs(err, commands.ErrTicketTypeMismatch)
	})

	s.Run("insufficient capacity surfaces conflict and skips persistence", func() {
		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(s.ticketTypeSnapshot(), nil)
		s.pools.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(capacityErr())

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().ErrorIs(err, commands.ErrInsufficientCapacity)
	})

	s.Run("invalid buyer fails before any transaction", func() {
		req := s.createRequest()
		req.UserEmail = "not-an-email"

		_, err := s.uc.CreateBooking(context.Background(), req)
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("confirmation code collision retries whole transaction with fresh code", func() {
		bookingID := uuid.New()

		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil).Times(2)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(s.ticketTypeSnapshot(), nil).Times(2)
		s.pools.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil).Times(2)
		gomock.InOrder(
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, duplicateKeyErr()),
			s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil),
		)
		s.publisher.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), bookingID).Return(&queries.BookingView{ID: bookingID}, nil)

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().NoError(err)
	})

	s.Run("persistent collisions give up after the retry budget", func() {
		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil).Times(3)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(s.ticketTypeSnapshot(), nil).Times(3)
		s.pools.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil).Times(3)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(uuid.Nil, duplicateKeyErr()).Times(3)

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().ErrorIs(err, commands.ErrConfirmationExhausted)
	})

	s.Run("broker outage does not fail the booking", func() {
		bookingID := uuid.New()

		s.reads.EXPECT().EventByID(gomock.Any(), s.eventID).Return(s.eventSnapshot(), nil)
		s.reads.EXPECT().TicketTypeByID(gomock.Any(), s.ticketTypeID).Return(s.ticketTypeSnapshot(), nil)
		s.pools.EXPECT().Reserve(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil)
		s.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingID, nil)
		s.publisher.EXPECT().PublishBookingCreated(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))
		s.views.EXPECT().GetByID(gomock.Any(), bookingID).Return(&queries.BookingView{ID: bookingID}, nil)

		_, err := s.uc.CreateBooking(context.Background(), s.createRequest())
		s.Require().NoError(err)
	})
}

// ================================================================================
// ChangeQuantity
// ================================================================================

func (s *BookingUseCaseTestSuite) bookingSnapshot(status string, quantity int) *shared.BookingSnapshot {
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	return &shared.BookingSnapshot{
		ID:               uuid.New(),
		EventID:          s.eventID,
		TicketTypeID:     s.ticketTypeID,
		UserName:         "Jordan Lee",
		UserEmail:        "jordan@example.com",
		Quantity:         quantity,
		UnitPriceCents:   2500,
		TotalPriceCents:  2500 * int64(quantity),
		Status:           status,
		ConfirmationCode: "TESTCODE",
		CreatedAt:        created,
		UpdatedAt:        created,
	}
}

func (s *BookingUseCaseTestSuite) TestChangeQuantity() {
	s.Run("growing applies a positive ledger delta", func() {
		snap := s.bookingSnapshot("pending", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), 3).Return(nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, b *booking.Booking) error {
				s.Equal(5, b.Quantity())
				s.Equal(int64(12500), b.TotalPrice().Cents())
				return nil
			},
		)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID}, nil)

		_, err := s.uc.ChangeQuantity(context.Background(), snap.ID, 5)
		s.Require().NoError(err)
	})

	s.Run("shrinking applies a negative ledger delta", func() {
		snap := s.bookingSnapshot("confirmed", 5)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), -3).Return(nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID}, nil)

		_, err := s.uc.ChangeQuantity(context.Background(), snap.ID, 2)
		s.Require().NoError(err)
	})

	s.Run("unchanged quantity skips the ledger", func() {
		snap := s.bookingSnapshot("pending", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID}, nil)

		_, err := s.uc.ChangeQuantity(context.Background(), snap.ID, 2)
		s.Require().NoError(err)
	})

	s.Run("growing past capacity rolls back", func() {
		snap := s.bookingSnapshot("pending", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), 98).Return(capacityErr())

		_, err := s.uc.ChangeQuantity(context.Background(), snap.ID, 100)
		s.Require().ErrorIs(err, commands.ErrInsufficientCapacity)
	})

	s.Run("cancelled booking cannot be resized", func() {
		snap := s.bookingSnapshot("cancelled", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.uc.ChangeQuantity(context.Background(), snap.ID, 4)
		s.Require().ErrorIs(err, commands.ErrDomainValidation)
	})

	s.Run("unknown booking", func() {
		id := uuid.New()
		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), id).Return(nil, notFoundErr())

		_, err := s.uc.ChangeQuantity(context.Background(), id, 4)
		s.Require().ErrorIs(err, commands.ErrBookingNotFound)
	})
}

// ================================================================================
// SetStatus / CancelBooking
// ================================================================================

func (s *BookingUseCaseTestSuite) TestSetStatus() {
	s.Run("confirming keeps the hold and skips the ledger", func() {
		snap := s.bookingSnapshot("pending", 4)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, b *booking.Booking) error {
				s.Equal(booking.StatusConfirmed, b.Status())
				return nil
			},
		)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID}, nil)

		_, err := s.uc.SetStatus(context.Background(), snap.ID, booking.StatusConfirmed)
		s.Require().NoError(err)
	})

	s.Run("cancelling releases the quantity and publishes", func() {
		snap := s.bookingSnapshot("confirmed", 4)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), -4).Return(nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, evt commands.BookingCancelledEvent) error {
				s.Equal(snap.ID, evt.BookingID)
				s.Equal(4, evt.Quantity)
				return nil
			},
		)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID}, nil)

		_, err := s.uc.SetStatus(context.Background(), snap.ID, booking.StatusCancelled)
		s.Require().NoError(err)
	})

	s.Run("reinstating re-reserves and can fail on capacity", func() {
		snap := s.bookingSnapshot("cancelled", 4)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), 4).Return(capacityErr())

		_, err := s.uc.SetStatus(context.Background(), snap.ID, booking.StatusPending)
		s.Require().ErrorIs(err, commands.ErrInsufficientCapacity)
	})

	s.Run("invalid transition", func() {
		snap := s.bookingSnapshot("confirmed", 4)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.uc.SetStatus(context.Background(), snap.ID, booking.StatusPending)
		s.Require().ErrorIs(err, commands.ErrInvalidTransition)
	})

	s.Run("losing a cancel race releases nothing", func() {
		// The locked read serializes transitions, so the second canceller
		// observes the committed cancelled row, not the stale pending one.
		snap := s.bookingSnapshot("cancelled", 3)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)

		_, err := s.uc.SetStatus(context.Background(), snap.ID, booking.StatusCancelled)
		s.Require().ErrorIs(err, commands.ErrInvalidTransition)
	})

	s.Run("CancelBooking is a cancel transition", func() {
		snap := s.bookingSnapshot("pending", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.pools.EXPECT().Adjust(gomock.Any(), gomock.Any(), gomock.Any(), -2).Return(nil)
		s.bookings.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.publisher.EXPECT().PublishBookingCancelled(gomock.Any(), gomock.Any()).Return(nil)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID, Status: "cancelled"}, nil)

		view, err := s.uc.CancelBooking(context.Background(), snap.ID)
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})

	s.Run("CancelBooking of a cancelled booking is a no-op", func() {
		snap := s.bookingSnapshot("cancelled", 2)

		s.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), snap.ID).Return(snap, nil)
		s.views.EXPECT().GetByID(gomock.Any(), snap.ID).Return(&queries.BookingView{ID: snap.ID, Status: "cancelled"}, nil)

		view, err := s.uc.CancelBooking(context.Background(), snap.ID)
		s.Require().NoError(err)
		s.Equal("cancelled", view.Status)
	})
}
