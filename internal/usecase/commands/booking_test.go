//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/usecase/commands"
	"hotel-booking-api/internal/usecase/shared"
	"hotel-booking-api/tests/common/builder"
	queriesmock "hotel-booking-api/tests/mock/queries"
	sharedmock "hotel-booking-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingCommandsTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUoW      *sharedmock.MockUnitOfWork
	mockReads    *sharedmock.MockCommandReads
	mockTx       *sharedmock.MockTx
	mockBookings *sharedmock.MockBookingRepository
	mockQueries  *queriesmock.MockBookingQueries
	clock        *clock.MockClock
	commands     commands.BookingCommands
}

func (s *BookingCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUoW = sharedmock.NewMockUnitOfWork(s.mockCtrl)
	s.mockReads = sharedmock.NewMockCommandReads(s.mockCtrl)
	s.mockTx = sharedmock.NewMockTx(s.mockCtrl)
	s.mockBookings = sharedmock.NewMockBookingRepository(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.clock = clock.NewMockClock(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	s.mockUoW.EXPECT().CommandReads().Return(s.mockReads).AnyTimes()
	s.mockTx.EXPECT().Bookings().Return(s.mockBookings).AnyTimes()
	s.mockTx.EXPECT().DB().Return(nil).AnyTimes()

	s.commands = commands.NewBookingCommands(s.mockUoW, s.mockQueries, s.clock)
}

func (s *BookingCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingCommandsSuite(t *testing.T) {
	suite.Run(t, new(BookingCommandsTestSuite))
}

// expectWithin routes each transactional attempt through the suite's mock Tx.
func (s *BookingCommandsTestSuite) expectWithin(times int) {
	s.mockUoW.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.mockTx)
		}).Times(times)
}

func (s *BookingCommandsTestSuite) snapshots(numbers ...string) []*shared.RoomSnapshot {
	result := make([]*shared.RoomSnapshot, 0, len(numbers))
	for _, n := range numbers {
		result = append(result, builder.NewRoomBuilder().WithNumber(n).BuildSnapshot())
	}
	return result
}

func (s *BookingCommandsTestSuite) TestCreateBooking() {
	userID := uuid.New()
	req := builder.NewBookingBuilder().BuildCreateRequestDTO()

	s.Run("success: first free room takes the booking", func() {
		rooms := s.snapshots("101", "102")
		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(1)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), rooms[0].ID, gomock.Any()).
			Return(false, nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(rooms[0].ID, b.RoomID())
				s.Equal(userID, b.UserID())
				s.Equal(int32(300), b.TotalPrice())
				s.Equal(booking.StatusConfirmed, b.Status())
				return bookingID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("success: occupied room is skipped for the next candidate", func() {
		rooms := s.snapshots("101", "102")
		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(2)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), rooms[0].ID, gomock.Any()).
			Return(true, nil).Times(1)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), rooms[1].ID, gomock.Any()).
			Return(false, nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, b *booking.Booking) (uuid.UUID, error) {
				s.Equal(rooms[1].ID, b.RoomID())
				s.Equal("102", b.RoomNumber())
				return bookingID, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("success: losing the insert race advances to the next candidate", func() {
		rooms := s.snapshots("101", "102")
		bookingID := uuid.New()
		view := builder.NewBookingBuilder().BuildView()
		conflict := infra.WrapRepoErr("insert booking", errors.New("exclusion violation"), infra.KindConflict)

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(2)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(2)
		first := s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uuid.Nil, conflict).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1).After(first)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).Return(view, nil).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.NoError(err)
		s.Equal(view, actual)
	})

	s.Run("error: no rooms of the requested type", func() {
		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).
			Return([]*shared.RoomSnapshot{}, nil).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrNoRoomsAvailable)
	})

	s.Run("error: every candidate occupied over the stay", func() {
		rooms := s.snapshots("101", "102")

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(2)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(true, nil).Times(2)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrNoRoomsAvailable)
	})

	s.Run("error: guest count over the selected room's occupancy stops the loop", func() {
		rooms := s.snapshots("101", "102")
		overLimit := builder.NewBookingBuilder().WithGuestCount(3).BuildCreateRequestDTO()

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(1)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), rooms[0].ID, gomock.Any()).
			Return(false, nil).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), overLimit, userID)
		s.Nil(actual)

		var guestErr *commands.GuestCountOutOfRangeError
		s.ErrorAs(err, &guestErr)
		s.Equal(int32(2), guestErr.MaxOccupancy)
	})

	s.Run("error: past check-in fails before touching the store", func() {
		past := builder.NewBookingBuilder().
			WithStay(time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), time.Date(2024, 5, 23, 0, 0, 0, 0, time.UTC)).
			BuildCreateRequestDTO()

		actual, err := s.commands.CreateBooking(context.Background(), past, userID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrDomainValidation)
		s.ErrorIs(err, booking.ErrCheckInInPast)
	})

	s.Run("error: malformed date fails validation", func() {
		bad := builder.NewBookingBuilder().BuildCreateRequestDTO()
		bad.CheckInDate = "June 10, 2024"

		actual, err := s.commands.CreateBooking(context.Background(), bad, userID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrDomainValidation)
		s.ErrorIs(err, reqdto.ErrInvalidDateFormat)
	})

	s.Run("error: read-after-write failure surfaces as database error", func() {
		rooms := s.snapshots("101")
		bookingID := uuid.New()

		s.mockReads.EXPECT().AvailableRoomsByType(gomock.Any(), gomock.Any()).Return(rooms, nil).Times(1)
		s.expectWithin(1)
		s.mockBookings.EXPECT().HasOverlap(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(false, nil).Times(1)
		s.mockBookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(bookingID, nil).Times(1)
		s.mockQueries.EXPECT().GetByIDSystem(gomock.Any(), bookingID).
			Return(nil, errors.New("connection reset")).Times(1)

		actual, err := s.commands.CreateBooking(context.Background(), req, userID)
		s.Nil(actual)
		s.ErrorIs(err, commands.ErrDatabaseOperationFailed)
	})
}
