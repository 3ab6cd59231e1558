package commands

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking-api/internal/domain/booking"
	reqdto "hotel-booking-api/internal/handler/dto/request"
	"hotel-booking-api/internal/infra"
	"hotel-booking-api/internal/pkg/clock"
	"hotel-booking-api/internal/pkg/errs"
	"hotel-booking-api/internal/usecase/queries"
	"hotel-booking-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrNoRoomsAvailable        = errs.New("no rooms available")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")

	// candidate lost to a concurrent booking; internal to the first-fit loop
	errCandidateBusy = errs.New("candidate room busy")
)

// GuestCountOutOfRangeError carries the limit of the room the party was
// matched against, so the caller can say how many guests would have fit.
type GuestCountOutOfRangeError struct {
	MaxOccupancy int32
}

func (e *GuestCountOutOfRangeError) Error() string {
	return fmt.Sprintf("guest count must be between 1 and %d", e.MaxOccupancy)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest, userID uuid.UUID) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	clock          clock.Clock
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	bookingQueries queries.BookingQueries,
	clock clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		clock:          clock,
	}
}

// CreateBooking admits a stay request against the inventory: candidates of the
// requested type are tried in room-number order and the first one free over
// the stay interval takes the booking.
//
// Each candidate is attempted in its own short transaction. The bookings
// exclusion constraint aborts the transaction of any insert that loses a race,
// so the loop resumes cleanly with the next candidate instead of fighting over
// an aborted one.
func (b *bookingCommandsImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
	userID uuid.UUID,
) (*queries.BookingView, error) {
	domainData, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if err := domainData.Stay.ValidateNotPast(b.clock.Now()); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	candidates, err := b.uow.CommandReads().AvailableRoomsByType(ctx, domainData.RoomType)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(candidates) == 0 {
		return nil, ErrNoRoomsAvailable
	}

	var bookingID uuid.UUID
	admitted := false

	for _, candidate := range candidates {
		spec := booking.RoomSpec{
			ID:            candidate.ID,
			Number:        candidate.Number,
			Type:          domainData.RoomType,
			PricePerNight: candidate.PricePerNight,
			MaxOccupancy:  candidate.MaxOccupancy,
		}

		id, err := b.tryAdmit(ctx, spec, userID, domainData, req.GuestCount)
		if err != nil {
			if errors.Is(err, errCandidateBusy) {
				continue
			}
			return nil, err
		}

		bookingID = id
		admitted = true
		break
	}

	if !admitted {
		return nil, ErrNoRoomsAvailable
	}

	// Read-after-write: return the canonical read model
	view, err := b.bookingQueries.GetByIDSystem(ctx, bookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (b *bookingCommandsImpl) tryAdmit(
	ctx context.Context,
	spec booking.RoomSpec,
	userID uuid.UUID,
	domainData *reqdto.BookingDomainData,
	guestCount int32,
) (uuid.UUID, error) {
	var bookingID uuid.UUID

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		overlaps, err := tx.Bookings().HasOverlap(ctx, tx.DB(), spec.ID, domainData.Stay)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if overlaps {
			return errCandidateBusy
		}

		entity, err := booking.NewBooking(
			&booking.Services{Clock: b.clock},
			spec,
			userID,
			domainData.Stay,
			guestCount,
			domainData.SpecialRequests,
		)
		if err != nil {
			if errors.Is(err, booking.ErrGuestCountOutOfRange) {
				return &GuestCountOutOfRangeError{MaxOccupancy: spec.MaxOccupancy}
			}
			return errs.Mark(err, ErrDomainValidation)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), entity)
		if err != nil {
			// Lost the insert race on this room
			if infra.IsKind(err, infra.KindConflict) {
				return errCandidateBusy
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return bookingID, nil
}
