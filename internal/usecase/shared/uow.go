package shared

import (
	"context"

	"hotel-booking-api/internal/domain/booking"
	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/domain/user"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Users() UserRepository
	Rooms() RoomRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	AvailableRoomsByType(ctx context.Context, roomType room.Type) ([]*RoomSnapshot, error)
}

// Minimal snapshot for command read operations
type RoomSnapshot struct {
	ID            uuid.UUID
	Number        string
	Type          string
	PricePerNight int32
	MaxOccupancy  int32
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (uuid.UUID, error)
	HasOverlap(ctx context.Context, tx sqlc.DBTX, roomID uuid.UUID, stay booking.StayPeriod) (bool, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
}

type RoomRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, rm *room.Room) (uuid.UUID, error)
}
