package main

import (
	"context"
	"log/slog"
	"os"

	"hotel-booking-api/internal/domain/room"
	"hotel-booking-api/internal/infra/db"
	"hotel-booking-api/internal/infra/repository"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/pkg/config"

	"github.com/joho/godotenv"
)

type seedRoom struct {
	number       string
	roomType     room.Type
	price        int32
	description  string
	bedsCount    int32
	maxOccupancy int32
	sizeSqm      int32
	amenities    []string
	images       []string
}

var standardAmenities = []string{"Wi-Fi", "TV", "Air Conditioning", "Mini Fridge"}
var deluxeAmenities = []string{"Wi-Fi", "Smart TV", "Air Conditioning", "Mini Bar", "Work Desk", "Lounge Area"}
var suiteAmenities = []string{"Wi-Fi", "Smart TV", "Air Conditioning", "Mini Bar", "Work Desk", "Living Room", "Kitchenette", "Premium Toiletries"}

// 10 rooms: 4 standard, 4 deluxe, 2 suites
var seedRooms = []seedRoom{
	{"101", room.TypeStandard, 100, "Comfortable standard room with city view", 1, 2, 25, standardAmenities, []string{"standard-room-1.jpg"}},
	{"102", room.TypeStandard, 100, "Cozy standard room with garden view", 1, 2, 25, standardAmenities, []string{"standard-room-2.jpg"}},
	{"103", room.TypeStandard, 100, "Charming standard room with pool view", 2, 2, 25, standardAmenities, []string{"standard-room-3.jpg"}},
	{"104", room.TypeStandard, 100, "Pleasant standard room with garden view", 2, 2, 25, standardAmenities, []string{"standard-room-4.jpg"}},
	{"201", room.TypeDeluxe, 200, "Spacious deluxe room with panoramic city view", 2, 4, 35, deluxeAmenities, []string{"deluxe-room-1.jpg"}},
	{"202", room.TypeDeluxe, 200, "Elegant deluxe room with pool view", 2, 4, 35, deluxeAmenities, []string{"deluxe-room-2.jpg"}},
	{"203", room.TypeDeluxe, 200, "Modern deluxe room with city view", 2, 4, 35, deluxeAmenities, []string{"deluxe-room-3.jpg"}},
	{"204", room.TypeDeluxe, 200, "Luxurious deluxe room with garden view", 2, 4, 35, deluxeAmenities, []string{"deluxe-room-4.jpg"}},
	{"301", room.TypeSuite, 300, "Luxurious suite with separate living area and stunning views", 1, 3, 50, suiteAmenities, []string{"suite-room-1.jpg"}},
	{"302", room.TypeSuite, 300, "Premium suite with panoramic views and luxury amenities", 1, 3, 50, suiteAmenities, []string{"suite-room-2.jpg"}},
}

// Seeds the canonical room inventory. Rooms are upserted by room number, so
// re-running refreshes attributes without disturbing existing bookings.
func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer cleanup()

	repo := repository.NewRoomRepository(sqlc.New())
	ctx := context.Background()

	for _, sr := range seedRooms {
		entity, err := room.NewRoom(
			sr.number,
			sr.roomType,
			sr.price,
			sr.description,
			sr.bedsCount,
			sr.maxOccupancy,
			sr.sizeSqm,
			sr.amenities,
			sr.images,
		)
		if err != nil {
			slog.Error("invalid seed room", "room_number", sr.number, "error", err)
			os.Exit(1)
		}

		id, err := repo.Upsert(ctx, pool, entity)
		if err != nil {
			slog.Error("failed to upsert room", "room_number", sr.number, "error", err)
			os.Exit(1)
		}

		slog.Info("seeded room", "room_number", sr.number, "room_type", sr.roomType.String(), "id", id)
	}

	slog.Info("room inventory seeded", "count", len(seedRooms))
}
