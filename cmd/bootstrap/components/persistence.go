package components

import (
	"hotel-booking-api/internal/infra/cache"
	"hotel-booking-api/internal/infra/readstore"
	sqlc "hotel-booking-api/internal/infra/sqlc/generated"
	"hotel-booking-api/internal/infra/uow"
	"hotel-booking-api/internal/pkg/config"
	"hotel-booking-api/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room, wrapped in the redis cache when one is configured
		NewRoomReadStore,
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewRoomReadStore(pool *pgxpool.Pool, client *redis.Client, cfg config.Config) queries.RoomReadStore {
	store := readstore.NewRoomReadStore(sqlc.New(), pool)
	if client == nil {
		return store
	}
	return cache.NewCachedRoomReadStore(store, client, cfg.Redis.RoomTTL)
}
