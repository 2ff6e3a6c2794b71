package components

import (
	"seller-catalog/internal/infra/dbq"
	"seller-catalog/internal/infra/readstore"
	"seller-catalog/internal/infra/uow"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Product
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ProductReadQueries)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductReadStore)),
		),
		// Coupon
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CouponReadQueries)),
		),
		fx.Annotate(
			readstore.NewCouponReadStore,
			fx.As(new(queries.CouponReadStore)),
		),
		// Exclusion
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ExclusionReadQueries)),
		),
		fx.Annotate(
			readstore.NewExclusionReadStore,
			fx.As(new(queries.ExclusionReadStore)),
		),
	),
)

// Repositories are built per transaction by the unit of work.
var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *dbq.Queries {
	return dbq.New()
}

func NewDBTX(pool *pgxpool.Pool) dbq.DBTX {
	return pool
}
