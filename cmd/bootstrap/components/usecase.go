package components

import (
	"time"

	"seller-catalog/internal/domain/pricing"
	"seller-catalog/internal/infra/cache"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/usecase/commands"
	"seller-catalog/internal/usecase/queries"
	"seller-catalog/internal/usecase/shared"

	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	func(cfg config.Config) *time.Location {
		return cfg.Pricing.Location()
	},
	func(cfg config.Config) queries.Paging {
		return queries.Paging{
			DefaultLimit: cfg.Catalog.PageSize,
			MaxLimit:     cfg.Catalog.MaxPageSize,
		}
	},
	NewMarginPolicy,
	func(c cache.CouponCache) queries.ActiveCouponCache { return c },
	func(c cache.CouponCache) commands.CouponCacheInvalidator { return c },
	func(feed *changefeed.Feed) commands.ChangePublisher { return feed },
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewPricingEngine,
		queries.NewProductQueries,
		queries.NewEligibilityQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(uow shared.UnitOfWork, events commands.ChangePublisher, cfg config.Config) commands.ProductCommands {
			return commands.NewProductCommands(uow, events, cfg.Catalog.MaxBatchSize)
		},
		commands.NewCouponCommands,
		commands.NewExclusionCommands,
		func(uow shared.UnitOfWork, events commands.ChangePublisher, cfg config.Config) commands.ImportCommands {
			return commands.NewImportCommands(uow, events, cfg.Catalog.MaxBatchSize)
		},
	),
)

// NewMarginPolicy reads the cost assumptions from PRICING_*; a malformed value
// falls back to the built-in default for that field.
func NewMarginPolicy(cfg config.Config) pricing.MarginPolicy {
	p := pricing.DefaultMarginPolicy()
	set := func(dst *decimal.Decimal, raw string) {
		if v, err := decimal.NewFromString(raw); err == nil {
			*dst = v
		}
	}
	set(&p.ShippingThreshold, cfg.Pricing.ShippingThreshold)
	set(&p.ShippingFeeHigh, cfg.Pricing.ShippingFeeHigh)
	set(&p.ShippingFeeLow, cfg.Pricing.ShippingFeeLow)
	set(&p.AfterSalesRate, cfg.Pricing.AfterSalesRate)
	set(&p.ManagementRate, cfg.Pricing.ManagementRate)
	set(&p.PlatformRate, cfg.Pricing.PlatformRate)
	return p
}
