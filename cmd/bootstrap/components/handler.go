package components

import (
	"seller-catalog/internal/handler"
	"seller-catalog/internal/handler/api"
	"seller-catalog/internal/handler/middleware"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewProductHandler,
		api.NewCouponHandler,
		api.NewShopHandler,
		api.NewExclusionHandler,
		api.NewImportHandler,
		func(feed *changefeed.Feed) *api.ChangeHandler {
			return api.NewChangeHandler(feed, api.DefaultHeartbeat)
		},
		NewHandlers,
		func(svc *jwt.Service) middleware.TokenValidator { return svc },
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Products   *api.ProductHandler
	Coupons    *api.CouponHandler
	Shops      *api.ShopHandler
	Exclusions *api.ExclusionHandler
	Imports    *api.ImportHandler
	Changes    *api.ChangeHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Products:   p.Products,
		Coupons:    p.Coupons,
		Shops:      p.Shops,
		Exclusions: p.Exclusions,
		Imports:    p.Imports,
		Changes:    p.Changes,
	}
}
