package bootstrap

import (
	"seller-catalog/cmd/bootstrap/components"
	"seller-catalog/internal/pkg/clock"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	fx.Provide(clock.NewRealClock),
	DBModule,
	JWTModule,
	CacheModule,
	ChangeFeedModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
