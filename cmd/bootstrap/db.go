package bootstrap

import (
	"context"
	"log/slog"

	"seller-catalog/internal/infra/db"
	"seller-catalog/internal/pkg/config"
	"seller-catalog/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if !cfg.DB.AutoMigrate {
				return nil
			}
			logger.Info("マイグレーションを適用します")
			return db.ApplyMigrations(ctx, pool, migrations.FS)
		},
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}
