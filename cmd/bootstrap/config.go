package bootstrap

import (
	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and rejects catalog limits that would make
// paging or batch writes unusable.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	c := cfg.Catalog
	switch {
	case c.PageSize <= 0:
		return config.Config{}, errs.Newf("CATALOG_PAGE_SIZE must be positive, got %d", c.PageSize)
	case c.MaxPageSize > 0 && c.PageSize > c.MaxPageSize:
		return config.Config{}, errs.Newf("CATALOG_PAGE_SIZE %d exceeds CATALOG_MAX_PAGE_SIZE %d", c.PageSize, c.MaxPageSize)
	case c.MaxBatchSize <= 0:
		return config.Config{}, errs.Newf("CATALOG_MAX_BATCH_SIZE must be positive, got %d", c.MaxBatchSize)
	}
	return cfg, nil
}
