package bootstrap

import (
	"context"

	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/clock"

	"go.uber.org/fx"
)

var ChangeFeedModule = fx.Module("changefeed",
	fx.Provide(
		NewChangeFeed,
	),
)

// Closing the feed on stop ends every open change stream.
func NewChangeFeed(lc fx.Lifecycle, clk clock.Clock) *changefeed.Feed {
	feed := changefeed.NewFeed(clk)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			feed.Close()
			return nil
		},
	})
	return feed
}
