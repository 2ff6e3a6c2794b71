package commands

import (
	"context"
	"log/slog"

	"seller-catalog/internal/infra"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/errs"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/commands/ports_mock.go -package=commandsmock

// ChangePublisher announces committed mutations so listings can reload.
type ChangePublisher interface {
	Publish(kind changefeed.Kind, shop string)
}

type CouponCacheInvalidator interface {
	InvalidateShop(ctx context.Context, shop string) error
}

// translateRepoErr maps infrastructure error kinds to the usecase taxonomy.
func translateRepoErr(err, notFound, conflict error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return notFound
	case infra.IsKind(err, infra.KindDuplicateKey) && conflict != nil:
		return conflict
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrStorage)
	default:
		return err
	}
}

func invalidateCoupons(ctx context.Context, cache CouponCacheInvalidator, shops []string) {
	for _, shop := range shops {
		if err := cache.InvalidateShop(ctx, shop); err != nil {
			slog.Warn("active coupon cache invalidation failed", "shop", shop, "error", err)
		}
	}
}

func distinct(values ...string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
