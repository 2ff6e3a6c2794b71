package shared

import (
	"context"

	"seller-catalog/internal/domain/coupon"
	"seller-catalog/internal/domain/product"
	"seller-catalog/internal/infra/dbq"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow_mock.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Products() ProductRepository
	Coupons() CouponRepository
	Exclusions() ExclusionRepository
	Reads() CommandReads
	DB() dbq.DBTX
}

// CommandReads gives commands the few lookups they need inside their transaction.
type CommandReads interface {
	ProductBySpecID(ctx context.Context, specID string) (*ProductSnapshot, error)
	CouponByID(ctx context.Context, id int64) (*CouponSnapshot, error)
}

type ProductRepository interface {
	Insert(ctx context.Context, p *product.Product) error
	Update(ctx context.Context, p *product.Product) error
	Delete(ctx context.Context, specID string) error
	UpsertBatch(ctx context.Context, products []*product.Product) (UpsertResult, error)
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (int64, error)
	Update(ctx context.Context, c *coupon.Coupon) error
	// Delete returns the shop the coupon belonged to.
	Delete(ctx context.Context, id int64) (string, error)
}

type ExclusionRepository interface {
	ReplaceInvalidSpecIDs(ctx context.Context, values []string) (int64, error)
	ReplaceEnabledSKUs(ctx context.Context, values []string) (int64, error)
}
