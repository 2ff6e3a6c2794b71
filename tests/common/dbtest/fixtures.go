//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by both the pool and a transaction.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestProduct(t *testing.T, db DBLike, specID, sku, shop, name, price string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		`INSERT INTO products (spec_id, sku, product_id, name, price, quantity, shop)
		 VALUES ($1, $2, $3, $4, $5::numeric, 1, $6)`,
		specID, sku, "p-"+specID, name, price, shop)
	require.NoError(t, err)
}

// CreateTestCoupon inserts a coupon valid between start and end (YYYY-MM-DD)
// and returns its id. productIDs is the JSON scope, empty for store-wide.
func CreateTestCoupon(t *testing.T, db DBLike, shop, couponType, amount, minPrice, start, end, productIDs string) int64 {
	t.Helper()

	var scope *string
	if productIDs != "" {
		scope = &productIDs
	}
	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO coupons (shop, coupon_type, amount, min_price, start_date, end_date, product_ids)
		 VALUES ($1, $2, $3::numeric, $4::numeric, $5::date, $6::date, $7)
		 RETURNING id`,
		shop, couponType, amount, minPrice, start, end, scope).Scan(&id)
	require.NoError(t, err)
	return id
}

func CountRows(t *testing.T, db DBLike, table string) int64 {
	t.Helper()

	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
