package dbq

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const productColumns = `spec_id, sku, product_id, name, spec_name, price, quantity, shop,
       category, warehouse, short_name, min_price, purchase_price, created_at, updated_at`

func scanProduct(row pgx.Row) (Product, error) {
	var i Product
	err := row.Scan(
		&i.SpecID,
		&i.Sku,
		&i.ProductID,
		&i.Name,
		&i.SpecName,
		&i.Price,
		&i.Quantity,
		&i.Shop,
		&i.Category,
		&i.Warehouse,
		&i.ShortName,
		&i.MinPrice,
		&i.PurchasePrice,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

func collectProducts(rows pgx.Rows, err error) ([]Product, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Product{}
	for rows.Next() {
		i, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getProductBySpecID = `-- name: GetProductBySpecID :one
SELECT ` + productColumns + `
FROM products
WHERE spec_id = $1`

func (q *Queries) GetProductBySpecID(ctx context.Context, db DBTX, specID string) (Product, error) {
	return scanProduct(db.QueryRow(ctx, getProductBySpecID, specID))
}

const listProducts = `-- name: ListProducts :many
SELECT ` + productColumns + `
FROM products
ORDER BY shop, name, spec_id
LIMIT $1 OFFSET $2`

type ListProductsParams struct {
	Limit  int32
	Offset int32
}

func (q *Queries) ListProducts(ctx context.Context, db DBTX, arg ListProductsParams) ([]Product, error) {
	return collectProducts(db.Query(ctx, listProducts, arg.Limit, arg.Offset))
}

const countProducts = `-- name: CountProducts :one
SELECT count(*) FROM products`

func (q *Queries) CountProducts(ctx context.Context, db DBTX) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countProducts).Scan(&count)
	return count, err
}

const searchPredicate = `
WHERE sku ILIKE $1 ESCAPE '\'
   OR name ILIKE $1 ESCAPE '\'
   OR spec_name ILIKE $1 ESCAPE '\'
   OR product_id ILIKE $1 ESCAPE '\'
   OR category ILIKE $1 ESCAPE '\'
   OR warehouse ILIKE $1 ESCAPE '\'
   OR short_name ILIKE $1 ESCAPE '\'`

const searchProducts = `-- name: SearchProducts :many
SELECT ` + productColumns + `
FROM products` + searchPredicate + `
ORDER BY shop, name, spec_id
LIMIT $2 OFFSET $3`

type SearchProductsParams struct {
	Pattern string
	Limit   int32
	Offset  int32
}

func (q *Queries) SearchProducts(ctx context.Context, db DBTX, arg SearchProductsParams) ([]Product, error) {
	return collectProducts(db.Query(ctx, searchProducts, arg.Pattern, arg.Limit, arg.Offset))
}

const countSearchProducts = `-- name: CountSearchProducts :one
SELECT count(*) FROM products` + searchPredicate

func (q *Queries) CountSearchProducts(ctx context.Context, db DBTX, pattern string) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countSearchProducts, pattern).Scan(&count)
	return count, err
}

type ProductParams struct {
	SpecID        string
	Sku           string
	ProductID     string
	Name          string
	SpecName      string
	Price         pgtype.Numeric
	Quantity      int32
	Shop          string
	Category      string
	Warehouse     string
	ShortName     string
	MinPrice      pgtype.Numeric
	PurchasePrice pgtype.Numeric
}

func (p ProductParams) args() []any {
	return []any{
		p.SpecID, p.Sku, p.ProductID, p.Name, p.SpecName, p.Price, p.Quantity, p.Shop,
		p.Category, p.Warehouse, p.ShortName, p.MinPrice, p.PurchasePrice,
	}
}

const insertProduct = `-- name: InsertProduct :exec
INSERT INTO products (
    spec_id, sku, product_id, name, spec_name, price, quantity, shop,
    category, warehouse, short_name, min_price, purchase_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

func (q *Queries) InsertProduct(ctx context.Context, db DBTX, arg ProductParams) error {
	_, err := db.Exec(ctx, insertProduct, arg.args()...)
	return err
}

const updateProduct = `-- name: UpdateProduct :execrows
UPDATE products
SET sku = $2, product_id = $3, name = $4, spec_name = $5, price = $6, quantity = $7, shop = $8,
    category = $9, warehouse = $10, short_name = $11, min_price = $12, purchase_price = $13,
    updated_at = now()
WHERE spec_id = $1`

func (q *Queries) UpdateProduct(ctx context.Context, db DBTX, arg ProductParams) (int64, error) {
	tag, err := db.Exec(ctx, updateProduct, arg.args()...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const upsertProduct = `-- name: UpsertProduct :one
INSERT INTO products (
    spec_id, sku, product_id, name, spec_name, price, quantity, shop,
    category, warehouse, short_name, min_price, purchase_price
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
ON CONFLICT (spec_id) DO UPDATE
SET sku = EXCLUDED.sku, product_id = EXCLUDED.product_id, name = EXCLUDED.name,
    spec_name = EXCLUDED.spec_name, price = EXCLUDED.price, quantity = EXCLUDED.quantity,
    shop = EXCLUDED.shop, category = EXCLUDED.category, warehouse = EXCLUDED.warehouse,
    short_name = EXCLUDED.short_name, min_price = EXCLUDED.min_price,
    purchase_price = EXCLUDED.purchase_price, updated_at = now()
RETURNING (xmax = 0) AS inserted`

// UpsertProducts queues one upsert per row in a single batch and reports,
// per row, whether it inserted a new key.
func (q *Queries) UpsertProducts(ctx context.Context, db DBTX, args []ProductParams) ([]bool, error) {
	batch := &pgx.Batch{}
	for _, arg := range args {
		batch.Queue(upsertProduct, arg.args()...)
	}

	results := db.SendBatch(ctx, batch)
	inserted := make([]bool, len(args))
	for i := range args {
		if err := results.QueryRow().Scan(&inserted[i]); err != nil {
			_ = results.Close()
			return nil, err
		}
	}
	return inserted, results.Close()
}

const deleteProduct = `-- name: DeleteProduct :execrows
DELETE FROM products WHERE spec_id = $1`

func (q *Queries) DeleteProduct(ctx context.Context, db DBTX, specID string) (int64, error) {
	tag, err := db.Exec(ctx, deleteProduct, specID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listEligibilityCandidates = `-- name: ListEligibilityCandidates :many
SELECT DISTINCT product_id, name, spec_id, sku
FROM products
WHERE shop = $1 AND product_id <> ''
ORDER BY product_id, spec_id`

type EligibilityCandidateRow struct {
	ProductID string
	Name      string
	SpecID    string
	Sku       string
}

func (q *Queries) ListEligibilityCandidates(ctx context.Context, db DBTX, shop string) ([]EligibilityCandidateRow, error) {
	rows, err := db.Query(ctx, listEligibilityCandidates, shop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []EligibilityCandidateRow{}
	for rows.Next() {
		var i EligibilityCandidateRow
		if err := rows.Scan(&i.ProductID, &i.Name, &i.SpecID, &i.Sku); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
