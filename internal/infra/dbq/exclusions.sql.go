package dbq

import (
	"context"

	"seller-catalog/internal/pkg/errs"
)

// ExclusionTable names one of the two flat set tables of the registry.
type ExclusionTable string

const (
	InvalidSpecIDs ExclusionTable = "invalid_spec_ids"
	EnabledSKUs    ExclusionTable = "enabled_skus"
)

func (t ExclusionTable) valid() bool {
	return t == InvalidSpecIDs || t == EnabledSKUs
}

func errUnknownTable(t ExclusionTable) error {
	return errs.Newf("unknown exclusion table %q", string(t))
}

// ClearExclusions empties the table. Table names come from the constants
// above only, never from input.
func (q *Queries) ClearExclusions(ctx context.Context, db DBTX, table ExclusionTable) error {
	if !table.valid() {
		return errUnknownTable(table)
	}
	_, err := db.Exec(ctx, `-- name: ClearExclusions :exec
DELETE FROM `+string(table))
	return err
}

func (q *Queries) InsertExclusions(ctx context.Context, db DBTX, table ExclusionTable, values []string) (int64, error) {
	if !table.valid() {
		return 0, errUnknownTable(table)
	}
	tag, err := db.Exec(ctx, `-- name: InsertExclusions :execrows
INSERT INTO `+string(table)+` (value)
SELECT DISTINCT v FROM unnest($1::text[]) AS v
WHERE v <> ''
ON CONFLICT (value) DO NOTHING`, values)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (q *Queries) ListExclusions(ctx context.Context, db DBTX, table ExclusionTable) ([]string, error) {
	if !table.valid() {
		return nil, errUnknownTable(table)
	}
	rows, err := db.Query(ctx, `-- name: ListExclusions :many
SELECT value FROM `+string(table)+` ORDER BY value`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, rows.Err()
}
