// Package dbq holds the SQL of the service and the row types it scans into.
// Every method takes the DBTX to run on, so the same Queries value serves
// the pool and open transactions alike.
package dbq

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

type Queries struct{}

func New() *Queries {
	return &Queries{}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a user query into an ILIKE pattern matching it as a
// literal substring.
func ContainsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}
