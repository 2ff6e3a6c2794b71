package db

import (
	"context"
	"io/fs"
	"log/slog"
	"slices"

	"seller-catalog/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplyMigrations runs every *.sql file of migrations in lexical order.
// Statements are written to be idempotent, so reapplying is harmless.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, migrations fs.FS) error {
	files, err := fs.Glob(migrations, "*.sql")
	if err != nil {
		return errs.Wrap(err, "failed to list migrations")
	}
	slices.Sort(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations, file)
		if err != nil {
			return errs.Wrapf(err, "failed to read migration %s", file)
		}
		if _, err := pool.Exec(ctx, string(content)); err != nil {
			return errs.Wrapf(err, "failed to apply migration %s", file)
		}
		slog.Info("migration applied", "file", file)
	}
	return nil
}
