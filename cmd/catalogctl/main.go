// Command catalogctl browses the catalog of a running server page by page
// and can mint bearer tokens for the write API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"seller-catalog/internal/loader"
	"seller-catalog/internal/pkg/config"
	"seller-catalog/internal/pkg/errs"
	"seller-catalog/internal/pkg/jwt"
	"seller-catalog/internal/usecase/queries"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const usage = `usage:
  catalogctl browse [-server URL] [-q query] [-page N] [-follow]
  catalogctl token [-subject name] [-shops a,b]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch os.Args[1] {
	case "browse":
		err = runBrowse(ctx, os.Args[2:], os.Stdout)
	case "token":
		err = runToken(os.Args[2:], os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil && !errs.Is(err, context.Canceled) {
		slog.Error("catalogctl failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func runBrowse(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("browse", flag.ExitOnError)
	server := fs.String("server", envOr("CATALOG_SERVER", "http://localhost:8080"), "server base URL")
	query := fs.String("q", "", "search text; empty lists everything")
	pages := fs.Int("page", 1, "number of pages to load")
	pageSize := fs.Int("size", loader.DefaultPageSize, "rows per page")
	follow := fs.Bool("follow", false, "reload whenever the catalog changes")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	fetcher := loader.NewHTTPFetcher(*server, nil, os.Getenv("CATALOG_TOKEN"))
	table := &tableConsumer{
		w:        tabwriter.NewWriter(out, 0, 4, 2, ' ', 0),
		wantRows: max(*pages, 1) * *pageSize,
	}
	l := loader.New[*queries.ProductView](fetcher, table,
		loader.WithPageSize(*pageSize),
		loader.WithLogger(logger),
	)
	table.next = l.LoadNextPage

	l.StartNewLoad(strings.TrimSpace(*query))

	if *follow {
		changes, err := fetcher.Changes(ctx)
		if err != nil {
			return err
		}
		return l.Follow(ctx, changes)
	}

	for {
		if err := l.Dispatch(ctx); err != nil {
			return err
		}
		if table.err != nil {
			return table.err
		}
		if l.State() == loader.Complete || table.loaded >= table.wantRows {
			return nil
		}
	}
}

// tableConsumer prints rows as they arrive and keeps paging until wantRows.
type tableConsumer struct {
	w        *tabwriter.Writer
	wantRows int
	loaded   int
	err      error
	next     func() bool
}

func (t *tableConsumer) OnReset(query string) {
	t.loaded, t.err = 0, nil
	label := query
	if label == "" {
		label = "(all)"
	}
	fmt.Fprintf(t.w, "\n== %s  %s ==\n", label, time.Now().Format(time.TimeOnly))
	fmt.Fprintln(t.w, "SPEC ID\tSKU\tNAME\tSHOP\tPRICE\tFINAL")
	_ = t.w.Flush()
}

func (t *tableConsumer) OnRows(rows []*queries.ProductView, offset int, total int64) {
	for _, p := range rows {
		fmt.Fprintf(t.w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.SpecID, p.SKU, p.Name, p.Shop, p.Price.StringFixed(2), p.FinalPrice.StringFixed(2))
	}
	t.loaded = offset + len(rows)
	fmt.Fprintf(t.w, "-- %d of %d --\n", t.loaded, total)
	_ = t.w.Flush()

	if t.loaded < t.wantRows && int64(t.loaded) < total && len(rows) > 0 {
		t.next()
	}
}

func (t *tableConsumer) OnError(err error) {
	t.err = err
	fmt.Fprintf(t.w, "!! %v\n", err)
	_ = t.w.Flush()
}

func runToken(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("subject", "catalogctl", "token subject")
	shops := fs.String("shops", "", "comma separated shops; empty grants every shop")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return errs.Wrap(err, "failed to load .env file")
		}
	}
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return errs.Wrap(err, "failed to process jwt config")
	}
	duration, err := time.ParseDuration(cfg.Duration)
	if err != nil {
		return errs.Wrapf(err, "invalid JWT_DURATION %q", cfg.Duration)
	}

	var shopList []string
	for _, s := range strings.Split(*shops, ",") {
		if s = strings.TrimSpace(s); s != "" {
			shopList = append(shopList, s)
		}
	}

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(*subject, shopList)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
