package loader

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"seller-catalog/internal/infra/changefeed"
)

type State int

const (
	Idle State = iota
	LoadingInitial
	LoadingMore
	Partial
	Complete
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LoadingInitial:
		return "loading_initial"
	case LoadingMore:
		return "loading_more"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

const (
	DefaultPageSize     = 50
	DefaultFetchTimeout = 30 * time.Second
	unknownTotal        = int64(-1)
)

type Page[T any] struct {
	Rows  []T
	Total int64
}

type Fetcher[T any] interface {
	Fetch(ctx context.Context, query string, limit, offset int) (Page[T], error)
}

// Consumer callbacks run on the goroutine that calls Dispatch, DrainReady or
// Follow, never on a fetch goroutine.
type Consumer[T any] interface {
	OnReset(query string)
	OnRows(rows []T, offset int, total int64)
	OnError(err error)
}

type completion[T any] struct {
	generation uint64
	offset     int
	page       Page[T]
	err        error
}

// Loader pages through a query one fetch at a time. StartNewLoad,
// LoadNextPage, ForceReset and the dispatch methods belong to a single
// foreground goroutine; fetches run in the background and report back through
// a queue.
type Loader[T any] struct {
	fetcher      Fetcher[T]
	consumer     Consumer[T]
	pageSize     int
	fetchTimeout time.Duration
	logger       *slog.Logger

	mu         sync.Mutex
	state      State
	query      string
	offset     int
	total      int64
	generation uint64
	inFlight   bool
	queue      []completion[T]
	notify     chan struct{}
}

type Option func(*options)

type options struct {
	pageSize     int
	fetchTimeout time.Duration
	logger       *slog.Logger
}

func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// WithFetchTimeout bounds each background fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(o *options) { o.fetchTimeout = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func New[T any](fetcher Fetcher[T], consumer Consumer[T], opts ...Option) *Loader[T] {
	o := options{
		pageSize:     DefaultPageSize,
		fetchTimeout: DefaultFetchTimeout,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Loader[T]{
		fetcher:      fetcher,
		consumer:     consumer,
		pageSize:     o.pageSize,
		fetchTimeout: o.fetchTimeout,
		logger:       o.logger,
		total:        unknownTotal,
		notify:       make(chan struct{}, 1),
	}
}

func (l *Loader[T]) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loader[T]) Query() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.query
}

func (l *Loader[T]) Offset() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.offset
}

// Total reports -1 until the first page arrives.
func (l *Loader[T]) Total() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

func (l *Loader[T]) Generation() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.generation
}

// StartNewLoad abandons any in-flight fetch and loads the first page of query.
func (l *Loader[T]) StartNewLoad(query string) {
	l.mu.Lock()
	l.generation++
	l.query = query
	l.offset = 0
	l.total = unknownTotal
	l.state = LoadingInitial
	l.inFlight = true
	gen := l.generation
	l.mu.Unlock()

	l.consumer.OnReset(query)
	l.fetch(gen, query, 0)
}

// ForceReset restarts the current query from the first page.
func (l *Loader[T]) ForceReset() {
	l.StartNewLoad(l.Query())
}

// LoadNextPage reports whether a fetch was issued.
func (l *Loader[T]) LoadNextPage() bool {
	l.mu.Lock()
	if l.inFlight || l.state == Complete {
		l.mu.Unlock()
		return false
	}
	if l.offset == 0 && l.total == unknownTotal {
		l.state = LoadingInitial
	} else {
		l.state = LoadingMore
	}
	l.inFlight = true
	gen, query, offset := l.generation, l.query, l.offset
	l.mu.Unlock()

	l.fetch(gen, query, offset)
	return true
}

func (l *Loader[T]) fetch(gen uint64, query string, offset int) {
	go func() {
		ctx := context.Background()
		if l.fetchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, l.fetchTimeout)
			defer cancel()
		}
		page, err := l.fetcher.Fetch(ctx, query, l.pageSize, offset)
		l.enqueue(completion[T]{generation: gen, offset: offset, page: page, err: err})
	}()
}

func (l *Loader[T]) enqueue(c completion[T]) {
	l.mu.Lock()
	l.queue = append(l.queue, c)
	l.mu.Unlock()

	select {
	case l.notify <- struct{}{}:
	default:
	}
}

// DrainReady applies every queued completion without blocking and returns
// how many were taken off the queue, stale ones included.
func (l *Loader[T]) DrainReady() int {
	l.mu.Lock()
	ready := l.queue
	l.queue = nil
	l.mu.Unlock()

	for _, c := range ready {
		l.apply(c)
	}
	return len(ready)
}

// Dispatch blocks until at least one completion has been applied or ctx ends.
func (l *Loader[T]) Dispatch(ctx context.Context) error {
	for {
		if l.DrainReady() > 0 {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.notify:
		}
	}
}

// Follow runs the foreground loop: completions are applied as they arrive
// and every change event forces a reset. It returns when ctx ends or events
// is closed.
func (l *Loader[T]) Follow(ctx context.Context, events <-chan changefeed.Change) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.notify:
			l.DrainReady()
		case change, ok := <-events:
			if !ok {
				return nil
			}
			l.logger.Debug("Catalog changed, reloading",
				slog.Uint64("seq", change.Seq),
				slog.String("kind", string(change.Kind)),
				slog.String("shop", change.Shop))
			l.ForceReset()
		}
	}
}

func (l *Loader[T]) apply(c completion[T]) {
	l.mu.Lock()
	if c.generation != l.generation {
		current := l.generation
		l.mu.Unlock()
		l.logger.Debug("Discarding stale page",
			slog.Uint64("generation", c.generation),
			slog.Uint64("current", current),
			slog.Int("offset", c.offset))
		return
	}
	l.inFlight = false

	if c.err != nil {
		if l.state == LoadingInitial {
			l.state = Idle
		} else {
			l.state = Partial
		}
		l.mu.Unlock()
		l.logger.Warn("Page fetch failed",
			slog.String("query", l.Query()),
			slog.Int("offset", c.offset),
			slog.Any("error", c.err))
		l.consumer.OnError(c.err)
		return
	}

	rows := c.page.Rows
	l.offset += len(rows)
	l.total = c.page.Total
	if int64(l.offset) >= l.total || len(rows) == 0 {
		l.state = Complete
	} else {
		l.state = Partial
	}
	total := l.total
	l.mu.Unlock()

	l.consumer.OnRows(rows, c.offset, total)
}
