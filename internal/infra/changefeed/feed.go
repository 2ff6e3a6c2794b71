package changefeed

import (
	"log/slog"
	"sync"
	"time"

	"seller-catalog/internal/pkg/clock"
)

type Kind string

const (
	KindProducts   Kind = "products"
	KindCoupons    Kind = "coupons"
	KindExclusions Kind = "exclusions"
	KindImport     Kind = "import"
)

// Change announces that catalog data visible to listings has moved.
type Change struct {
	Seq  uint64    `json:"seq"`
	Kind Kind      `json:"kind"`
	Shop string    `json:"shop,omitempty"`
	At   time.Time `json:"at"`
}

const defaultBuffer = 16

// Feed fans mutations out to subscribers. Slow subscribers lose events
// instead of blocking publishers.
type Feed struct {
	mu     sync.Mutex
	subs   map[uint64]chan Change
	nextID uint64
	seq    uint64
	buffer int
	clock  clock.Clock
	closed bool
}

func NewFeed(clk clock.Clock) *Feed {
	return &Feed{
		subs:   make(map[uint64]chan Change),
		buffer: defaultBuffer,
		clock:  clk,
	}
}

func (f *Feed) Publish(kind Kind, shop string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.seq++
	change := Change{Seq: f.seq, Kind: kind, Shop: shop, At: f.clock.Now()}
	for id, ch := range f.subs {
		select {
		case ch <- change:
		default:
			slog.Warn("change feed subscriber is lagging, dropping event", "subscriber", id, "seq", change.Seq)
		}
	}
}

// Subscribe returns a channel of changes and a func that ends the subscription.
func (f *Feed) Subscribe() (<-chan Change, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	ch := make(chan Change, f.buffer)
	if f.closed {
		close(ch)
		return ch, func() {}
	}

	f.nextID++
	id := f.nextID
	f.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() { f.unsubscribe(id) })
	}
}

func (f *Feed) unsubscribe(id uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, ok := f.subs[id]; ok {
		delete(f.subs, id)
		close(ch)
	}
}

func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

// Close ends every subscription; later publishes are ignored.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	for id, ch := range f.subs {
		delete(f.subs, id)
		close(ch)
	}
}
