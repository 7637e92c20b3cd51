// Package notice holds the single short-lived status message shown after a
// state-changing action. A newer notice always pre-empts the older one.
package notice

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// DefaultDuration is how long a notice stays visible.
const DefaultDuration = 3000 * time.Millisecond

type Notice struct {
	ID        ulid.ULID
	Text      string
	CreatedAt time.Time
}

// Timer is a pending expiry that can be stopped.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks. It exists so tests can drive expiry by hand.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Bus keeps at most one active notice. The expiry timer is stored next to the
// notice it was scheduled for, so replacing or clearing the notice stops it.
type Bus struct {
	mu       sync.Mutex
	active   *Notice
	timer    Timer
	duration time.Duration
	clock    Clock
	onExpire func(Notice)
	logger   *zap.Logger
}

type Option func(*Bus)

func WithDuration(d time.Duration) Option {
	return func(b *Bus) {
		if d > 0 {
			b.duration = d
		}
	}
}

func WithClock(c Clock) Option {
	return func(b *Bus) { b.clock = c }
}

// WithOnExpire registers a hook called (on the timer goroutine) after a notice
// expires on its own. It is not called for notices that were replaced or cleared.
func WithOnExpire(f func(Notice)) Option {
	return func(b *Bus) { b.onExpire = f }
}

func WithLogger(l *zap.Logger) Option {
	return func(b *Bus) { b.logger = l }
}

func NewBus(opts ...Option) *Bus {
	b := &Bus{
		duration: DefaultDuration,
		clock:    realClock{},
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Show makes text the active notice and restarts the countdown.
func (b *Bus) Show(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopLocked()

	now := b.clock.Now()
	n := Notice{
		ID:        ulid.MustNew(ulid.Timestamp(now), rand.Reader),
		Text:      text,
		CreatedAt: now,
	}
	b.active = &n
	id := n.ID
	b.timer = b.clock.AfterFunc(b.duration, func() { b.expire(id) })

	b.logger.Debug("notice shown", zap.String("id", id.String()), zap.String("text", text))
}

// Clear drops the active notice and its pending timer.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopLocked()
	b.active = nil
}

// Active returns the visible notice, if any.
func (b *Bus) Active() (Notice, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.active == nil {
		return Notice{}, false
	}
	return *b.active, true
}

func (b *Bus) Duration() time.Duration {
	return b.duration
}

func (b *Bus) stopLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// expire clears the notice only if it is still the one the timer was bound to.
// A timer that already fired before Stop could take effect lands here with a
// stale id and does nothing.
func (b *Bus) expire(id ulid.ULID) {
	b.mu.Lock()
	if b.active == nil || b.active.ID != id {
		b.mu.Unlock()
		b.logger.Debug("stale notice timer ignored", zap.String("id", id.String()))
		return
	}
	n := *b.active
	b.active = nil
	b.timer = nil
	hook := b.onExpire
	b.mu.Unlock()

	b.logger.Debug("notice expired", zap.String("id", id.String()))
	if hook != nil {
		hook(n)
	}
}
