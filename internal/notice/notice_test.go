package notice

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// manualClock fires timers only when advanced.
type manualClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func newManualClock() *manualClock {
	return &manualClock{now: time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*manualTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

// fireAll runs every timer ever scheduled, stopped or not, to model a timer
// that fired right before Stop was called.
func (c *manualClock) fireAll() {
	c.mu.Lock()
	all := append([]*manualTimer(nil), c.timers...)
	c.mu.Unlock()
	for _, t := range all {
		t.f()
	}
}

func TestShowThenExpire(t *testing.T) {
	clock := newManualClock()
	var expired []string
	bus := NewBus(WithClock(clock), WithOnExpire(func(n Notice) { expired = append(expired, n.Text) }))

	bus.Show("History item deleted")
	n, ok := bus.Active()
	require.True(t, ok)
	assert.Equal(t, "History item deleted", n.Text)
	assert.Equal(t, clock.Now(), n.CreatedAt)

	clock.Advance(2999 * time.Millisecond)
	_, ok = bus.Active()
	assert.True(t, ok, "notice should still be visible before the timeout")

	clock.Advance(time.Millisecond)
	_, ok = bus.Active()
	assert.False(t, ok)
	assert.Equal(t, []string{"History item deleted"}, expired)
}

func TestNewerNoticePreemptsOlder(t *testing.T) {
	clock := newManualClock()
	bus := NewBus(WithClock(clock))

	bus.Show("first")
	clock.Advance(2 * time.Second)
	bus.Show("second")

	n, ok := bus.Active()
	require.True(t, ok)
	assert.Equal(t, "second", n.Text)

	// The timer for "first" would have fired here.
	clock.Advance(1500 * time.Millisecond)
	n, ok = bus.Active()
	require.True(t, ok, "old timer must not clear the newer notice")
	assert.Equal(t, "second", n.Text)

	clock.Advance(1500 * time.Millisecond)
	_, ok = bus.Active()
	assert.False(t, ok)
}

func TestStaleTimerIsIgnored(t *testing.T) {
	clock := newManualClock()
	expiredCount := 0
	bus := NewBus(WithClock(clock), WithOnExpire(func(Notice) { expiredCount++ }))

	bus.Show("first")
	bus.Show("second")

	// Both callbacks run, including the one for "first" that lost the race with Stop.
	clock.fireAll()

	_, ok := bus.Active()
	assert.False(t, ok)
	assert.Equal(t, 1, expiredCount)
}

func TestClearCancelsPendingTimer(t *testing.T) {
	clock := newManualClock()
	expiredCount := 0
	bus := NewBus(WithClock(clock), WithOnExpire(func(Notice) { expiredCount++ }))

	bus.Show("Logged out (Demo)")
	bus.Clear()
	_, ok := bus.Active()
	assert.False(t, ok)

	bus.Show("Profile edit opened (Demo)")
	clock.fireAll()
	assert.Equal(t, 1, expiredCount, "the cleared notice must never report expiry")

	bus.Clear()
	bus.Clear()
}

func TestNoticeIDsAreUnique(t *testing.T) {
	clock := newManualClock()
	bus := NewBus(WithClock(clock))

	bus.Show("a")
	first, _ := bus.Active()
	bus.Show("a")
	second, _ := bus.Active()
	assert.NotEqual(t, first.ID, second.ID)
}

func TestWithDurationIgnoresNonPositive(t *testing.T) {
	assert.Equal(t, DefaultDuration, NewBus(WithDuration(0)).Duration())
	assert.Equal(t, time.Second, NewBus(WithDuration(time.Second)).Duration())
}

func TestRealClockExpiry(t *testing.T) {
	done := make(chan Notice, 1)
	bus := NewBus(WithDuration(20*time.Millisecond), WithOnExpire(func(n Notice) { done <- n }))

	bus.Show("Data export started (Demo)")

	select {
	case n := <-done:
		assert.Equal(t, "Data export started (Demo)", n.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("notice did not expire")
	}
	_, ok := bus.Active()
	assert.False(t, ok)
}
