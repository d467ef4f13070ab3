package debounce

import (
	"sort"
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

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// fakeClock fires callbacks synchronously from Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AdvanceTo(target time.Duration) {
	for {
		c.mu.Lock()
		due := make([]*fakeTimer, 0)
		for _, t := range c.timers {
			if !t.stopped && !t.fired && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.Slice(due, func(i, j int) bool { return due[i].at < due[j].at })
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()
		next.fn()
	}
}

type invocation struct {
	value string
	at    time.Duration
}

func newRecorder(clock *fakeClock) (*[]invocation, func(string)) {
	var calls []invocation
	return &calls, func(v string) {
		calls = append(calls, invocation{value: v, at: clock.Now()})
	}
}

func TestDebouncerCollapsesBurstToLastValue(t *testing.T) {
	clock := &fakeClock{}
	calls, record := newRecorder(clock)
	d := New(300*time.Millisecond, record, WithClock(clock))

	d.Call("a")
	clock.AdvanceTo(100 * time.Millisecond)
	d.Call("ab")
	clock.AdvanceTo(150 * time.Millisecond)
	d.Call("abc")

	clock.AdvanceTo(449 * time.Millisecond)
	assert.Empty(t, *calls)
	assert.True(t, d.Pending())

	clock.AdvanceTo(2 * time.Second)
	require.Len(t, *calls, 1)
	assert.Equal(t, "abc", (*calls)[0].value)
	assert.GreaterOrEqual(t, (*calls)[0].at, 450*time.Millisecond)
	assert.False(t, d.Pending())
}

func TestDebouncerSeparateBurstsFireSeparately(t *testing.T) {
	clock := &fakeClock{}
	calls, record := newRecorder(clock)
	d := New(300*time.Millisecond, record, WithClock(clock))

	d.Call("first")
	clock.AdvanceTo(400 * time.Millisecond)
	d.Call("second")
	clock.AdvanceTo(time.Second)

	require.Len(t, *calls, 2)
	assert.Equal(t, "first", (*calls)[0].value)
	assert.Equal(t, 300*time.Millisecond, (*calls)[0].at)
	assert.Equal(t, "second", (*calls)[1].value)
	assert.Equal(t, 700*time.Millisecond, (*calls)[1].at)
}

func TestDebouncerCancel(t *testing.T) {
	clock := &fakeClock{}
	calls, record := newRecorder(clock)
	d := New(300*time.Millisecond, record, WithClock(clock))

	assert.False(t, d.Cancel())
	d.Call("dropped")
	assert.True(t, d.Cancel())
	clock.AdvanceTo(time.Second)

	assert.Empty(t, *calls)
	assert.False(t, d.Pending())
}

func TestDebouncerFlush(t *testing.T) {
	clock := &fakeClock{}
	calls, record := newRecorder(clock)
	d := New(300*time.Millisecond, record, WithClock(clock))

	assert.False(t, d.Flush())
	d.Call("now")
	clock.AdvanceTo(50 * time.Millisecond)
	assert.True(t, d.Flush())
	clock.AdvanceTo(time.Second)

	require.Len(t, *calls, 1)
	assert.Equal(t, "now", (*calls)[0].value)
	assert.Equal(t, 50*time.Millisecond, (*calls)[0].at)
}

func TestDebouncerIgnoresSupersededTimer(t *testing.T) {
	clock := &fakeClock{}
	calls, record := newRecorder(clock)
	d := New(300*time.Millisecond, record, WithClock(clock))

	d.Call("old")
	stale := clock.timers[0]
	d.Call("new")

	// simulate a timer that already left Stop's reach
	stale.fn()
	assert.Empty(t, *calls)

	clock.AdvanceTo(time.Second)
	require.Len(t, *calls, 1)
	assert.Equal(t, "new", (*calls)[0].value)
}

func TestDebouncerDefaultWindow(t *testing.T) {
	d := New(0, func(string) {})
	assert.Equal(t, DefaultWindow, d.Window())
}

func TestDebouncerRealClock(t *testing.T) {
	var mu sync.Mutex
	var got []string
	done := make(chan struct{})
	d := New(20*time.Millisecond, func(v string) {
		mu.Lock()
		got = append(got, v)
		mu.Unlock()
		close(done)
	})

	d.Call("x")
	d.Call("xy")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("debounced callback never ran")
	}
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"xy"}, got)
}
