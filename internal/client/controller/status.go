package controller

import (
	"sync"
	"time"
)

// DefaultStatusTTL is how long a transient status stays visible.
const DefaultStatusTTL = 3 * time.Second

// StatusBanner holds a transient success/info message that clears itself
// after a fixed delay. Setting a new message supersedes the pending timer;
// Stop cancels it on teardown so a late fire never mutates discarded state.
//
// The expiry fires on a timer goroutine, so access is guarded by a mutex and
// a generation counter: a timer armed for generation N only clears the
// message if the banner is still at generation N.
type StatusBanner struct {
	mu    sync.Mutex
	msg   string
	ttl   time.Duration
	timer *time.Timer
	gen   uint64
}

func NewStatusBanner(ttl time.Duration) *StatusBanner {
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	return &StatusBanner{ttl: ttl}
}

// Set replaces the message and restarts the expiry timer.
func (b *StatusBanner) Set(msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	gen := b.gen
	b.msg = msg

	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.ttl, func() {
		b.expire(gen)
	})
}

// Clear removes the message immediately and cancels the pending timer.
func (b *StatusBanner) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	b.msg = ""
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Stop cancels the pending timer without touching the message. Call it when
// the owning controller is torn down.
func (b *StatusBanner) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}

// Message returns the current message, or "" after expiry.
func (b *StatusBanner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}

func (b *StatusBanner) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	// A newer Set/Clear/Stop has superseded this timer.
	if b.gen != gen {
		return
	}
	b.msg = ""
	b.timer = nil
}
