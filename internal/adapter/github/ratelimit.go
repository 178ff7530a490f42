package github

import (
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

// RateLimitTracker keeps the last observed api quota state. The value
// is advisory only, so concurrent updates simply race with
// last-write-wins semantics.
type RateLimitTracker struct {
	state atomic.Pointer[app.RateLimit]
}

// NewRateLimitTracker creates new RateLimitTracker instance.
func NewRateLimitTracker() *RateLimitTracker {
	return &RateLimitTracker{}
}

// Update replaces the tracked state with the quota headers of a
// response. Responses missing any of the three headers leave the
// previous state untouched.
func (t *RateLimitTracker) Update(h http.Header) {
	remaining, err := strconv.Atoi(h.Get("X-RateLimit-Remaining"))
	if err != nil {
		return
	}
	limit, err := strconv.Atoi(h.Get("X-RateLimit-Limit"))
	if err != nil {
		return
	}
	resetEpoch, err := strconv.ParseInt(h.Get("X-RateLimit-Reset"), 10, 64)
	if err != nil {
		return
	}

	t.state.Store(&app.RateLimit{
		Remaining: remaining,
		Limit:     limit,
		Reset:     time.Unix(resetEpoch, 0),
	})
}

// Current returns the last known quota state, false when no response
// with quota headers has been seen yet.
func (t *RateLimitTracker) Current() (app.RateLimit, bool) {
	state := t.state.Load()
	if state == nil {
		return app.RateLimit{}, false
	}

	return *state, true
}
