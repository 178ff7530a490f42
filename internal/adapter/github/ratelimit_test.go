package github

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitwrapped/gitwrapped/internal/app"
)

func TestRateLimitTracker(t *testing.T) {
	t.Parallel()

	tracker := NewRateLimitTracker()

	_, ok := tracker.Current()
	assert.False(t, ok, "fresh tracker has no state")

	tracker.Update(http.Header{
		"X-Ratelimit-Remaining": []string{"42"},
		"X-Ratelimit-Limit":     []string{"60"},
		"X-Ratelimit-Reset":     []string{"1717243200"},
	})

	state, ok := tracker.Current()
	require.True(t, ok)
	assert.Equal(t, app.RateLimit{
		Remaining: 42,
		Limit:     60,
		Reset:     time.Unix(1717243200, 0),
	}, state)
}

func TestRateLimitTrackerIgnoresPartialHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header http.Header
	}{
		{name: "no headers", header: http.Header{}},
		{
			name: "missing reset",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"42"},
				"X-Ratelimit-Limit":     []string{"60"},
			},
		},
		{
			name: "garbage remaining",
			header: http.Header{
				"X-Ratelimit-Remaining": []string{"lots"},
				"X-Ratelimit-Limit":     []string{"60"},
				"X-Ratelimit-Reset":     []string{"1717243200"},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tracker := NewRateLimitTracker()
			tracker.Update(http.Header{
				"X-Ratelimit-Remaining": []string{"10"},
				"X-Ratelimit-Limit":     []string{"60"},
				"X-Ratelimit-Reset":     []string{"1717243200"},
			})

			tracker.Update(tt.header)

			state, ok := tracker.Current()
			require.True(t, ok)
			assert.Equal(t, 10, state.Remaining, "partial update must not clobber state")
		})
	}
}

func TestRateLimitTrackerLastWriteWins(t *testing.T) {
	t.Parallel()

	tracker := NewRateLimitTracker()
	for _, remaining := range []string{"50", "49", "48"} {
		tracker.Update(http.Header{
			"X-Ratelimit-Remaining": []string{remaining},
			"X-Ratelimit-Limit":     []string{"60"},
			"X-Ratelimit-Reset":     []string{"1717243200"},
		})
	}

	state, ok := tracker.Current()
	require.True(t, ok)
	assert.Equal(t, 48, state.Remaining)
}
