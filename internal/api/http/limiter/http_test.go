package limiter

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitwrapped/gitwrapped/internal/app"
	"github.com/gitwrapped/gitwrapped/internal/mock"
)

func TestHTTPDoerRate(t *testing.T) {
	t.Parallel()

	maxRate := 50.0
	calls := 5

	d := NewHTTPDoer(&mock.HTTPDoer{}, maxRate)

	start := time.Now()
	for i := 0; i < calls; i++ {
		req, err := http.NewRequest(http.MethodGet, "http://github.test", nil)
		require.NoError(t, err)

		_, err = d.Do(req)
		require.NoError(t, err)
	}
	elapsed := time.Since(start)

	// First call passes instantly, every following one waits its slot.
	minElapsed := time.Duration(float64(calls-1) / maxRate * float64(time.Second))
	assert.GreaterOrEqual(t, elapsed, minElapsed)
}

func TestHTTPDoerCanceledContext(t *testing.T) {
	t.Parallel()

	d := NewHTTPDoer(&mock.HTTPDoer{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req, err := http.NewRequest(http.MethodGet, "http://github.test", nil)
	require.NoError(t, err)

	// Burst is 1, so the second call has to wait and sees the
	// cancellation.
	_, err = d.Do(req.WithContext(ctx))
	if err == nil {
		_, err = d.Do(req.WithContext(ctx))
	}
	require.Error(t, err)
	assert.True(t, app.IsTooManyRequestsError(err))
}
