package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBundleCacheInvalidSize(t *testing.T) {
	t.Parallel()

	_, err := NewBundleCache(0, time.Minute)
	assert.Error(t, err)
}

func TestBundleCacheKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ada-2024-auth", BundleCacheKey("ada", 2024, true))
	assert.Equal(t, "ada-2024-noauth", BundleCacheKey("ada", 2024, false))
}

func TestBundleCacheSetGet(t *testing.T) {
	t.Parallel()

	c, err := NewBundleCache(10, time.Minute)
	require.NoError(t, err)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	bundle := Bundle{Profile: Profile{Login: "ada"}}
	c.Set("k", bundle)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, bundle, got)
}

func TestBundleCacheTTLExpiry(t *testing.T) {
	t.Parallel()

	c, err := NewBundleCache(10, time.Minute)
	require.NoError(t, err)

	current := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return current }

	c.Set("k", Bundle{Profile: Profile{Login: "ada"}})

	current = current.Add(59 * time.Second)
	_, ok := c.Get("k")
	assert.True(t, ok, "entry within ttl must be served")

	current = current.Add(2 * time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok, "entry past ttl must not be served")

	// The expired entry is gone even if time moves back.
	current = current.Add(-time.Minute)
	_, ok = c.Get("k")
	assert.False(t, ok)
}
