package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock lets tests move time forward deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func setupTestCache(ttl time.Duration) (*Cache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return New(ttl, WithClock(clock.Now)), clock
}

func TestCache_SetGet(t *testing.T) {
	c, _ := setupTestCache(DefaultTTL)

	c.Set("key", "value")

	v, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "value", v)
}

func TestCache_GetMissing(t *testing.T) {
	c, _ := setupTestCache(DefaultTTL)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestCache_SetReplacesAndRestartsTTL(t *testing.T) {
	c, clock := setupTestCache(DefaultTTL)

	c.Set("key", "old")
	clock.Advance(4 * time.Minute)
	c.Set("key", "new")
	clock.Advance(4 * time.Minute)

	// 8 minutes after the first Set but only 4 after the replacement.
	v, ok := c.Get("key")
	assert.True(t, ok)
	assert.Equal(t, "new", v)
}

func TestCache_TTLExpiry(t *testing.T) {
	testCases := []struct {
		name    string
		advance time.Duration
		wantHit bool
	}{
		{
			name:    "just inside the window",
			advance: 5*time.Minute - time.Millisecond,
			wantHit: true,
		},
		{
			name:    "exactly at the deadline",
			advance: 5 * time.Minute,
			wantHit: false,
		},
		{
			name:    "past the deadline",
			advance: 5*time.Minute + time.Second,
			wantHit: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, clock := setupTestCache(DefaultTTL)

			c.Set("k", "v")
			clock.Advance(tc.advance)

			_, ok := c.Get("k")
			assert.Equal(t, tc.wantHit, ok)
		})
	}
}

func TestCache_LazyEviction(t *testing.T) {
	c, clock := setupTestCache(DefaultTTL)

	c.Set("k", "v")
	clock.Advance(10 * time.Minute)

	// The entry survives until a read finds it stale.
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCache_Delete(t *testing.T) {
	c, _ := setupTestCache(DefaultTTL)

	c.Set("blog:1", "x")
	c.Set("blogs:all", "y")
	c.Delete("blog:1")

	_, ok := c.Get("blog:1")
	assert.False(t, ok)

	v, ok := c.Get("blogs:all")
	assert.True(t, ok)
	assert.Equal(t, "y", v)
}

func TestCache_DeletePrefix(t *testing.T) {
	testCases := []struct {
		name        string
		prefix      string
		wantGone    []string
		wantPresent []string
	}{
		{
			name:        "listings prefix leaves post entries alone",
			prefix:      "blogs:",
			wantGone:    []string{"blogs:all", "blogs:golang"},
			wantPresent: []string{"blog:1"},
		},
		{
			name:     "short prefix matches literally and catches the listings too",
			prefix:   "blog:",
			wantGone: []string{"blog:1", "blogs:all", "blogs:golang"},
		},
		{
			name:        "unrelated prefix removes nothing",
			prefix:      "user:",
			wantPresent: []string{"blog:1", "blogs:all", "blogs:golang"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := setupTestCache(DefaultTTL)
			c.Set("blog:1", "x")
			c.Set("blogs:all", "y")
			c.Set("blogs:golang", "z")

			c.DeletePrefix(tc.prefix)

			for _, key := range tc.wantGone {
				_, ok := c.Get(key)
				assert.False(t, ok, "expected %q to be gone", key)
			}
			for _, key := range tc.wantPresent {
				_, ok := c.Get(key)
				assert.True(t, ok, "expected %q to survive", key)
			}
		})
	}
}

func TestCache_Flush(t *testing.T) {
	c, _ := setupTestCache(DefaultTTL)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Flush()

	assert.Equal(t, 0, c.Len())
}
