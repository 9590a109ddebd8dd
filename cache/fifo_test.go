package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFIFO(t *testing.T) {
	t.Run("evicts first inserted", func(t *testing.T) {
		c := NewFIFO(3)
		c.Set("k1", "v1")
		c.Set("k2", "v2")
		c.Set("k3", "v3")
		c.Set("k4", "v4")

		assert.Equal(t, 3, c.Len())
		assert.False(t, c.Has("k1"), "k1 should be evicted")
		for _, k := range []string{"k2", "k3", "k4"} {
			assert.True(t, c.Has(k), "%s should be present", k)
		}
		assert.Equal(t, int64(1), c.Stats().Evictions)
	})

	t.Run("update keeps position and never evicts", func(t *testing.T) {
		c := NewFIFO(3)
		c.Set("k1", "v1")
		c.Set("k2", "v2")
		c.Set("k3", "v3")

		c.Set("k1", "v1-updated")
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, int64(0), c.Stats().Evictions)
		assert.Equal(t, []string{"k1", "k2", "k3"}, c.Keys())

		v, ok := c.Get("k1")
		require.True(t, ok)
		assert.Equal(t, "v1-updated", v)

		// k1 is still the oldest entry despite the update.
		c.Set("k4", "v4")
		assert.False(t, c.Has("k1"))
		assert.Equal(t, []string{"k2", "k3", "k4"}, c.Keys())
	})

	t.Run("max size one", func(t *testing.T) {
		c := NewFIFO(1)
		c.Set("a", "1")
		c.Set("b", "2")

		assert.Equal(t, 1, c.Len())
		assert.False(t, c.Has("a"))
		v, ok := c.Get("b")
		require.True(t, ok)
		assert.Equal(t, "2", v)
	})

	t.Run("default size", func(t *testing.T) {
		assert.Equal(t, DefaultMaxSize, NewFIFO(0).MaxSize())
	})

	t.Run("size never exceeds capacity", func(t *testing.T) {
		c := NewFIFO(10)
		for i := range 100 {
			c.Set(fmt.Sprintf("k%d", i), "v")
			assert.LessOrEqual(t, c.Len(), 10)
		}
		assert.Equal(t, []string{"k90", "k91", "k92", "k93", "k94", "k95", "k96", "k97", "k98", "k99"}, c.Keys())
	})
}

func TestFIFO_Disabled(t *testing.T) {
	c := NewFIFO(3)
	c.Set("k1", "v1")

	c.SetEnabled(false)
	assert.False(t, c.Enabled())

	_, ok := c.Get("k1")
	assert.False(t, ok, "disabled cache always misses")
	assert.False(t, c.Has("k1"))

	c.Set("k2", "v2")
	assert.Equal(t, 1, c.Len(), "set is a no-op while disabled")

	c.SetEnabled(true)
	v, ok := c.Get("k1")
	require.True(t, ok, "entries survive a disable/enable cycle")
	assert.Equal(t, "v1", v)
	assert.False(t, c.Has("k2"))
}

func TestFIFO_Shrink(t *testing.T) {
	c := NewFIFO(5)
	for i := range 5 {
		c.Set(fmt.Sprintf("k%d", i), "v")
	}

	c.SetMaxSize(2)
	assert.Equal(t, 5, c.Len(), "shrinking does not evict retroactively")

	c.Set("k5", "v")
	assert.Equal(t, 5, c.Len(), "one eviction per new key")
	assert.False(t, c.Has("k0"))

	c.SetMaxSize(0)
	assert.Equal(t, 1, c.MaxSize())
}

func TestFIFO_ClearAndDelete(t *testing.T) {
	c := NewFIFO(3)
	c.Set("k1", "v1")
	c.Set("k2", "v2")

	assert.True(t, c.Delete("k1"))
	assert.False(t, c.Delete("k1"))
	assert.Equal(t, []string{"k2"}, c.Keys())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Keys())

	c.Set("k3", "v3")
	assert.Equal(t, []string{"k3"}, c.Keys())
}

func TestFIFO_Stats(t *testing.T) {
	c := NewFIFO(2)
	c.Set("a", "1")

	c.Get("a")
	c.Get("a")
	c.Get("missing")

	s := c.Stats()
	assert.Equal(t, int64(2), s.Hits)
	assert.Equal(t, int64(1), s.Misses)
	assert.Equal(t, 1, s.Size)
	assert.Equal(t, 2, s.MaxSize)
	assert.True(t, s.Enabled)
}

func TestKey(t *testing.T) {
	assert.Equal(t, `djb2:{"a":1}`, Key("djb2", `{"a":1}`))
}
