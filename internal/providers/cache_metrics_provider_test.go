package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingMetrics struct {
	mockMetrics
	hits   int
	misses int
}

func (m *countingMetrics) IncCacheHits()   { m.hits++ }
func (m *countingMetrics) IncCacheMisses() { m.misses++ }

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{}, metrics)

	_, ok := c.Get("3:members")
	assert.False(t, ok)

	c.Set("3:members", []byte("[]"))
	val, ok := c.Get("3:members")
	assert.True(t, ok)
	assert.Equal(t, []byte("[]"), val)

	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, 1, metrics.misses)
}

func TestInstrumentedCache_DisabledSkipsMetrics(t *testing.T) {
	metrics := &countingMetrics{}
	c := NewInstrumentedCacheProvider(cacheConfig(false, 1, 5*time.Second), &cacheTestLogger{}, metrics)

	assert.IsType(t, &noopCache{}, c)
	_, _ = c.Get("anything")
	assert.Equal(t, 0, metrics.misses)
}

func TestInstrumentedCache_ClearPassesThrough(t *testing.T) {
	c := NewInstrumentedCacheProvider(cacheConfig(true, 1, 5*time.Second), &cacheTestLogger{}, &countingMetrics{})

	c.Set("k", []byte("v"))
	c.Clear()
	_, ok := c.Get("k")
	assert.False(t, ok)
}
