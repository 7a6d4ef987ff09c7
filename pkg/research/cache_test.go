package research

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCache_SetAndGet(t *testing.T) {
	c := newCache(1*time.Minute, 10)

	c.set("concrete driveway cost", &Result{Keyword: "concrete driveway cost"})

	result, ok := c.get("concrete driveway cost")
	assert.True(t, ok)
	assert.Equal(t, "concrete driveway cost", result.Keyword)
}

func TestCache_Miss(t *testing.T) {
	c := newCache(1*time.Minute, 10)

	result, ok := c.get("missing")
	assert.False(t, ok)
	assert.Nil(t, result)
}

func TestCache_TTLExpiry(t *testing.T) {
	c := newCache(50*time.Millisecond, 10)

	c.set("kw", &Result{Keyword: "kw"})

	_, ok := c.get("kw")
	assert.True(t, ok)

	time.Sleep(60 * time.Millisecond)

	_, ok = c.get("kw")
	assert.False(t, ok)
}

func TestCache_EvictsOldestAtCapacity(t *testing.T) {
	c := newCache(1*time.Minute, 2)

	c.set("first", &Result{Keyword: "first"})
	time.Sleep(2 * time.Millisecond)
	c.set("second", &Result{Keyword: "second"})
	time.Sleep(2 * time.Millisecond)
	c.set("third", &Result{Keyword: "third"})

	_, ok := c.get("first")
	assert.False(t, ok, "oldest entry should have been evicted")

	_, ok = c.get("second")
	assert.True(t, ok)
	_, ok = c.get("third")
	assert.True(t, ok)
}
