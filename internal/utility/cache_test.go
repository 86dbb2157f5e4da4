package utility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	got, ok := c.Get("key")
	assert.True(t, ok, "key vừa set phải tồn tại")
	assert.Equal(t, "value", got)

	_, ok = c.Get("missing")
	assert.False(t, ok, "key chưa set không được tồn tại")
}

func TestCacheDelete(t *testing.T) {
	c := NewCache(time.Minute, time.Minute)
	defer c.Stop()

	c.Set("key", 42)
	c.Delete("key")
	_, ok := c.Get("key")
	assert.False(t, ok, "key đã xóa không được tồn tại")
}

func TestCacheExpiry(t *testing.T) {
	c := NewCache(10*time.Millisecond, time.Minute)
	defer c.Stop()

	c.Set("key", "value")
	time.Sleep(30 * time.Millisecond)
	_, ok := c.Get("key")
	assert.False(t, ok, "key quá TTL phải hết hạn")
}
