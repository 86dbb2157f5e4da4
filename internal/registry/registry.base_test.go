package registry

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry[string]()

	isNew, err := r.Register("key", "value")
	assert.NoError(t, err)
	assert.True(t, isNew, "lần đăng ký đầu tiên phải là item mới")

	got, exists := r.Get("key")
	assert.True(t, exists)
	assert.Equal(t, "value", got)

	// Đăng ký lại cùng key phải ghi đè và báo không phải item mới
	isNew, err = r.Register("key", "value2")
	assert.NoError(t, err)
	assert.False(t, isNew)

	got, _ = r.Get("key")
	assert.Equal(t, "value2", got)
}

func TestRegistryRegister_EmptyName(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.Register("", 1)
	assert.Error(t, err, "đăng ký với tên rỗng phải lỗi")
}

func TestRegistryGet_Missing(t *testing.T) {
	r := NewRegistry[int]()
	_, exists := r.Get("missing")
	assert.False(t, exists)
}

func TestRegistryGetOrCreate(t *testing.T) {
	r := NewRegistry[int]()
	calls := 0

	creator := func() (int, error) {
		calls++
		return 42, nil
	}

	got, err := r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)

	// Lần thứ hai phải trả về item đã có, không gọi lại creator
	got, err = r.GetOrCreate("key", creator)
	assert.NoError(t, err)
	assert.Equal(t, 42, got)
	assert.Equal(t, 1, calls, "creator chỉ được gọi đúng một lần")
}

func TestRegistryGetOrCreate_CreatorError(t *testing.T) {
	r := NewRegistry[int]()
	_, err := r.GetOrCreate("key", func() (int, error) {
		return 0, fmt.Errorf("creator failed")
	})
	assert.Error(t, err)

	_, exists := r.Get("key")
	assert.False(t, exists, "creator lỗi thì không được lưu item")
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("key", "value")

	deleted, err := r.Clear("key", nil)
	assert.NoError(t, err)
	assert.True(t, deleted)

	_, exists := r.Get("key")
	assert.False(t, exists)

	// Xóa key không tồn tại không lỗi
	deleted, err = r.Clear("key", nil)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestRegistryClearAll(t *testing.T) {
	r := NewRegistry[string]()
	_, _ = r.Register("a", "1")
	_, _ = r.Register("b", "2")

	count, err := r.ClearAll(nil)
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	_, exists := r.Get("a")
	assert.False(t, exists)
}
