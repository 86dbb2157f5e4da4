package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Gửi email là best-effort: caller (tạo đơn, đăng ký, quên mật khẩu) không
// được chờ SMTP. dispatch phải trả về ngay cả khi tác vụ gửi còn đang chạy.
func TestDispatch_DoesNotBlockCaller(t *testing.T) {
	done := make(chan struct{})
	start := time.Now()

	dispatch(func() {
		time.Sleep(200 * time.Millisecond)
		close(done)
	})

	elapsed := time.Since(start)
	assert.Less(t, elapsed, 100*time.Millisecond, "dispatch phải trả về ngay, không chờ tác vụ gửi xong")

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tác vụ gửi không được chạy")
	}
}

func TestDispatch_RecoversPanic(t *testing.T) {
	done := make(chan struct{})
	dispatch(func() {
		defer close(done)
		panic("lỗi giả lập khi gửi email")
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tác vụ panic không được recover")
	}

	// Goroutine panic mà không recover sẽ crash process; chạy tới đây là đã recover
	assert.True(t, true)
}
