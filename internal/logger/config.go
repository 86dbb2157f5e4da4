package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level      string // debug, info, warn, error
	Format     string // json hoặc text
	Output     string // file, stdout, both
	LogPath    string // thư mục chứa file log (tương đối so với rootDir)
	AppFile    string // file log chính của ứng dụng
	AuditFile  string // file log audit
	ErrorFile  string // file log lỗi
	MaxSize    int    // MB mỗi file trước khi rotate
	MaxBackups int    // số file cũ giữ lại
	MaxAge     int    // số ngày giữ file cũ
	Compress   bool   // nén file cũ

	// SkipPaths chứa các URL path không cần ghi log (health check, static)
	SkipPaths []string
}

// DefaultConfig trả về cấu hình logging mặc định
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		SkipPaths:  []string{"/health", "/uploads/"},
	}
}

// FilterHook đánh dấu các entry không cần ghi (ví dụ log health check)
// Entry bị filter được đánh dấu bằng field "_filtered", AsyncHook sẽ bỏ qua khi ghi
type FilterHook struct {
	skipPaths []string
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &FilterHook{skipPaths: cfg.SkipPaths}
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry nếu path của request nằm trong danh sách bỏ qua
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	path, ok := entry.Data["path"].(string)
	if !ok {
		return nil
	}
	for _, skip := range h.skipPaths {
		if strings.HasPrefix(path, skip) {
			entry.Data["_filtered"] = true
			return nil
		}
	}
	return nil
}
