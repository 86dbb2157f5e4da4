package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
type Configuration struct {
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	Environment           string `env:"GO_ENV" envDefault:"development"`           // Môi trường chạy (development, production)
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// JWT Configuration: hai secret độc lập cho access token và refresh token
	JwtAccessSecret    string `env:"JWT_ACCESS_SECRET,required"`          // Bí mật ký access token
	JwtRefreshSecret   string `env:"JWT_REFRESH_SECRET,required"`         // Bí mật ký refresh token
	JwtAccessExpiryMin int    `env:"JWT_ACCESS_EXPIRY_MIN" envDefault:"15"`  // Thời gian sống access token (phút)
	JwtRefreshExpiryHr int    `env:"JWT_REFRESH_EXPIRY_HR" envDefault:"168"` // Thời gian sống refresh token (giờ)
	ResetTokenExpMin   int    `env:"RESET_TOKEN_EXP_MIN" envDefault:"30"`    // Thời gian sống token đặt lại mật khẩu (phút)

	// SMTP Configuration (optional - email sẽ bị bỏ qua nếu thiếu)
	SMTPHost     string `env:"SMTP_HOST"`                      // SMTP server host
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`     // SMTP server port
	SMTPUser     string `env:"SMTP_USER"`                      // SMTP username
	SMTPPassword string `env:"SMTP_PASSWORD"`                  // SMTP password
	SMTPFrom     string `env:"SMTP_FROM"`                      // Địa chỉ người gửi
	AdminEmails  string `env:"ADMIN_EMAILS"`                   // Danh sách email quản trị nhận thông báo đơn hàng, phân cách bằng dấu phẩy

	// Upload Configuration
	UploadDir     string `env:"UPLOAD_DIR"`                                   // Thư mục lưu ảnh upload (rỗng = trả về placeholder)
	UploadBaseURL string `env:"UPLOAD_BASE_URL" envDefault:"/uploads"`        // URL prefix phục vụ ảnh đã upload
	UploadMaxSize int64  `env:"UPLOAD_MAX_SIZE" envDefault:"5242880"`         // Kích thước file tối đa (bytes)

	// Admin seed (tự động tạo tài khoản quản trị trong init nếu chưa có)
	AdminSeedEmail    string `env:"ADMIN_SEED_EMAIL"`    // Email tài khoản quản trị mặc định
	AdminSeedPassword string `env:"ADMIN_SEED_PASSWORD"` // Mật khẩu tài khoản quản trị mặc định

	// Frontend URL (dùng trong email và sitemap)
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend
	SiteBaseURL string `env:"SITE_BASE_URL" envDefault:"http://localhost:3000"` // URL gốc dùng khi sinh sitemap

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn đến file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn đến file private key (.key)
}

// IsProduction cho biết ứng dụng có đang chạy ở môi trường production không
func (c *Configuration) IsProduction() bool {
	return c.Environment == "production"
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ thư mục hiện tại
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env theo GO_ENV
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
