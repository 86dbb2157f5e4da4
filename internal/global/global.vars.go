package global

import (
	"store_commerce/config"
	"store_commerce/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users          string // Tên collection cho người dùng
	PasswordResets string // Tên collection cho token đặt lại mật khẩu
	Products       string // Tên collection cho sản phẩm
	Categories     string // Tên collection cho danh mục
	Orders         string // Tên collection cho đơn hàng
	StoreConfigs   string // Tên collection cho cấu hình cửa hàng
}

// Các biến toàn cục
var Validate *validator.Validate                            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                      // Cấu hình của server
var MongoDB_ColNames CollectionName = *new(CollectionName)  // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
