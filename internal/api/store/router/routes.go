// Package router đăng ký các route thuộc domain store.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"store_commerce/internal/api/middleware"
	apirouter "store_commerce/internal/api/router"
	storehdl "store_commerce/internal/api/store/handler"
)

// Register đăng ký các route cấu hình cửa hàng lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	configHandler, err := storehdl.NewStoreConfigHandler()
	if err != nil {
		return fmt.Errorf("failed to create store config handler: %w", err)
	}

	// Route public đăng ký trước route admin cùng prefix (middleware khớp theo prefix)
	v1.Get("/store-config", configHandler.HandleGet)

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(v1, "/store-config", "PUT", "/", adminChain, configHandler.HandleUpdate)
	return nil
}
