// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"store_commerce/internal/api/middleware"
	orderhdl "store_commerce/internal/api/order/handler"
	apirouter "store_commerce/internal/api/router"
)

// Register đăng ký các route đơn hàng lên v1.
// Mọi route đơn hàng đều cần đăng nhập, các route admin cần thêm quyền admin.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %w", err)
	}

	authChain := []fiber.Handler{middleware.RequireAuth()}
	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	// Route chỉ cần đăng nhập đăng ký TRƯỚC các route admin cùng prefix:
	// middleware qua group.Use() khớp theo prefix nên RequireAdmin đăng ký trước
	// sẽ chặn cả các route thành viên đăng ký sau.
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", authChain, orderHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/my-orders", authChain, orderHandler.HandleMyOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/:id", authChain, orderHandler.HandleGet)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "POST", "/:id/payment-proof", authChain, orderHandler.HandlePaymentProof)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "GET", "/admin/all", adminChain, orderHandler.HandleAdminList)
	apirouter.RegisterRouteWithMiddleware(v1, "/orders", "PATCH", "/:id/status", adminChain, orderHandler.HandleUpdateStatus)
	return nil
}
