package router

import (
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
)

func TestJoinRoutePath(t *testing.T) {
	assert.Equal(t, "/orders", joinRoutePath("/orders", "/"),
		"path gốc của group không được có dấu gạch chéo cuối")
	assert.Equal(t, "/orders", joinRoutePath("/orders", ""))
	assert.Equal(t, "/orders/my-orders", joinRoutePath("/orders", "/my-orders"))
	assert.Equal(t, "/orders/:id/status", joinRoutePath("/orders", "/:id/status"))
}

// Với StrictRouting bật, route đăng ký thành "<prefix>/" sẽ làm request tới
// "<prefix>" (không có gạch chéo cuối) trả về 404. Kiểm tra các route path "/"
// được đăng ký đúng dạng không có gạch chéo cuối.
func TestRegisterRouteWithMiddleware_RootPathHasNoTrailingSlash(t *testing.T) {
	app := fiber.New(fiber.Config{StrictRouting: true})
	v1 := app.Group("/api/v1")

	handler := func(c fiber.Ctx) error { return nil }
	middleware := func(c fiber.Ctx) error { return c.Next() }

	RegisterRouteWithMiddleware(v1, "/orders", "POST", "/", []fiber.Handler{middleware}, handler)
	RegisterRouteWithMiddleware(v1, "/orders", "GET", "/my-orders", []fiber.Handler{middleware}, handler)
	RegisterRouteWithMiddleware(v1, "/store-config", "PUT", "/", []fiber.Handler{middleware}, handler)

	registered := make(map[string]bool)
	for _, route := range app.GetRoutes(true) {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["POST /api/v1/orders"], "POST /api/v1/orders phải được đăng ký không có gạch chéo cuối")
	assert.False(t, registered["POST /api/v1/orders/"], "không được đăng ký biến thể có gạch chéo cuối")
	assert.True(t, registered["GET /api/v1/orders/my-orders"])
	assert.True(t, registered["PUT /api/v1/store-config"])
	assert.False(t, registered["PUT /api/v1/store-config/"])
}
