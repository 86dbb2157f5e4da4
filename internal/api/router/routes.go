// Package router quản lý việc định tuyến cho API.
package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// QUAN TRỌNG: FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 (beta) không gọi middleware khi truyền trực tiếp trong route:
//
//	router.Get("/path", middleware.RequireAuth(), handler)  // middleware KHÔNG được gọi!
//
// Cách đúng: tạo group và đăng ký middleware qua .Use():
//
//	RegisterRouteWithMiddleware(router, "/orders", "GET", "/my-orders",
//		[]fiber.Handler{middleware.RequireAuth()}, handler)
//
// Tất cả route có middleware trong package này PHẢI đi qua RegisterRouteWithMiddleware.
// ============================================================================

// CRUDHandler định nghĩa interface cho các handler CRUD dùng với RegisterCRUDRoutes
type CRUDHandler interface {
	InsertOne(c fiber.Ctx) error
	FindWithPagination(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app *fiber.App
}

// CRUDConfig cấu hình các operation được phép cho mỗi collection
type CRUDConfig struct {
	Create bool // POST /
	List   bool // GET /
	Get    bool // GET /:id
	Update bool // PUT /:id
	Delete bool // DELETE /:id
}

// Config dùng chung cho các domain
var (
	// ReadOnlyConfig chỉ cho phép đọc
	ReadOnlyConfig = CRUDConfig{
		Create: false,
		List:   true, Get: true,
		Update: false, Delete: false,
	}

	// ReadWriteConfig cho phép đầy đủ CRUD
	ReadWriteConfig = CRUDConfig{
		Create: true,
		List:   true, Get: true,
		Update: true, Delete: true,
	}

	// WriteOnlyConfig chỉ đăng ký các route ghi (create/update/delete).
	// Dùng khi các route đọc public đã được domain đăng ký riêng với filter nghiệp vụ.
	WriteOnlyConfig = CRUDConfig{
		Create: true,
		List:   false, Get: false,
		Update: true, Delete: true,
	}
)

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// App trả về ứng dụng Fiber gốc, dùng cho các route nằm ngoài prefix /api
// (ví dụ /sitemap.xml phục vụ ở root cho crawler).
func (r *Router) App() *fiber.App {
	return r.app
}

// joinRoutePath nối prefix với path tương đối thành path đăng ký đầy đủ.
// Path "/" (hoặc rỗng) trả về nguyên prefix, KHÔNG nối thêm dấu gạch chéo:
// với StrictRouting bật, đăng ký qua group sẽ thành "<prefix>/" và
// "<prefix>" (không có gạch chéo cuối) sẽ trả về 404.
func joinRoutePath(prefix, path string) string {
	if path == "" || path == "/" {
		return prefix
	}
	return prefix + path
}

// RegisterRouteWithMiddleware đăng ký route với middleware qua .Use() method.
// Đây là cách duy nhất hoạt động đúng trong Fiber v3 (xem ghi chú ở đầu file).
// Middleware gắn vào group theo prefix (Use khớp prefix nên bao phủ cả path
// không có gạch chéo cuối); handler cuối được đăng ký trên router cha với
// path đầy đủ đã chuẩn hóa qua joinRoutePath.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware chỉ áp dụng cho routes khớp prefix này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	full := joinRoutePath(prefix, path)
	switch method {
	case "GET":
		router.Get(full, handler)
	case "POST":
		router.Post(full, handler)
	case "PUT":
		router.Put(full, handler)
	case "PATCH":
		router.Patch(full, handler)
	case "DELETE":
		router.Delete(full, handler)
	}
}

// RegisterCRUDRoutes đăng ký các route CRUD REST cho một collection.
// Tất cả route đăng ký qua hàm này dùng chung một middleware chain
// (thường là RequireAuth + RequireAdmin cho các route quản trị).
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig, middlewares []fiber.Handler) {
	if config.Create {
		RegisterRouteWithMiddleware(router, prefix, "POST", "/", middlewares, h.InsertOne)
	}
	if config.List {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/", middlewares, h.FindWithPagination)
	}
	if config.Get {
		RegisterRouteWithMiddleware(router, prefix, "GET", "/:id", middlewares, h.FindOneById)
	}
	if config.Update {
		RegisterRouteWithMiddleware(router, prefix, "PUT", "/:id", middlewares, h.UpdateById)
	}
	if config.Delete {
		RegisterRouteWithMiddleware(router, prefix, "DELETE", "/:id", middlewares, h.DeleteById)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
