// Package router đăng ký các route thuộc domain catalog: Products, Categories.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "store_commerce/internal/api/catalog/handler"
	"store_commerce/internal/api/middleware"
	apirouter "store_commerce/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerProductRoutes(v1); err != nil {
		return err
	}
	if err := registerCategoryRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerProductRoutes(router fiber.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %w", err)
	}

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	// Route public phải đăng ký TRƯỚC các route admin cùng prefix:
	// middleware qua group.Use() khớp theo prefix nên route đăng ký sau sẽ bị chặn.
	// Route cố định (featured) đăng ký trước route có param :id.
	router.Get("/products/featured", productHandler.HandleFeatured)
	router.Get("/products", productHandler.HandlePublicList)
	router.Get("/products/:id", productHandler.FindOneById)

	apirouter.RegisterRouteWithMiddleware(router, "/products", "GET", "/admin/all", adminChain, productHandler.HandleAdminList)
	apirouter.RegisterRouteWithMiddleware(router, "/products", "POST", "/", adminChain, productHandler.InsertOne)
	apirouter.RegisterRouteWithMiddleware(router, "/products", "PUT", "/:id", adminChain, productHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/products", "DELETE", "/:id", adminChain, productHandler.DeleteById)
	return nil
}

func registerCategoryRoutes(router fiber.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %w", err)
	}

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}

	router.Get("/categories/list", categoryHandler.HandleListLight)
	router.Get("/categories/slug/:slug", categoryHandler.HandleGetBySlug)
	router.Get("/categories", categoryHandler.HandleList)
	router.Get("/categories/:id", categoryHandler.FindOneById)

	apirouter.RegisterRouteWithMiddleware(router, "/categories", "POST", "/", adminChain, categoryHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/categories", "POST", "/sync", adminChain, categoryHandler.HandleSync)
	apirouter.RegisterRouteWithMiddleware(router, "/categories", "PUT", "/:id", adminChain, categoryHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/categories", "DELETE", "/:id", adminChain, categoryHandler.DeleteById)
	return nil
}
