// Package router đăng ký các route thuộc domain auth: Auth, Users (admin), System.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "store_commerce/internal/api/auth/handler"
	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/middleware"
	apirouter "store_commerce/internal/api/router"
)

// Register đăng ký tất cả route auth lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerAuthRoutes(v1); err != nil {
		return err
	}
	if err := registerUserRoutes(v1); err != nil {
		return err
	}
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerAuthRoutes(router fiber.Router) error {
	authHandler, err := authhdl.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %w", err)
	}

	// Các route public không cần middleware
	router.Post("/auth/register", authHandler.HandleRegister)
	router.Post("/auth/login", authHandler.HandleLogin)
	router.Post("/auth/refresh", authHandler.HandleRefresh)
	router.Post("/auth/logout", authHandler.HandleLogout)
	router.Post("/auth/forgot-password", authHandler.HandleForgotPassword)
	router.Post("/auth/reset-password", authHandler.HandleResetPassword)

	authMiddleware := middleware.RequireAuth()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authMiddleware}, authHandler.HandleMe)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/change-password", []fiber.Handler{authMiddleware}, authHandler.HandleChangePassword)
	return nil
}

func registerUserRoutes(router fiber.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	adminChain := []fiber.Handler{middleware.RequireAuth(), middleware.RequireAdmin()}
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/", adminChain, userHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/stats", adminChain, userHandler.HandleStats)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "GET", "/:id", adminChain, userHandler.FindOneById)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "PUT", "/:id", adminChain, userHandler.HandleUpdate)
	apirouter.RegisterRouteWithMiddleware(router, "/users", "DELETE", "/:id", adminChain, userHandler.HandleDelete)
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/health", systemHandler.HandleHealth)
	return nil
}
