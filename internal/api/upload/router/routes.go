// Package router đăng ký route upload.
package router

import (
	"github.com/gofiber/fiber/v3"

	"store_commerce/internal/api/middleware"
	apirouter "store_commerce/internal/api/router"
	uploadhdl "store_commerce/internal/api/upload/handler"
)

// Register đăng ký route upload lên v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	uploadHandler, err := uploadhdl.NewUploadHandler()
	if err != nil {
		return err
	}

	authChain := []fiber.Handler{middleware.RequireAuth()}
	apirouter.RegisterRouteWithMiddleware(v1, "/upload", "POST", "/", authChain, uploadHandler.HandleUpload)
	return nil
}
