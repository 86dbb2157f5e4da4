// Package router đăng ký route sitemap.
package router

import (
	"github.com/gofiber/fiber/v3"

	apirouter "store_commerce/internal/api/router"
	sitemaphdl "store_commerce/internal/api/sitemap/handler"
)

// Register đăng ký route sitemap.
// Sitemap phục vụ ở root của domain (không nằm dưới /api/v1) vì crawler
// tìm /sitemap.xml theo quy ước và robots.txt trỏ tới đường dẫn này.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	sitemapHandler, err := sitemaphdl.NewSitemapHandler()
	if err != nil {
		return err
	}

	r.App().Get("/sitemap.xml", sitemapHandler.HandleSitemap)
	return nil
}
