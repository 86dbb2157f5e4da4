// Package sitemaphdl chứa handler phục vụ sitemap.xml.
package sitemaphdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "store_commerce/internal/api/base/handler"
	sitemapsvc "store_commerce/internal/api/sitemap/service"
)

// SitemapHandler xử lý route sitemap
type SitemapHandler struct {
	sitemapService *sitemapsvc.SitemapService
}

// NewSitemapHandler tạo mới SitemapHandler
func NewSitemapHandler() (*SitemapHandler, error) {
	sitemapService, err := sitemapsvc.NewSitemapService()
	if err != nil {
		return nil, err
	}
	return &SitemapHandler{sitemapService: sitemapService}, nil
}

// HandleSitemap trả về sitemap.xml, không dùng envelope JSON
// @Router /sitemap.xml [get]
func (h *SitemapHandler) HandleSitemap(c fiber.Ctx) error {
	body, err := h.sitemapService.Generate(c.Context())
	if err != nil {
		basehdl.Respond(c, nil, err)
		return nil
	}
	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.Send(body)
}
