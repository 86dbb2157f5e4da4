// Package sitemapsvc sinh sitemap.xml cho storefront.
package sitemapsvc

import (
	"context"
	"encoding/xml"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	catalogsvc "store_commerce/internal/api/catalog/service"
	"store_commerce/internal/global"
)

// sitemapURL một entry trong sitemap
type sitemapURL struct {
	Loc        string  `xml:"loc"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

// urlSet là phần tử gốc của sitemap theo chuẩn sitemaps.org
type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// staticPage một trang tĩnh của frontend
type staticPage struct {
	path       string
	changeFreq string
	priority   float64
}

var staticPages = []staticPage{
	{"/", "daily", 1.0},
	{"/products", "daily", 0.9},
	{"/login", "monthly", 0.5},
	{"/register", "monthly", 0.5},
	{"/privacy", "yearly", 0.3},
	{"/terms", "yearly", 0.3},
}

// SitemapService sinh sitemap từ danh mục và sản phẩm đang hoạt động
type SitemapService struct {
	productService  *catalogsvc.ProductService
	categoryService *catalogsvc.CategoryService
}

// NewSitemapService tạo mới SitemapService
func NewSitemapService() (*SitemapService, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &SitemapService{
		productService:  productService,
		categoryService: categoryService,
	}, nil
}

// Generate dựng sitemap.xml: trang tĩnh + danh mục đang hoạt động + sản phẩm đang hoạt động.
// Encoder XML tự escape các ký tự đặc biệt trong URL.
func (s *SitemapService) Generate(ctx context.Context) ([]byte, error) {
	base := strings.TrimRight(global.ServerConfig.SiteBaseURL, "/")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + page.path,
			ChangeFreq: page.changeFreq,
			Priority:   page.priority,
		})
	}

	categories, err := s.categoryService.List(ctx, false)
	if err != nil {
		return nil, err
	}
	for _, category := range categories {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/category/" + category.Slug,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	// Chỉ cần _id, không kéo cả document sản phẩm
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	products, err := s.productService.Find(ctx, bson.M{"isActive": true}, opts)
	if err != nil {
		return nil, err
	}
	for _, product := range products {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        base + "/product/" + product.ID.Hex(),
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
