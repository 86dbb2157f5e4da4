// Package dto - các cấu trúc request thuộc domain catalog.
package dto

// ProductCreateInput dữ liệu tạo sản phẩm (admin).
// Sản phẩm mới luôn đang hoạt động, nhãn category được đồng bộ sang danh mục.
type ProductCreateInput struct {
	Name           string            `json:"name" validate:"required,no_xss"`
	Description    string            `json:"description" validate:"omitempty,no_xss"`
	Price          float64           `json:"price" validate:"required,gte=0"`
	Images         []string          `json:"images" validate:"omitempty,dive,url"`
	Category       string            `json:"category" validate:"required,no_xss"`
	Stock          int               `json:"stock" validate:"gte=0"`
	IsFeatured     bool              `json:"isFeatured"`
	IsOnSale       bool              `json:"isOnSale"`
	Specifications map[string]string `json:"specifications"`
}

// ProductUpdateInput dữ liệu cập nhật sản phẩm (admin).
// Con trỏ phân biệt "không gửi" với "gửi giá trị zero".
type ProductUpdateInput struct {
	Name           string             `json:"name" validate:"omitempty,no_xss"`
	Description    *string            `json:"description" validate:"omitempty,no_xss"`
	Price          *float64           `json:"price" validate:"omitempty,gte=0"`
	Images         []string           `json:"images" validate:"omitempty,dive,url"`
	Category       string             `json:"category" validate:"omitempty,no_xss"`
	Stock          *int               `json:"stock" validate:"omitempty,gte=0"`
	IsActive       *bool              `json:"isActive"`
	IsFeatured     *bool              `json:"isFeatured"`
	IsOnSale       *bool              `json:"isOnSale"`
	Specifications *map[string]string `json:"specifications"`
}

// CategoryCreateInput dữ liệu tạo danh mục thủ công (admin).
// Slug được sinh từ tên, danh mục mới luôn đang hoạt động.
type CategoryCreateInput struct {
	Name        string `json:"name" validate:"required,no_xss"`
	Description string `json:"description" validate:"omitempty,no_xss"`
}

// CategoryUpdateInput dữ liệu cập nhật danh mục (admin)
type CategoryUpdateInput struct {
	Name        string  `json:"name" validate:"omitempty,no_xss"`
	Description *string `json:"description" validate:"omitempty,no_xss"`
	IsActive    *bool   `json:"isActive"`
}
