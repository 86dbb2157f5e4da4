// Package models - các model thuộc domain catalog (sản phẩm, danh mục).
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product định nghĩa mô hình sản phẩm.
// Category là nhãn tự do, danh mục được đồng bộ từ nhãn này (xem CategoryService).
// Stock chỉ được trừ qua thao tác atomic khi tạo đơn hàng.
type Product struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string             `json:"name" bson:"name"`
	Description    string             `json:"description" bson:"description"`
	Price          float64            `json:"price" bson:"price"`
	Images         []string           `json:"images" bson:"images"`
	Category       string             `json:"category" bson:"category" index:"single"`
	Stock          int                `json:"stock" bson:"stock"`
	IsActive       bool               `json:"isActive" bson:"isActive" default:"true"`
	IsFeatured     bool               `json:"isFeatured" bson:"isFeatured"`
	IsOnSale       bool               `json:"isOnSale" bson:"isOnSale"`
	Specifications map[string]string  `json:"specifications,omitempty" bson:"specifications,omitempty"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}
