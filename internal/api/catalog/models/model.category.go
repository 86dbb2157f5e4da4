package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa mô hình danh mục sản phẩm.
// Danh mục được tạo tự động từ nhãn category của sản phẩm, slug sinh từ tên.
type Category struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" index:"unique"`
	Slug        string             `json:"slug" bson:"slug" index:"unique"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
