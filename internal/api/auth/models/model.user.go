// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng.
// Password lưu bcrypt hash, không bao giờ trả về trong response (json:"-").
type User struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	IsAdmin   bool               `json:"isAdmin" bson:"isAdmin"`
	IsActive  bool               `json:"isActive" bson:"isActive" default:"true"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// FullName trả về họ tên đầy đủ của người dùng
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// UserStats thống kê người dùng cho trang quản trị
type UserStats struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Admins   int64 `json:"admins"`
}
