// Package models chứa các kiểu dùng chung cho layer repository/base (kết quả phân trang).
package models

// Giới hạn phân trang dùng chung cho các endpoint danh sách
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 12
	MaxLimit     int64 = 100
)

// NormalizePagination đưa page/limit về khoảng hợp lệ
func NormalizePagination(page, limit int64) (int64, int64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
}
