// Package catalogsvc - Test dựng filter và sort cho danh sách sản phẩm.
package catalogsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter_Empty(t *testing.T) {
	filter := ProductListFilter{}.buildFilter()
	assert.Empty(t, filter, "không có điều kiện thì filter phải rỗng")
}

func TestBuildFilter_Category(t *testing.T) {
	filter := ProductListFilter{Category: "lenceria"}.buildFilter()
	assert.Equal(t, "lenceria", filter["category"])
}

func TestBuildFilter_Search(t *testing.T) {
	filter := ProductListFilter{Search: "encaje"}.buildFilter()
	or, ok := filter["$or"].([]bson.M)
	assert.True(t, ok, "search phải sinh điều kiện $or")
	assert.Len(t, or, 3, "search phải áp lên name, description và category")
	for _, cond := range or {
		for _, regex := range cond {
			m, ok := regex.(bson.M)
			assert.True(t, ok)
			assert.Equal(t, "encaje", m["$regex"])
			assert.Equal(t, "i", m["$options"], "regex tìm kiếm phải không phân biệt hoa thường")
		}
	}
}

func TestBuildFilter_PriceRange(t *testing.T) {
	min := 1000.0
	max := 5000.0

	filter := ProductListFilter{MinPrice: &min, MaxPrice: &max}.buildFilter()
	price, ok := filter["price"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, 1000.0, price["$gte"])
	assert.Equal(t, 5000.0, price["$lte"])

	// Chỉ có một cận vẫn phải sinh điều kiện
	filter = ProductListFilter{MinPrice: &min}.buildFilter()
	price, ok = filter["price"].(bson.M)
	assert.True(t, ok)
	assert.Equal(t, 1000.0, price["$gte"])
	_, hasMax := price["$lte"]
	assert.False(t, hasMax, "không truyền MaxPrice thì không được có $lte")
}

func TestBuildFilter_BoolFlags(t *testing.T) {
	active := true
	featured := false

	filter := ProductListFilter{IsActive: &active, IsFeatured: &featured}.buildFilter()
	assert.Equal(t, true, filter["isActive"])
	assert.Equal(t, false, filter["isFeatured"], "false tường minh vẫn phải lọc được")

	filter = ProductListFilter{}.buildFilter()
	_, hasActive := filter["isActive"]
	assert.False(t, hasActive, "không truyền IsActive thì không được lọc theo isActive")
}

func TestSortOption(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "price", Value: 1}}, sortOption(SortPriceAsc))
	assert.Equal(t, bson.D{{Key: "price", Value: -1}}, sortOption(SortPriceDesc))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sortOption(SortNewest))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sortOption(""), "sort không hợp lệ phải về mặc định mới nhất trước")
}
