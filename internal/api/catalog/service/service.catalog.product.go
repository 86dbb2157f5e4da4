// Package catalogsvc chứa business logic của domain catalog.
package catalogsvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "store_commerce/internal/api/base/models"
	basesvc "store_commerce/internal/api/base/service"
	catalogmodels "store_commerce/internal/api/catalog/models"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// Các kiểu sắp xếp của danh sách sản phẩm công khai
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
)

// FeaturedLimit số sản phẩm nổi bật tối đa trả về
const FeaturedLimit = 6

// ProductService xử lý nghiệp vụ sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, common.ErrNotFound
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// ProductListFilter điều kiện lọc danh sách sản phẩm công khai
type ProductListFilter struct {
	Category   string
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	IsFeatured *bool
	IsActive   *bool
	Sort       string
	Page       int64
	Limit      int64
}

// buildFilter dựng filter MongoDB từ điều kiện lọc
func (f ProductListFilter) buildFilter() bson.M {
	filter := bson.M{}

	if f.Category != "" {
		filter["category"] = f.Category
	}

	if f.Search != "" {
		regex := bson.M{"$regex": f.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"name": regex},
			{"description": regex},
			{"category": regex},
		}
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		filter["price"] = price
	}

	if f.IsFeatured != nil {
		filter["isFeatured"] = *f.IsFeatured
	}

	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	return filter
}

// sortOption chuyển kiểu sắp xếp sang sort option MongoDB, mặc định mới nhất trước
func sortOption(sort string) bson.D {
	switch sort {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

// List danh sách sản phẩm có phân trang theo điều kiện lọc
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*basemodels.PaginateResult[catalogmodels.Product], error) {
	opts := options.Find().SetSort(sortOption(filter.Sort))
	return s.FindWithPagination(ctx, filter.buildFilter(), filter.Page, filter.Limit, opts)
}

// Featured danh sách sản phẩm nổi bật đang hoạt động, mới nhất trước
func (s *ProductService) Featured(ctx context.Context) ([]catalogmodels.Product, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeaturedLimit)
	return s.Find(ctx, bson.M{"isFeatured": true, "isActive": true}, opts)
}

// DecrementStock trừ tồn kho một sản phẩm bằng update atomic có điều kiện.
// Hai đơn hàng cùng tranh đơn vị cuối cùng thì tối đa một đơn trừ được.
// Tồn kho không đủ (hoặc sản phẩm đã mất) trả về ErrInsufficientStock.
func (s *ProductService) DecrementStock(ctx context.Context, productID primitive.ObjectID, quantity int) error {
	filter := bson.M{
		"_id":   productID,
		"stock": bson.M{"$gte": quantity},
	}
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"stock": -quantity},
	}

	// Guard không khớp (hết hàng hoặc sản phẩm đã mất) trả về ErrNotFound
	_, err := s.FindOneAndUpdate(ctx, filter, update, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrInsufficientStock
		}
		return err
	}
	return nil
}

// RestoreStock cộng trả tồn kho khi đơn hàng bị hủy
func (s *ProductService) RestoreStock(ctx context.Context, productID primitive.ObjectID, quantity int) error {
	update := &basesvc.UpdateData{
		Inc: map[string]interface{}{"stock": quantity},
	}
	_, err := s.FindOneAndUpdate(ctx, bson.M{"_id": productID}, update, nil)
	return err
}
