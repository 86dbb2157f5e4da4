// Package authsvc chứa các service thuộc domain auth.
package authsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	authmodels "store_commerce/internal/api/auth/models"
	basemodels "store_commerce/internal/api/base/models"
	basesvc "store_commerce/internal/api/base/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// UserService là service quản lý người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.User]
	orderCollection *mongo.Collection // Dùng cho thống kê đơn hàng theo user
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get auth_users collection: %v", common.ErrNotFound)
	}
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get order_orders collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.User](collection),
		orderCollection:      orderCollection,
	}, nil
}

// UserListFilter bộ lọc danh sách người dùng cho trang quản trị
type UserListFilter struct {
	Search   string // Tìm trong email, firstName, lastName (regex, không phân biệt hoa thường)
	IsAdmin  *bool
	IsActive *bool
	Page     int64
	Limit    int64
}

// UserWithStats người dùng kèm thống kê đơn hàng (đơn cancelled không tính)
type UserWithStats struct {
	authmodels.User `bson:",inline"`
	TotalSpent      float64 `json:"totalSpent" bson:"totalSpent"`
	TotalOrders     int64   `json:"totalOrders" bson:"totalOrders"`
	LastOrderDate   int64   `json:"lastOrderDate,omitempty" bson:"lastOrderDate,omitempty"`
}

// ListWithStats trả về danh sách người dùng phân trang kèm thống kê đơn hàng
func (s *UserService) ListWithStats(ctx context.Context, f UserListFilter) (*basemodels.PaginateResult[UserWithStats], error) {
	filter := bson.M{}
	if f.Search != "" {
		regex := bson.M{"$regex": f.Search, "$options": "i"}
		filter["$or"] = []bson.M{
			{"email": regex},
			{"firstName": regex},
			{"lastName": regex},
		}
	}
	if f.IsAdmin != nil {
		filter["isAdmin"] = *f.IsAdmin
	}
	if f.IsActive != nil {
		filter["isActive"] = *f.IsActive
	}

	if f.Limit <= 0 {
		f.Limit = 20
	}
	page, err := s.FindWithPagination(ctx, filter, f.Page, f.Limit, nil)
	if err != nil {
		return nil, err
	}

	// Lấy thống kê đơn hàng cho các user trong trang hiện tại bằng aggregation
	userIDs := make([]primitive.ObjectID, 0, len(page.Items))
	for _, u := range page.Items {
		userIDs = append(userIDs, u.ID)
	}
	stats, err := s.orderStatsByUser(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	items := make([]UserWithStats, 0, len(page.Items))
	for _, u := range page.Items {
		item := UserWithStats{User: u}
		if st, ok := stats[u.ID]; ok {
			item.TotalSpent = st.TotalSpent
			item.TotalOrders = st.TotalOrders
			item.LastOrderDate = st.LastOrderDate
		}
		items = append(items, item)
	}

	return &basemodels.PaginateResult[UserWithStats]{
		Page:      page.Page,
		Limit:     page.Limit,
		ItemCount: page.ItemCount,
		Items:     items,
		Total:     page.Total,
		TotalPage: page.TotalPage,
	}, nil
}

type userOrderStats struct {
	UserID        primitive.ObjectID `bson:"_id"`
	TotalSpent    float64            `bson:"totalSpent"`
	TotalOrders   int64              `bson:"totalOrders"`
	LastOrderDate int64              `bson:"lastOrderDate"`
}

// orderStatsByUser gom thống kê đơn hàng theo user, bỏ qua đơn đã hủy
func (s *UserService) orderStatsByUser(ctx context.Context, userIDs []primitive.ObjectID) (map[primitive.ObjectID]userOrderStats, error) {
	result := make(map[primitive.ObjectID]userOrderStats, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"userId": bson.M{"$in": userIDs},
			"status": bson.M{"$ne": "cancelled"},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$userId",
			"totalSpent":    bson.M{"$sum": "$totalAmount"},
			"totalOrders":   bson.M{"$sum": 1},
			"lastOrderDate": bson.M{"$max": "$createdAt"},
		}}},
	}

	cursor, err := s.orderCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	var rows []userOrderStats
	if err = cursor.All(ctx, &rows); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	for _, row := range rows {
		result[row.UserID] = row
	}
	return result, nil
}

// Stats đếm tổng quan người dùng cho trang quản trị
func (s *UserService) Stats(ctx context.Context) (*authmodels.UserStats, error) {
	total, err := s.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	active, err := s.CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	admins, err := s.CountDocuments(ctx, bson.M{"isAdmin": true})
	if err != nil {
		return nil, err
	}
	return &authmodels.UserStats{
		Total:    total,
		Active:   active,
		Inactive: total - active,
		Admins:   admins,
	}, nil
}
