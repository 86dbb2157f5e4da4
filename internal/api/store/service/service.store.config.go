// Package storesvc chứa business logic của domain store (cấu hình cửa hàng).
package storesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "store_commerce/internal/api/base/service"
	storemodels "store_commerce/internal/api/store/models"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// defaultStoreConfig giá trị mặc định khi collection còn trống
func defaultStoreConfig() storemodels.StoreConfig {
	return storemodels.StoreConfig{
		StoreName: "Mi Tienda",
		ShippingCosts: storemodels.ShippingCosts{
			Pickup:          0,
			CorreoArgentino: 0,
			MotoMensajeria:  0,
		},
	}
}

// StoreConfigService xử lý nghiệp vụ cấu hình cửa hàng.
// Collection chỉ chứa đúng một document, được tạo lười ở lần đọc đầu tiên.
type StoreConfigService struct {
	*basesvc.BaseServiceMongoImpl[storemodels.StoreConfig]
}

// NewStoreConfigService tạo mới StoreConfigService
func NewStoreConfigService() (*StoreConfigService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.StoreConfigs)
	if !exist {
		return nil, common.ErrNotFound
	}
	return &StoreConfigService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[storemodels.StoreConfig](collection),
	}, nil
}

// GetOrCreate trả về cấu hình cửa hàng, tạo với giá trị mặc định nếu chưa có
func (s *StoreConfigService) GetOrCreate(ctx context.Context) (storemodels.StoreConfig, error) {
	config, err := s.FindOne(ctx, bson.M{}, nil)
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return storemodels.StoreConfig{}, err
	}

	return s.InsertOne(ctx, defaultStoreConfig())
}

// Update cập nhật toàn bộ document cấu hình (admin gửi nguyên bản mới).
// Upsert trên filter rỗng: collection singleton, tạo document nếu chưa có.
func (s *StoreConfigService) Update(ctx context.Context, config storemodels.StoreConfig) (storemodels.StoreConfig, error) {
	set := bson.M{
		"storeName":            config.StoreName,
		"whatsappNumber":       config.WhatsappNumber,
		"bankDetails":          config.BankDetails,
		"shippingCosts":        config.ShippingCosts,
		"pickupInstructions":   config.PickupInstructions,
		"shippingInstructions": config.ShippingInstructions,
		"legalText":            config.LegalText,
		"marketingText":        config.MarketingText,
	}
	return s.Upsert(ctx, bson.M{}, set)
}

// ShippingCostFor trả về chi phí giao hàng cho một phương thức từ cấu hình hiện tại
func (s *StoreConfigService) ShippingCostFor(ctx context.Context, method string) (float64, error) {
	config, err := s.GetOrCreate(ctx)
	if err != nil {
		return 0, err
	}
	return config.ShippingCosts.ForMethod(method), nil
}
