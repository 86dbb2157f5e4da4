package storesvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"store_commerce/config"
	storemodels "store_commerce/internal/api/store/models"
	"store_commerce/internal/global"
)

// newMockedStoreConfigService đăng ký collection mock vào registry toàn cục
// rồi dựng StoreConfigService trên đó. Gọi bên trong mt.Run.
func newMockedStoreConfigService(mt *mtest.T) *StoreConfigService {
	global.ServerConfig = &config.Configuration{}
	global.MongoDB_ColNames.StoreConfigs = "store_configs"
	_, err := global.RegistryCollections.Register("store_configs", mt.DB.Collection("store_configs"))
	assert.NoError(mt.T, err)

	service, err := NewStoreConfigService()
	if err != nil {
		mt.Fatalf("không tạo được StoreConfigService: %v", err)
	}
	return service
}

// Update dùng upsert trên filter rỗng: collection singleton được tạo ngay
// trong lần cập nhật đầu tiên, không cần đọc trước.
func TestStoreConfigUpdate_UpsertsSingleton(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("tạo mới khi collection trống", func(mt *mtest.T) {
		service := newMockedStoreConfigService(mt)

		configDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "storeName", Value: "Tienda Nueva"},
			{Key: "shippingCosts", Value: bson.D{
				{Key: "pickup", Value: 0.0},
				{Key: "correo_argentino", Value: 2500.0},
				{Key: "moto_mensajeria", Value: 1800.0},
			}},
		}
		mt.AddMockResponses(
			// Kiểm tra tồn tại: collection trống
			mtest.CreateCursorResponse(0, "test.store_configs", mtest.FirstBatch),
			// findAndModify với upsert trả về document sau khi ghi
			mtest.CreateSuccessResponse(bson.E{Key: "value", Value: configDoc}),
		)

		updated, err := service.Update(context.Background(), storemodels.StoreConfig{
			StoreName: "Tienda Nueva",
			ShippingCosts: storemodels.ShippingCosts{
				CorreoArgentino: 2500,
				MotoMensajeria:  1800,
			},
		})
		assert.NoError(mt.T, err)
		assert.Equal(mt.T, "Tienda Nueva", updated.StoreName)
		assert.Equal(mt.T, 2500.0, updated.ShippingCosts.CorreoArgentino)

		var sawFindAndModify bool
		for _, evt := range mt.GetAllStartedEvents() {
			if evt.CommandName == "findAndModify" {
				sawFindAndModify = true
				upsert, ok := evt.Command.Lookup("upsert").BooleanOK()
				assert.True(mt.T, ok && upsert, "lệnh ghi phải bật upsert")
			}
		}
		assert.True(mt.T, sawFindAndModify, "Update phải đi qua findAndModify upsert")
	})
}
