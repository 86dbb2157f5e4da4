package catalogsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"store_commerce/config"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// newMockedProductService đăng ký collection mock vào registry toàn cục
// rồi dựng ProductService trên đó. Gọi bên trong mt.Run.
func newMockedProductService(mt *mtest.T) *ProductService {
	global.ServerConfig = &config.Configuration{}
	global.MongoDB_ColNames.Products = "catalog_products"
	_, err := global.RegistryCollections.Register("catalog_products", mt.DB.Collection("catalog_products"))
	assert.NoError(mt.T, err)

	service, err := NewProductService()
	if err != nil {
		mt.Fatalf("không tạo được ProductService: %v", err)
	}
	return service
}

func TestDecrementStock_GuardMiss(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("guard trượt trả về lỗi tồn kho", func(mt *mtest.T) {
		service := newMockedProductService(mt)

		// findAndModify không khớp filter stock >= qty: value null
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		err := service.DecrementStock(context.Background(), primitive.NewObjectID(), 3)
		assert.True(mt.T, errors.Is(err, common.ErrInsufficientStock),
			"guard trượt phải ánh xạ sang lỗi tồn kho, nhận được: %v", err)
	})

	mt.Run("guard khớp trừ kho thành công", func(mt *mtest.T) {
		service := newMockedProductService(mt)
		productID := primitive.NewObjectID()

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: productID},
			{Key: "name", Value: "Conjunto Rojo"},
			{Key: "stock", Value: 2},
			{Key: "isActive", Value: true},
		}}))

		err := service.DecrementStock(context.Background(), productID, 3)
		assert.NoError(mt.T, err)
	})
}
