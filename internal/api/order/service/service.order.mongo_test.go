package ordersvc

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"store_commerce/config"
	authmodels "store_commerce/internal/api/auth/models"
	"store_commerce/internal/api/order/dto"
	ordermodels "store_commerce/internal/api/order/models"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// newMockedOrderService đăng ký các collection mock vào registry toàn cục
// rồi dựng OrderService trên đó. Gọi bên trong mt.Run.
func newMockedOrderService(mt *mtest.T) *OrderService {
	global.ServerConfig = &config.Configuration{}
	global.MongoDB_ColNames = global.CollectionName{
		Users:          "auth_users",
		PasswordResets: "auth_password_resets",
		Products:       "catalog_products",
		Categories:     "catalog_categories",
		Orders:         "order_orders",
		StoreConfigs:   "store_configs",
	}
	for _, name := range []string{"catalog_products", "order_orders", "store_configs"} {
		_, err := global.RegistryCollections.Register(name, mt.DB.Collection(name))
		assert.NoError(mt.T, err)
	}

	service, err := NewOrderService()
	if err != nil {
		mt.Fatalf("không tạo được OrderService: %v", err)
	}
	return service
}

func commandNames(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}
	return names
}

func productDoc(id primitive.ObjectID, stock int, isActive bool) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Conjunto Rojo"},
		{Key: "price", Value: 1500.0},
		{Key: "stock", Value: stock},
		{Key: "isActive", Value: isActive},
		{Key: "images", Value: bson.A{"/uploads/conjunto.jpg"}},
	}
}

func TestOrderCreate_InsufficientStockRejectsWithoutWriting(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("tồn kho không đủ", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		productID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.catalog_products", mtest.FirstBatch,
			productDoc(productID, 2, true)))

		user := &authmodels.User{ID: primitive.NewObjectID(), Email: "khach@example.com"}
		input := &dto.OrderCreateInput{
			Items:          []dto.OrderItemInput{{ProductID: productID.Hex(), Price: 1500, Quantity: 5}},
			ShippingMethod: ordermodels.ShippingPickup,
		}

		order, err := service.Create(context.Background(), user, input)
		assert.Nil(mt.T, order)
		assert.True(mt.T, errors.Is(err, common.ErrInsufficientStock), "thiếu tồn kho phải trả về đúng sentinel, nhận được: %v", err)

		for _, name := range commandNames(mt) {
			assert.NotEqual(mt.T, "insert", name, "đơn bị từ chối không được ghi gì vào database")
			assert.NotEqual(mt.T, "findAndModify", name, "đơn bị từ chối không được trừ tồn kho")
		}
	})

	mt.Run("sản phẩm ngừng kinh doanh", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		productID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.catalog_products", mtest.FirstBatch,
			productDoc(productID, 10, false)))

		user := &authmodels.User{ID: primitive.NewObjectID(), Email: "khach@example.com"}
		input := &dto.OrderCreateInput{
			Items:          []dto.OrderItemInput{{ProductID: productID.Hex(), Price: 1500, Quantity: 1}},
			ShippingMethod: ordermodels.ShippingPickup,
		}

		_, err := service.Create(context.Background(), user, input)
		assert.True(mt.T, errors.Is(err, common.ErrProductInactive), "sản phẩm inactive phải bị từ chối, nhận được: %v", err)
	})

	mt.Run("sản phẩm không tồn tại", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.catalog_products", mtest.FirstBatch))

		user := &authmodels.User{ID: primitive.NewObjectID(), Email: "khach@example.com"}
		input := &dto.OrderCreateInput{
			Items:          []dto.OrderItemInput{{ProductID: primitive.NewObjectID().Hex(), Price: 100, Quantity: 1}},
			ShippingMethod: ordermodels.ShippingPickup,
		}

		_, err := service.Create(context.Background(), user, input)
		assert.True(mt.T, errors.Is(err, common.ErrNotFound), "sản phẩm không tồn tại phải trả về not found, nhận được: %v", err)
	})
}

func TestOrderUpdateStatus_InvalidTransition(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("delivered là trạng thái cuối", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		orderID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.order_orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: orderID},
			{Key: "userId", Value: primitive.NewObjectID()},
			{Key: "status", Value: ordermodels.StatusDelivered},
			{Key: "items", Value: bson.A{}},
		}))

		_, err := service.UpdateStatus(context.Background(), orderID, &dto.OrderStatusUpdateInput{
			Status: ordermodels.StatusPreparing,
		})
		assert.True(mt.T, errors.Is(err, common.ErrInvalidTransition), "chuyển từ trạng thái cuối phải trả về đúng sentinel, nhận được: %v", err)

		for _, name := range commandNames(mt) {
			assert.NotEqual(mt.T, "update", name, "chuyển trạng thái không hợp lệ không được ghi gì")
		}
	})
}

func TestOrderAttachPaymentProof(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("không phải chủ đơn bị từ chối", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		orderID := primitive.NewObjectID()
		ownerID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.order_orders", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: orderID},
			{Key: "userId", Value: ownerID},
			{Key: "status", Value: ordermodels.StatusPendingPayment},
			{Key: "items", Value: bson.A{}},
		}))

		_, err := service.AttachPaymentProof(context.Background(), orderID, primitive.NewObjectID(), "/uploads/proof.jpg")
		assert.Error(mt.T, err)

		var appErr *common.Error
		assert.True(mt.T, errors.As(err, &appErr))
		assert.Equal(mt.T, common.StatusForbidden, appErr.StatusCode, "người khác đính kèm phải bị 403")

		for _, name := range commandNames(mt) {
			assert.NotEqual(mt.T, "update", name, "request bị từ chối không được ghi gì")
		}
	})

	mt.Run("chủ đơn đính kèm thành công", func(mt *mtest.T) {
		service := newMockedOrderService(mt)
		orderID := primitive.NewObjectID()
		ownerID := primitive.NewObjectID()
		orderBefore := bson.D{
			{Key: "_id", Value: orderID},
			{Key: "userId", Value: ownerID},
			{Key: "status", Value: ordermodels.StatusPendingPayment},
			{Key: "items", Value: bson.A{}},
		}
		orderAfter := bson.D{
			{Key: "_id", Value: orderID},
			{Key: "userId", Value: ownerID},
			{Key: "status", Value: ordermodels.StatusPendingPayment},
			{Key: "items", Value: bson.A{}},
			{Key: "paymentProof", Value: "/uploads/proof.jpg"},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.order_orders", mtest.FirstBatch, orderBefore),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "test.order_orders", mtest.FirstBatch, orderAfter),
		)

		order, err := service.AttachPaymentProof(context.Background(), orderID, ownerID, "/uploads/proof.jpg")
		assert.NoError(mt.T, err)
		assert.Equal(mt.T, "/uploads/proof.jpg", order.PaymentProof)
	})
}
