// Package ordersvc chứa business logic của domain order.
package ordersvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	authmodels "store_commerce/internal/api/auth/models"
	basemodels "store_commerce/internal/api/base/models"
	basesvc "store_commerce/internal/api/base/service"
	catalogmodels "store_commerce/internal/api/catalog/models"
	catalogsvc "store_commerce/internal/api/catalog/service"
	"store_commerce/internal/api/notification"
	"store_commerce/internal/api/order/dto"
	ordermodels "store_commerce/internal/api/order/models"
	storesvc "store_commerce/internal/api/store/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// OrderService xử lý nghiệp vụ đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
	productService *catalogsvc.ProductService
	configService  *storesvc.StoreConfigService
	mailer         *notification.Mailer
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, common.ErrNotFound
	}

	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}

	configService, err := storesvc.NewStoreConfigService()
	if err != nil {
		return nil, err
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
		productService:       productService,
		configService:        configService,
		mailer:               notification.NewMailer(),
	}, nil
}

// Create tạo đơn hàng mới cho user.
//
// Các bước:
//  1. Validate từng dòng: sản phẩm tồn tại, đang hoạt động, đủ tồn kho.
//     Một dòng lỗi thì cả đơn bị từ chối, chưa ghi gì vào database.
//  2. Chụp snapshot các dòng (giá từ client, tên và ảnh từ sản phẩm).
//  3. Tính totalAmount = tổng dòng + phí giao hàng theo cấu hình cửa hàng.
//  4. Ghi đơn với trạng thái pending_payment.
//  5. Trừ tồn kho từng dòng bằng update atomic có guard. Dòng nào trượt guard
//     (đơn khác tranh mất hàng giữa chừng) thì các dòng đã trừ được cộng trả,
//     đơn chuyển cancelled kèm ghi chú, trả về lỗi hết hàng.
//  6. Gửi email xác nhận cho khách và thông báo cho admin (best-effort).
func (s *OrderService) Create(ctx context.Context, user *authmodels.User, input *dto.OrderCreateInput) (*ordermodels.Order, error) {
	if input.ShippingMethod != ordermodels.ShippingPickup && input.ShippingAddress == nil {
		return nil, common.NewError(
			common.ErrCodeValidationInput,
			"Địa chỉ giao hàng là bắt buộc trừ khi nhận tại cửa hàng",
			common.StatusBadRequest,
			nil,
		)
	}

	// Bước 1 + 2: nạp toàn bộ sản phẩm của đơn bằng một truy vấn,
	// rồi validate và chụp snapshot từng dòng
	productIDs := make([]primitive.ObjectID, 0, len(input.Items))
	for _, line := range input.Items {
		productIDs = append(productIDs, utility.String2ObjectID(line.ProductID))
	}
	products, err := s.productService.FindManyByIds(ctx, productIDs)
	if err != nil {
		return nil, err
	}
	productByID := make(map[primitive.ObjectID]catalogmodels.Product, len(products))
	for _, product := range products {
		productByID[product.ID] = product
	}

	items := make([]ordermodels.OrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		product, found := productByID[utility.String2ObjectID(line.ProductID)]
		if !found {
			return nil, common.ErrNotFound
		}
		if !product.IsActive {
			return nil, common.ErrProductInactive
		}
		if product.Stock < line.Quantity {
			return nil, common.ErrInsufficientStock
		}

		image := ""
		if len(product.Images) > 0 {
			image = product.Images[0]
		}
		items = append(items, ordermodels.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     line.Price,
			Quantity:  line.Quantity,
			Image:     image,
		})
	}

	// Bước 3: phí giao hàng từ cấu hình cửa hàng
	shippingCost, err := s.configService.ShippingCostFor(ctx, input.ShippingMethod)
	if err != nil {
		return nil, err
	}

	order := ordermodels.Order{
		UserID:         user.ID,
		Items:          items,
		ShippingMethod: input.ShippingMethod,
		ShippingCost:   shippingCost,
		Status:         ordermodels.StatusPendingPayment,
	}
	if input.ShippingAddress != nil {
		order.ShippingAddress = &ordermodels.ShippingAddress{
			Street:     input.ShippingAddress.Street,
			City:       input.ShippingAddress.City,
			Province:   input.ShippingAddress.Province,
			PostalCode: input.ShippingAddress.PostalCode,
			Notes:      input.ShippingAddress.Notes,
		}
	}
	order.TotalAmount = order.Subtotal() + shippingCost

	// Bước 4: ghi đơn
	created, err := s.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}

	// Bước 5: trừ tồn kho atomic từng dòng
	if err := s.decrementStockForOrder(ctx, &created); err != nil {
		return nil, err
	}

	// Bước 6: email best-effort
	s.mailer.SendOrderConfirmation(user.Email, user.FullName(), &created)
	s.mailer.SendAdminNewOrder(&created, user.Email)

	return &created, nil
}

// decrementStockForOrder trừ tồn kho cho từng dòng của đơn đã ghi.
// Một dòng trượt guard: cộng trả các dòng đã trừ, hủy đơn, trả về ErrInsufficientStock.
func (s *OrderService) decrementStockForOrder(ctx context.Context, order *ordermodels.Order) error {
	for i, item := range order.Items {
		err := s.productService.DecrementStock(ctx, item.ProductID, item.Quantity)
		if err == nil {
			continue
		}

		// Cộng trả các dòng đã trừ trước đó
		for j := 0; j < i; j++ {
			restored := order.Items[j]
			if restoreErr := s.productService.RestoreStock(ctx, restored.ProductID, restored.Quantity); restoreErr != nil {
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"order_id":   order.ID.Hex(),
					"product_id": restored.ProductID.Hex(),
				}).WithError(restoreErr).Error("Cộng trả tồn kho thất bại khi hủy đơn")
			}
		}

		note := fmt.Sprintf("Tự động hủy: sản phẩm %s không đủ tồn kho tại thời điểm trừ kho", item.Name)
		if _, updateErr := s.UpdateById(ctx, order.ID, bson.M{
			"status":    ordermodels.StatusCancelled,
			"adminNote": note,
		}); updateErr != nil {
			logger.GetErrorLogger().WithFields(logrus.Fields{
				"order_id": order.ID.Hex(),
			}).WithError(updateErr).Error("Không thể chuyển đơn sang cancelled sau khi trừ kho thất bại")
		}
		order.Status = ordermodels.StatusCancelled
		order.AdminNote = note

		return err
	}
	return nil
}

// MyOrders danh sách đơn hàng của một user, mới nhất trước
func (s *OrderService) MyOrders(ctx context.Context, userID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"userId": userID}, page, limit, opts)
}

// GetForUser lấy một đơn hàng, chỉ chủ đơn hoặc admin được xem
func (s *OrderService) GetForUser(ctx context.Context, orderID, userID primitive.ObjectID, isAdmin bool) (ordermodels.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return ordermodels.Order{}, err
	}
	if !isAdmin && order.UserID != userID {
		return ordermodels.Order{}, common.NewError(common.ErrCodeAuthRole, common.MsgForbidden, common.StatusForbidden, nil)
	}
	return order, nil
}

// AttachPaymentProof khách đính kèm bằng chứng chuyển khoản vào đơn của mình.
// Chỉ chủ đơn được đính kèm, admin không đính kèm hộ được.
func (s *OrderService) AttachPaymentProof(ctx context.Context, orderID, userID primitive.ObjectID, proofURL string) (ordermodels.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return ordermodels.Order{}, err
	}
	if order.UserID != userID {
		return ordermodels.Order{}, common.NewError(common.ErrCodeAuthRole, common.MsgForbidden, common.StatusForbidden, nil)
	}
	return s.UpdateById(ctx, orderID, bson.M{"paymentProof": proofURL})
}

// AdminList danh sách tất cả đơn hàng cho admin, lọc theo trạng thái nếu có
func (s *OrderService) AdminList(ctx context.Context, status string, page, limit int64) (*basemodels.PaginateResult[ordermodels.Order], error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, filter, page, limit, opts)
}

// UpdateStatus admin chuyển trạng thái đơn hàng theo bảng chuyển hợp lệ.
// ShippingCost gửi kèm sẽ tính lại totalAmount từ các dòng snapshot đã lưu.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, input *dto.OrderStatusUpdateInput) (ordermodels.Order, error) {
	order, err := s.FindOneById(ctx, orderID)
	if err != nil {
		return ordermodels.Order{}, err
	}

	if !ordermodels.CanTransition(order.Status, input.Status) {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"order_id": orderID.Hex(),
			"from":     order.Status,
			"to":       input.Status,
		}).Warn("Chuyển trạng thái đơn hàng không hợp lệ")
		return ordermodels.Order{}, common.ErrInvalidTransition
	}

	set := bson.M{"status": input.Status}
	if input.AdminNote != "" {
		set["adminNote"] = input.AdminNote
	}
	if input.ShippingCost != nil {
		set["shippingCost"] = *input.ShippingCost
		set["totalAmount"] = order.Subtotal() + *input.ShippingCost
	}

	return s.UpdateById(ctx, orderID, set)
}
