// Package orderhdl chứa các Fiber handler thuộc domain order.
package orderhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	authmodels "store_commerce/internal/api/auth/models"
	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/order/dto"
	ordersvc "store_commerce/internal/api/order/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các route đơn hàng
type OrderHandler struct {
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, err
	}
	return &OrderHandler{orderService: orderService}, nil
}

// parseAndValidate parse body và validate input bằng validator toàn cục
func parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// HandleCreate tạo đơn hàng mới cho user đang đăng nhập
// @Router /orders [post]
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		user, ok := c.Locals("user").(authmodels.User)
		if !ok {
			basehdl.Respond(c, nil, common.ErrTokenInvalid)
			return nil
		}

		var input dto.OrderCreateInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		order, err := h.orderService.Create(c.Context(), &user, &input)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("order_create", c, map[string]interface{}{
			"resource_type": "order",
			"resource_id":   order.ID.Hex(),
			"total_amount":  order.TotalAmount,
		})
		basehdl.Respond(c, order, nil)
		return nil
	})
}

// HandleMyOrders danh sách đơn hàng của user đang đăng nhập
// @Router /orders/my-orders [get]
func (h *OrderHandler) HandleMyOrders(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		userID, _ := c.Locals("user_id").(string)
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "12"), 10, 64)

		result, err := h.orderService.MyOrders(c.Context(), utility.String2ObjectID(userID), page, limit)
		basehdl.Respond(c, result, err)
		return nil
	})
}

// HandleGet xem một đơn hàng, chỉ chủ đơn hoặc admin
// @Router /orders/:id [get]
func (h *OrderHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		userID, _ := c.Locals("user_id").(string)
		isAdmin, _ := c.Locals("is_admin").(bool)

		order, err := h.orderService.GetForUser(c.Context(), utility.String2ObjectID(id), utility.String2ObjectID(userID), isAdmin)
		basehdl.Respond(c, order, err)
		return nil
	})
}

// HandlePaymentProof khách đính kèm bằng chứng chuyển khoản vào đơn của mình
// @Router /orders/:id/payment-proof [post]
func (h *OrderHandler) HandlePaymentProof(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input dto.PaymentProofInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		userID, _ := c.Locals("user_id").(string)
		order, err := h.orderService.AttachPaymentProof(c.Context(), utility.String2ObjectID(id), utility.String2ObjectID(userID), input.ProofURL)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("order_payment_proof", c, map[string]interface{}{
			"resource_type": "order",
			"resource_id":   id,
		})
		basehdl.Respond(c, order, nil)
		return nil
	})
}

// HandleAdminList danh sách tất cả đơn hàng (admin), lọc theo status nếu có
// @Router /orders/admin/all [get]
func (h *OrderHandler) HandleAdminList(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "12"), 10, 64)

		result, err := h.orderService.AdminList(c.Context(), c.Query("status", ""), page, limit)
		basehdl.Respond(c, result, err)
		return nil
	})
}

// HandleUpdateStatus admin chuyển trạng thái đơn hàng
// @Router /orders/:id/status [patch]
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input dto.OrderStatusUpdateInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		order, err := h.orderService.UpdateStatus(c.Context(), utility.String2ObjectID(id), &input)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("order_status_update", c, map[string]interface{}{
			"resource_type": "order",
			"resource_id":   id,
			"status":        input.Status,
		})
		basehdl.Respond(c, order, nil)
		return nil
	})
}
