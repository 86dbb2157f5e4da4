package authhdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	"store_commerce/internal/api/auth/dto"
	authmodels "store_commerce/internal/api/auth/models"
	authsvc "store_commerce/internal/api/auth/service"
	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/middleware"
	"store_commerce/internal/common"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserHandler xử lý các route quản trị người dùng
type UserHandler struct {
	*basehdl.BaseHandler[authmodels.User, dto.RegisterInput, dto.UserUpdateInput]
	userService *authsvc.UserService
}

// NewUserHandler tạo mới UserHandler
func NewUserHandler() (*UserHandler, error) {
	userService, err := authsvc.NewUserService()
	if err != nil {
		return nil, err
	}
	return &UserHandler{
		BaseHandler: basehdl.NewBaseHandler[authmodels.User, dto.RegisterInput, dto.UserUpdateInput](userService),
		userService: userService,
	}, nil
}

// parseBoolQuery đọc query bool dạng con trỏ, nil khi không gửi
func parseBoolQuery(c fiber.Ctx, name string) *bool {
	raw := c.Query(name, "")
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &val
}

// HandleList danh sách người dùng kèm thống kê đơn hàng (admin)
// Query params: search, isAdmin, isActive, page, limit (mặc định 20)
// @Router /users [get]
func (h *UserHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "20"), 10, 64)

		result, err := h.userService.ListWithStats(c.Context(), authsvc.UserListFilter{
			Search:   c.Query("search", ""),
			IsAdmin:  parseBoolQuery(c, "isAdmin"),
			IsActive: parseBoolQuery(c, "isActive"),
			Page:     page,
			Limit:    limit,
		})
		basehdl.Respond(c, result, err)
		return nil
	})
}

// HandleStats thống kê tổng quan người dùng (admin)
// @Router /users/stats [get]
func (h *UserHandler) HandleStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		stats, err := h.userService.Stats(c.Context())
		basehdl.Respond(c, stats, err)
		return nil
	})
}

// HandleUpdate admin cập nhật role/trạng thái của người dùng
// @Router /users/:id [put]
func (h *UserHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input dto.UserUpdateInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.FirstName != "" {
			set["firstName"] = input.FirstName
		}
		if input.LastName != "" {
			set["lastName"] = input.LastName
		}
		if input.IsAdmin != nil {
			set["isAdmin"] = *input.IsAdmin
		}
		if input.IsActive != nil {
			set["isActive"] = *input.IsActive
		}
		if len(set) == 0 {
			basehdl.Respond(c, nil, common.NewError(
				common.ErrCodeValidationInput,
				"Không có trường nào để cập nhật",
				common.StatusBadRequest,
				nil,
			))
			return nil
		}

		user, err := h.userService.UpdateById(c.Context(), utility.String2ObjectID(id), set)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		// Quyền và trạng thái nằm trong cache của middleware, phải vô hiệu ngay
		middleware.GetAuthManager().InvalidateUser(id)
		logger.LogAction("user_admin_update", c, map[string]interface{}{
			"resource_type": "user",
			"resource_id":   id,
		})
		basehdl.Respond(c, user, nil)
		return nil
	})
}

// HandleDelete admin xóa người dùng
// @Router /users/:id [delete]
func (h *UserHandler) HandleDelete(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		if err := h.userService.DeleteById(c.Context(), utility.String2ObjectID(id)); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		middleware.GetAuthManager().InvalidateUser(id)
		logger.LogAction("user_admin_delete", c, map[string]interface{}{
			"resource_type": "user",
			"resource_id":   id,
		})
		basehdl.Respond(c, nil, nil)
		return nil
	})
}
