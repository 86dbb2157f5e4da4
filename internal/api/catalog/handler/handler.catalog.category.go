package cataloghdl

import (
	"strconv"

	"github.com/gofiber/fiber/v3"

	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/catalog/dto"
	catalogmodels "store_commerce/internal/api/catalog/models"
	catalogsvc "store_commerce/internal/api/catalog/service"
	"store_commerce/internal/common"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CategoryHandler xử lý các route danh mục
type CategoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &CategoryHandler{
		BaseHandler:     basehdl.NewBaseHandler[catalogmodels.Category, dto.CategoryCreateInput, dto.CategoryUpdateInput](categoryService),
		categoryService: categoryService,
	}, nil
}

// HandleList danh sách danh mục công khai.
// Query param includeInactive=true (admin UI) trả cả danh mục đã ẩn.
// @Router /categories [get]
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		includeInactive, _ := strconv.ParseBool(c.Query("includeInactive", "false"))
		categories, err := h.categoryService.List(c.Context(), includeInactive)
		basehdl.Respond(c, categories, err)
		return nil
	})
}

// HandleListLight danh sách rút gọn (name, slug) cho menu
// @Router /categories/list [get]
func (h *CategoryHandler) HandleListLight(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		items, err := h.categoryService.ListLight(c.Context())
		basehdl.Respond(c, items, err)
		return nil
	})
}

// HandleGetBySlug tìm danh mục theo slug
// @Router /categories/slug/:slug [get]
func (h *CategoryHandler) HandleGetBySlug(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		slug := c.Params("slug")
		if slug == "" {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}
		category, err := h.categoryService.GetBySlug(c.Context(), slug)
		basehdl.Respond(c, category, err)
		return nil
	})
}

// HandleCreate admin tạo danh mục thủ công, slug sinh từ tên
// @Router /categories [post]
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		category, err := h.categoryService.InsertOne(c.Context(), catalogmodels.Category{
			Name:        input.Name,
			Slug:        utility.Slugify(input.Name),
			Description: input.Description,
			IsActive:    true,
		})
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("category_create", c, map[string]interface{}{
			"resource_type": "category",
			"resource_id":   category.ID.Hex(),
		})
		basehdl.Respond(c, category, nil)
		return nil
	})
}

// HandleUpdate admin cập nhật danh mục. Đổi tên sinh lại slug.
// @Router /categories/:id [put]
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input dto.CategoryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		set := map[string]interface{}{}
		if input.Name != "" {
			set["name"] = input.Name
			set["slug"] = utility.Slugify(input.Name)
		}
		if input.Description != nil {
			set["description"] = *input.Description
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

		category, err := h.categoryService.UpdateById(c.Context(), utility.String2ObjectID(id), set)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("category_update", c, map[string]interface{}{
			"resource_type": "category",
			"resource_id":   id,
		})
		basehdl.Respond(c, category, nil)
		return nil
	})
}

// HandleSync admin chạy đồng bộ danh mục từ nhãn sản phẩm
// @Router /categories/sync [post]
func (h *CategoryHandler) HandleSync(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		result, err := h.categoryService.Sync(c.Context())
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("category_sync", c, map[string]interface{}{
			"labels":  result.Labels,
			"created": result.Created,
		})
		basehdl.Respond(c, result, nil)
		return nil
	})
}
