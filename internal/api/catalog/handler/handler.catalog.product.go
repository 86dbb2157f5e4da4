// Package cataloghdl chứa các Fiber handler thuộc domain catalog.
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

// ProductHandler xử lý các route sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, dto.ProductCreateInput, dto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}
	return &ProductHandler{
		BaseHandler:    basehdl.NewBaseHandler[catalogmodels.Product, dto.ProductCreateInput, dto.ProductUpdateInput](productService),
		productService: productService,
	}, nil
}

// parseFloatQuery đọc query số thực dạng con trỏ, nil khi không gửi hoặc không hợp lệ
func parseFloatQuery(c fiber.Ctx, name string) *float64 {
	raw := c.Query(name, "")
	if raw == "" {
		return nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &val
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

// HandlePublicList danh sách sản phẩm công khai, chỉ sản phẩm đang hoạt động.
// Query params: category, search, minPrice, maxPrice, isFeatured, sort, page, limit.
// @Router /products [get]
func (h *ProductHandler) HandlePublicList(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "12"), 10, 64)

		// Khách chỉ thấy sản phẩm đang hoạt động
		active := true
		result, err := h.productService.List(c.Context(), catalogsvc.ProductListFilter{
			Category:   c.Query("category", ""),
			Search:     c.Query("search", ""),
			MinPrice:   parseFloatQuery(c, "minPrice"),
			MaxPrice:   parseFloatQuery(c, "maxPrice"),
			IsFeatured: parseBoolQuery(c, "isFeatured"),
			IsActive:   &active,
			Sort:       c.Query("sort", catalogsvc.SortNewest),
			Page:       page,
			Limit:      limit,
		})
		basehdl.Respond(c, result, err)
		return nil
	})
}

// HandleAdminList danh sách sản phẩm cho admin, gồm cả sản phẩm ngừng kinh doanh
// @Router /products/admin/all [get]
func (h *ProductHandler) HandleAdminList(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		page, _ := strconv.ParseInt(c.Query("page", "1"), 10, 64)
		limit, _ := strconv.ParseInt(c.Query("limit", "12"), 10, 64)

		result, err := h.productService.List(c.Context(), catalogsvc.ProductListFilter{
			Category:   c.Query("category", ""),
			Search:     c.Query("search", ""),
			MinPrice:   parseFloatQuery(c, "minPrice"),
			MaxPrice:   parseFloatQuery(c, "maxPrice"),
			IsFeatured: parseBoolQuery(c, "isFeatured"),
			IsActive:   parseBoolQuery(c, "isActive"),
			Sort:       c.Query("sort", catalogsvc.SortNewest),
			Page:       page,
			Limit:      limit,
		})
		basehdl.Respond(c, result, err)
		return nil
	})
}

// HandleFeatured danh sách sản phẩm nổi bật
// @Router /products/featured [get]
func (h *ProductHandler) HandleFeatured(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		products, err := h.productService.Featured(c.Context())
		basehdl.Respond(c, products, err)
		return nil
	})
}

// HandleUpdate admin cập nhật sản phẩm.
// Chỉ các trường có gửi lên mới được cập nhật, các flag bool nhận cả giá trị false.
// @Router /products/:id [put]
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		id := c.Params("id")
		if !primitive.IsValidObjectID(id) {
			basehdl.Respond(c, nil, common.ErrInvalidFormat)
			return nil
		}

		var input dto.ProductUpdateInput
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
		}
		if input.Description != nil {
			set["description"] = *input.Description
		}
		if input.Price != nil {
			set["price"] = *input.Price
		}
		if input.Images != nil {
			set["images"] = input.Images
		}
		if input.Category != "" {
			set["category"] = input.Category
		}
		if input.Stock != nil {
			set["stock"] = *input.Stock
		}
		if input.IsActive != nil {
			set["isActive"] = *input.IsActive
		}
		if input.IsFeatured != nil {
			set["isFeatured"] = *input.IsFeatured
		}
		if input.IsOnSale != nil {
			set["isOnSale"] = *input.IsOnSale
		}
		if input.Specifications != nil {
			set["specifications"] = *input.Specifications
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

		product, err := h.productService.UpdateById(c.Context(), utility.String2ObjectID(id), set)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("product_update", c, map[string]interface{}{
			"resource_type": "product",
			"resource_id":   id,
		})
		basehdl.Respond(c, product, nil)
		return nil
	})
}
