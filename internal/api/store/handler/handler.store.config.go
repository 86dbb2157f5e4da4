// Package storehdl chứa các Fiber handler thuộc domain store.
package storehdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/store/dto"
	storemodels "store_commerce/internal/api/store/models"
	storesvc "store_commerce/internal/api/store/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
)

// StoreConfigHandler xử lý các route cấu hình cửa hàng
type StoreConfigHandler struct {
	configService *storesvc.StoreConfigService
}

// NewStoreConfigHandler tạo mới StoreConfigHandler
func NewStoreConfigHandler() (*StoreConfigHandler, error) {
	configService, err := storesvc.NewStoreConfigService()
	if err != nil {
		return nil, err
	}
	return &StoreConfigHandler{configService: configService}, nil
}

// HandleGet trả về cấu hình cửa hàng, tạo mặc định nếu chưa có
// @Router /store-config [get]
func (h *StoreConfigHandler) HandleGet(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		config, err := h.configService.GetOrCreate(c.Context())
		basehdl.Respond(c, config, err)
		return nil
	})
}

// HandleUpdate admin cập nhật toàn bộ cấu hình cửa hàng
// @Router /store-config [put]
func (h *StoreConfigHandler) HandleUpdate(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.StoreConfigUpdateInput
		if err := c.Bind().Body(&input); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err))
			return nil
		}
		if err := global.Validate.Struct(&input); err != nil {
			basehdl.Respond(c, nil, common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err))
			return nil
		}

		config, err := h.configService.Update(c.Context(), storemodels.StoreConfig{
			StoreName:      input.StoreName,
			WhatsappNumber: input.WhatsappNumber,
			BankDetails: storemodels.BankDetails{
				CBU:           input.BankDetails.CBU,
				Alias:         input.BankDetails.Alias,
				AccountHolder: input.BankDetails.AccountHolder,
				BankName:      input.BankDetails.BankName,
			},
			ShippingCosts: storemodels.ShippingCosts{
				Pickup:          input.ShippingCosts.Pickup,
				CorreoArgentino: input.ShippingCosts.CorreoArgentino,
				MotoMensajeria:  input.ShippingCosts.MotoMensajeria,
			},
			PickupInstructions:   input.PickupInstructions,
			ShippingInstructions: input.ShippingInstructions,
			LegalText:            input.LegalText,
			MarketingText:        input.MarketingText,
		})
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		logger.LogAction("store_config_update", c, map[string]interface{}{
			"resource_type": "store_config",
			"resource_id":   config.ID.Hex(),
		})
		basehdl.Respond(c, config, nil)
		return nil
	})
}
