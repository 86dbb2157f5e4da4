// Package dto - cấu trúc request thuộc domain store.
package dto

// BankDetailsInput thông tin ngân hàng trong request cập nhật cấu hình
type BankDetailsInput struct {
	CBU           string `json:"cbu" validate:"omitempty,no_xss"`
	Alias         string `json:"alias" validate:"omitempty,no_xss"`
	AccountHolder string `json:"accountHolder" validate:"omitempty,no_xss"`
	BankName      string `json:"bankName" validate:"omitempty,no_xss"`
}

// ShippingCostsInput chi phí giao hàng trong request cập nhật cấu hình
type ShippingCostsInput struct {
	Pickup          float64 `json:"pickup" validate:"gte=0"`
	CorreoArgentino float64 `json:"correo_argentino" validate:"gte=0"`
	MotoMensajeria  float64 `json:"moto_mensajeria" validate:"gte=0"`
}

// StoreConfigUpdateInput dữ liệu admin cập nhật toàn bộ cấu hình cửa hàng
type StoreConfigUpdateInput struct {
	StoreName            string             `json:"storeName" validate:"required,no_xss"`
	WhatsappNumber       string             `json:"whatsappNumber" validate:"omitempty,no_xss"`
	BankDetails          BankDetailsInput   `json:"bankDetails"`
	ShippingCosts        ShippingCostsInput `json:"shippingCosts"`
	PickupInstructions   string             `json:"pickupInstructions" validate:"omitempty,no_xss"`
	ShippingInstructions string             `json:"shippingInstructions" validate:"omitempty,no_xss"`
	LegalText            string             `json:"legalText" validate:"omitempty,no_xss"`
	MarketingText        string             `json:"marketingText" validate:"omitempty,no_xss"`
}
