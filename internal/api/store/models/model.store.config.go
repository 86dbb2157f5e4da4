// Package models - model cấu hình cửa hàng (singleton) thuộc domain store.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BankDetails thông tin tài khoản ngân hàng để khách chuyển khoản
type BankDetails struct {
	CBU           string `json:"cbu" bson:"cbu"`
	Alias         string `json:"alias" bson:"alias"`
	AccountHolder string `json:"accountHolder" bson:"accountHolder"`
	BankName      string `json:"bankName" bson:"bankName"`
}

// ShippingCosts chi phí giao hàng theo từng phương thức
type ShippingCosts struct {
	Pickup          float64 `json:"pickup" bson:"pickup"`
	CorreoArgentino float64 `json:"correo_argentino" bson:"correo_argentino"`
	MotoMensajeria  float64 `json:"moto_mensajeria" bson:"moto_mensajeria"`
}

// ForMethod trả về chi phí giao hàng cho một phương thức
func (s ShippingCosts) ForMethod(method string) float64 {
	switch method {
	case "pickup":
		return s.Pickup
	case "correo_argentino":
		return s.CorreoArgentino
	case "moto_mensajeria":
		return s.MotoMensajeria
	}
	return 0
}

// StoreConfig là cấu hình cửa hàng, chỉ có đúng một document trong collection.
// Được tạo lười với giá trị mặc định ở lần đọc đầu tiên.
type StoreConfig struct {
	ID                   primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StoreName            string             `json:"storeName" bson:"storeName"`
	WhatsappNumber       string             `json:"whatsappNumber" bson:"whatsappNumber"`
	BankDetails          BankDetails        `json:"bankDetails" bson:"bankDetails"`
	ShippingCosts        ShippingCosts      `json:"shippingCosts" bson:"shippingCosts"`
	PickupInstructions   string             `json:"pickupInstructions" bson:"pickupInstructions"`
	ShippingInstructions string             `json:"shippingInstructions" bson:"shippingInstructions"`
	LegalText            string             `json:"legalText,omitempty" bson:"legalText,omitempty"`
	MarketingText        string             `json:"marketingText,omitempty" bson:"marketingText,omitempty"`
	CreatedAt            int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt            int64              `json:"updatedAt" bson:"updatedAt"`
}
