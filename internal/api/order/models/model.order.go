// Package models - model đơn hàng thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái đơn hàng
const (
	StatusPendingPayment   = "pending_payment"
	StatusPaymentConfirmed = "payment_confirmed"
	StatusPreparing        = "preparing"
	StatusReadyForPickup   = "ready_for_pickup"
	StatusShipped          = "shipped"
	StatusDelivered        = "delivered"
	StatusCancelled        = "cancelled"
)

// Phương thức giao hàng
const (
	ShippingPickup          = "pickup"
	ShippingCorreoArgentino = "correo_argentino"
	ShippingMotoMensajeria  = "moto_mensajeria"
)

// statusTransitions là bảng chuyển trạng thái hợp lệ.
// delivered và cancelled là trạng thái cuối, không chuyển tiếp được.
var statusTransitions = map[string][]string{
	StatusPendingPayment:   {StatusPaymentConfirmed, StatusCancelled},
	StatusPaymentConfirmed: {StatusPreparing, StatusCancelled},
	StatusPreparing:        {StatusReadyForPickup, StatusShipped, StatusCancelled},
	StatusReadyForPickup:   {StatusDelivered, StatusCancelled},
	StatusShipped:          {StatusDelivered, StatusCancelled},
	StatusDelivered:        {},
	StatusCancelled:        {},
}

// CanTransition kiểm tra việc chuyển từ trạng thái from sang to có hợp lệ không
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// OrderItem là snapshot một dòng sản phẩm tại thời điểm đặt hàng.
// Giá và tên được chụp lại để đơn hàng không thay đổi khi sản phẩm đổi giá.
type OrderItem struct {
	ProductID primitive.ObjectID `json:"productId" bson:"productId"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
}

// ShippingAddress địa chỉ giao hàng, bắt buộc trừ khi nhận tại cửa hàng
type ShippingAddress struct {
	Street     string `json:"street" bson:"street"`
	City       string `json:"city" bson:"city"`
	Province   string `json:"province,omitempty" bson:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Notes      string `json:"notes,omitempty" bson:"notes,omitempty"`
}

// Order định nghĩa mô hình đơn hàng.
// Bất biến: TotalAmount == tổng(items.price*quantity) + ShippingCost,
// được tính lại mỗi khi ShippingCost thay đổi.
type Order struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID          primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	Items           []OrderItem        `json:"items" bson:"items"`
	ShippingMethod  string             `json:"shippingMethod" bson:"shippingMethod"`
	ShippingAddress *ShippingAddress   `json:"shippingAddress,omitempty" bson:"shippingAddress,omitempty"`
	ShippingCost    float64            `json:"shippingCost" bson:"shippingCost"`
	TotalAmount     float64            `json:"totalAmount" bson:"totalAmount"`
	Status          string             `json:"status" bson:"status" index:"single"`
	PaymentProof    string             `json:"paymentProof,omitempty" bson:"paymentProof,omitempty"`
	AdminNote       string             `json:"adminNote,omitempty" bson:"adminNote,omitempty"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}

// Subtotal tính tổng tiền hàng từ các dòng snapshot
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.Items {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}
