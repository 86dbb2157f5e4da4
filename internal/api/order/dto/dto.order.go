// Package dto - các cấu trúc request thuộc domain order.
package dto

// OrderItemInput một dòng sản phẩm trong request tạo đơn hàng.
// Giá do client gửi lên được chụp vào snapshot, tên và ảnh lấy từ sản phẩm.
type OrderItemInput struct {
	ProductID string  `json:"productId" validate:"required,len=24,hexadecimal"`
	Price     float64 `json:"price" validate:"required,gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

// ShippingAddressInput địa chỉ giao hàng trong request tạo đơn hàng
type ShippingAddressInput struct {
	Street     string `json:"street" validate:"required,no_xss"`
	City       string `json:"city" validate:"required,no_xss"`
	Province   string `json:"province" validate:"omitempty,no_xss"`
	PostalCode string `json:"postalCode" validate:"omitempty,no_xss"`
	Notes      string `json:"notes" validate:"omitempty,no_xss"`
}

// OrderCreateInput dữ liệu tạo đơn hàng.
// ShippingAddress bắt buộc trừ khi phương thức là pickup (kiểm tra ở service).
type OrderCreateInput struct {
	Items           []OrderItemInput      `json:"items" validate:"required,min=1,dive"`
	ShippingMethod  string                `json:"shippingMethod" validate:"required,shipping_method"`
	ShippingAddress *ShippingAddressInput `json:"shippingAddress" validate:"omitempty"`
}

// PaymentProofInput dữ liệu khách đính kèm bằng chứng chuyển khoản.
// ProofURL thường là URL ảnh trả về từ endpoint upload.
type PaymentProofInput struct {
	ProofURL string `json:"proofUrl" validate:"required,no_xss,max=2048"`
}

// OrderStatusUpdateInput dữ liệu admin cập nhật trạng thái đơn hàng.
// ShippingCost gửi kèm sẽ tính lại totalAmount từ các dòng snapshot.
type OrderStatusUpdateInput struct {
	Status       string   `json:"status" validate:"required,order_status"`
	AdminNote    string   `json:"adminNote" validate:"omitempty,no_xss"`
	ShippingCost *float64 `json:"shippingCost" validate:"omitempty,gte=0"`
}
