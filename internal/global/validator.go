package global

import (
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// InitValidator khởi tạo và đăng ký các custom validator
func InitValidator() {
	Validate = validator.New()

	_ = Validate.RegisterValidation("no_xss", validateNoXSS)
	_ = Validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = Validate.RegisterValidation("shipping_method", validateShippingMethod)
	_ = Validate.RegisterValidation("order_status", validateOrderStatus)
}

// validateNoXSS kiểm tra XSS trong các trường văn bản tự do
func validateNoXSS(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	dangerousPatterns := []string{
		"<script",
		"javascript:",
		"onerror=",
		"onload=",
		"onclick=",
		"eval(",
		"document.cookie",
		"document.write",
		"<iframe",
		"<object",
		"<embed",
	}

	value = strings.ToLower(value)
	for _, pattern := range dangerousPatterns {
		if strings.Contains(value, pattern) {
			return false
		}
	}
	return true
}

// validateStrongPassword kiểm tra mật khẩu tối thiểu 8 ký tự, có chữ và số
func validateStrongPassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	if len(value) < 8 {
		return false
	}

	var hasLetter, hasDigit bool
	for _, ch := range value {
		switch {
		case unicode.IsLetter(ch):
			hasLetter = true
		case unicode.IsDigit(ch):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// validateShippingMethod kiểm tra phương thức giao hàng hợp lệ
func validateShippingMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pickup", "correo_argentino", "moto_mensajeria":
		return true
	}
	return false
}

// validateOrderStatus kiểm tra trạng thái đơn hàng hợp lệ
func validateOrderStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending_payment", "payment_confirmed", "preparing",
		"ready_for_pickup", "shipped", "delivered", "cancelled":
		return true
	}
	return false
}
