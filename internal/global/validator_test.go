package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type noXSSInput struct {
	Value string `validate:"no_xss"`
}

type passwordInput struct {
	Value string `validate:"strong_password"`
}

type shippingInput struct {
	Value string `validate:"shipping_method"`
}

type statusInput struct {
	Value string `validate:"order_status"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	valid := []string{
		"Conjunto de encaje negro",
		"Talle M, color rojo",
		"",
	}
	for _, v := range valid {
		assert.NoError(t, Validate.Struct(noXSSInput{Value: v}), "chuỗi an toàn %q không được bị chặn", v)
	}

	invalid := []string{
		"<script>alert(1)</script>",
		"javascript:alert(1)",
		"<img onerror=alert(1)>",
		"<IFRAME src=x>",
	}
	for _, v := range invalid {
		assert.Error(t, Validate.Struct(noXSSInput{Value: v}), "chuỗi nguy hiểm %q phải bị chặn", v)
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	assert.NoError(t, Validate.Struct(passwordInput{Value: "matkhau123"}))
	assert.Error(t, Validate.Struct(passwordInput{Value: "ngan1"}), "mật khẩu dưới 8 ký tự phải bị từ chối")
	assert.Error(t, Validate.Struct(passwordInput{Value: "chicochuthoi"}), "mật khẩu không có số phải bị từ chối")
	assert.Error(t, Validate.Struct(passwordInput{Value: "12345678"}), "mật khẩu không có chữ phải bị từ chối")
}

func TestValidateShippingMethod(t *testing.T) {
	InitValidator()

	for _, v := range []string{"pickup", "correo_argentino", "moto_mensajeria"} {
		assert.NoError(t, Validate.Struct(shippingInput{Value: v}), "phương thức %q phải hợp lệ", v)
	}
	assert.Error(t, Validate.Struct(shippingInput{Value: "drone"}))
	assert.Error(t, Validate.Struct(shippingInput{Value: ""}))
}

func TestValidateOrderStatus(t *testing.T) {
	InitValidator()

	for _, v := range []string{
		"pending_payment", "payment_confirmed", "preparing",
		"ready_for_pickup", "shipped", "delivered", "cancelled",
	} {
		assert.NoError(t, Validate.Struct(statusInput{Value: v}), "trạng thái %q phải hợp lệ", v)
	}
	assert.Error(t, Validate.Struct(statusInput{Value: "returned"}))
}
