// Package models - Test chi phí giao hàng theo phương thức.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShippingCostsForMethod(t *testing.T) {
	costs := ShippingCosts{
		Pickup:          0,
		CorreoArgentino: 2500,
		MotoMensajeria:  1800,
	}

	assert.Equal(t, 0.0, costs.ForMethod("pickup"), "nhận tại cửa hàng không tính phí")
	assert.Equal(t, 2500.0, costs.ForMethod("correo_argentino"), "phí correo_argentino không khớp")
	assert.Equal(t, 1800.0, costs.ForMethod("moto_mensajeria"), "phí moto_mensajeria không khớp")
}

func TestShippingCostsForMethod_Unknown(t *testing.T) {
	costs := ShippingCosts{CorreoArgentino: 2500}
	assert.Equal(t, 0.0, costs.ForMethod("drone"), "phương thức không tồn tại phải trả về 0")
	assert.Equal(t, 0.0, costs.ForMethod(""), "phương thức rỗng phải trả về 0")
}
