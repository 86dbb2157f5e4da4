// Package models - Test bảng chuyển trạng thái và tính tổng tiền đơn hàng.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{StatusPendingPayment, StatusPaymentConfirmed, true},
		{StatusPendingPayment, StatusCancelled, true},
		{StatusPendingPayment, StatusShipped, false},
		{StatusPendingPayment, StatusDelivered, false},
		{StatusPaymentConfirmed, StatusPreparing, true},
		{StatusPaymentConfirmed, StatusCancelled, true},
		{StatusPaymentConfirmed, StatusPendingPayment, false},
		{StatusPreparing, StatusReadyForPickup, true},
		{StatusPreparing, StatusShipped, true},
		{StatusPreparing, StatusCancelled, true},
		{StatusPreparing, StatusDelivered, false},
		{StatusReadyForPickup, StatusDelivered, true},
		{StatusReadyForPickup, StatusShipped, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusPreparing, false},
	}

	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		assert.Equal(t, tc.allowed, got, "chuyển từ %s sang %s phải là %v", tc.from, tc.to, tc.allowed)
	}
}

func TestCanTransition_TerminalStates(t *testing.T) {
	all := []string{
		StatusPendingPayment, StatusPaymentConfirmed, StatusPreparing,
		StatusReadyForPickup, StatusShipped, StatusDelivered, StatusCancelled,
	}

	// delivered và cancelled là trạng thái cuối, không được chuyển đi đâu nữa
	for _, to := range all {
		assert.False(t, CanTransition(StatusDelivered, to), "delivered không được chuyển sang %s", to)
		assert.False(t, CanTransition(StatusCancelled, to), "cancelled không được chuyển sang %s", to)
	}
}

func TestCanTransition_UnknownStatus(t *testing.T) {
	assert.False(t, CanTransition("unknown", StatusCancelled), "trạng thái không tồn tại không được phép chuyển")
	assert.False(t, CanTransition("", StatusPendingPayment), "trạng thái rỗng không được phép chuyển")
}

func TestOrderSubtotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Name: "Conjunto encaje", Price: 1500.50, Quantity: 2},
			{Name: "Camisón satén", Price: 2200, Quantity: 1},
		},
	}
	assert.Equal(t, 5201.0, order.Subtotal(), "Subtotal phải bằng tổng price*quantity của các dòng")
}

func TestOrderSubtotal_Empty(t *testing.T) {
	order := Order{}
	assert.Equal(t, 0.0, order.Subtotal(), "đơn hàng không có dòng nào thì subtotal bằng 0")
}

func TestOrderTotalInvariant(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{Price: 1000, Quantity: 3},
		},
		ShippingCost: 500,
	}
	order.TotalAmount = order.Subtotal() + order.ShippingCost
	assert.Equal(t, 3500.0, order.TotalAmount, "TotalAmount phải bằng subtotal cộng phí giao hàng")
}
