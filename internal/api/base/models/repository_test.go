package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	cases := []struct {
		page, limit         int64
		wantPage, wantLimit int64
	}{
		{1, 12, 1, 12},
		{0, 0, DefaultPage, DefaultLimit},
		{-5, -1, DefaultPage, DefaultLimit},
		{3, 50, 3, 50},
		{2, 1000, 2, MaxLimit},
	}

	for _, tc := range cases {
		page, limit := NormalizePagination(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, "page chuẩn hóa từ (%d, %d) không khớp", tc.page, tc.limit)
		assert.Equal(t, tc.wantLimit, limit, "limit chuẩn hóa từ (%d, %d) không khớp", tc.page, tc.limit)
	}
}
