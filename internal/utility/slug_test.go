package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Lencería Fina", "lenceria-fina"},
		{"Camisón & Batas", "camison-batas"},
		{"  Ropa   Interior  ", "ropa-interior"},
		{"Ñandú Été", "nandu-ete"},
		{"accesorios", "accesorios"},
		{"100% Algodón", "100-algodon"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Slugify(tc.name), "slug của %q không khớp", tc.name)
	}
}

func TestSlugify_Stable(t *testing.T) {
	// Slug hóa một chuỗi đã là slug phải trả về chính nó
	assert.Equal(t, "lenceria-fina", Slugify("lenceria-fina"))
}
