// Package basehdl - Test copy dữ liệu từ input DTO sang model theo tên trường.
package basehdl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testModel struct {
	Name     string
	Price    float64
	Stock    int
	IsActive bool
	Internal string
}

type testInput struct {
	Name  string
	Price float64
	Stock int
	Extra string
}

func TestTransformInputToModel_CopiesMatchingFields(t *testing.T) {
	input := testInput{Name: "Conjunto", Price: 1500, Stock: 3, Extra: "bỏ qua"}
	model := testModel{}

	err := transformInputToModel(&input, &model)
	assert.NoError(t, err)
	assert.Equal(t, "Conjunto", model.Name)
	assert.Equal(t, 1500.0, model.Price)
	assert.Equal(t, 3, model.Stock)
	assert.Empty(t, model.Internal, "trường không có trong input phải giữ nguyên zero value")
}

func TestTransformInputToModel_SkipsIncompatibleTypes(t *testing.T) {
	type mismatchInput struct {
		Name  string
		Stock *int // con trỏ không gán được vào int, phải bị bỏ qua
	}

	stock := 5
	input := mismatchInput{Name: "Camisón", Stock: &stock}
	model := testModel{Stock: 1}

	err := transformInputToModel(&input, &model)
	assert.NoError(t, err)
	assert.Equal(t, "Camisón", model.Name)
	assert.Equal(t, 1, model.Stock, "kiểu không tương thích không được ghi đè model")
}

func TestTransformInputToModel_PreservesExistingValues(t *testing.T) {
	input := testInput{Name: "Bata"}
	model := testModel{Internal: "giữ nguyên", IsActive: true}

	err := transformInputToModel(&input, &model)
	assert.NoError(t, err)
	assert.Equal(t, "Bata", model.Name)
	assert.Equal(t, "giữ nguyên", model.Internal)
	assert.True(t, model.IsActive, "trường không xuất hiện trong input phải được giữ nguyên")
}
