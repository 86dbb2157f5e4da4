// Package basesvc - Test chuyển đổi dữ liệu update sang UpdateData.
package basesvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUpdateData_PassThrough(t *testing.T) {
	original := &UpdateData{
		Set: map[string]interface{}{"name": "Conjunto"},
		Inc: map[string]interface{}{"stock": -1},
	}

	got, err := ToUpdateData(original)
	assert.NoError(t, err)
	assert.Same(t, original, got, "con trỏ UpdateData phải được trả về nguyên vẹn")
}

func TestToUpdateData_ValueCopy(t *testing.T) {
	original := UpdateData{
		Set: map[string]interface{}{"name": "Conjunto"},
	}

	got, err := ToUpdateData(original)
	assert.NoError(t, err)
	assert.Equal(t, original.Set, got.Set)
}

func TestToUpdateData_StructWrappedInSet(t *testing.T) {
	type input struct {
		Name  string  `bson:"name"`
		Price float64 `bson:"price"`
	}

	got, err := ToUpdateData(input{Name: "Camisón", Price: 2200})
	assert.NoError(t, err)
	assert.NotNil(t, got.Set, "struct thường phải được wrap trong $set")
	assert.Equal(t, "Camisón", got.Set["name"])
	assert.Equal(t, 2200.0, got.Set["price"])
	assert.Nil(t, got.Unset)
	assert.Nil(t, got.Inc)
}
