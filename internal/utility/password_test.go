package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("matkhau123")
	assert.NoError(t, err, "băm mật khẩu không được lỗi")
	assert.NotEqual(t, "matkhau123", hash, "hash không được trùng với mật khẩu thô")

	assert.True(t, ComparePassword(hash, "matkhau123"), "mật khẩu đúng phải so khớp được")
	assert.False(t, ComparePassword(hash, "matkhau124"), "mật khẩu sai không được so khớp")
}

func TestGenerateResetToken(t *testing.T) {
	token, tokenHash, err := GenerateResetToken()
	assert.NoError(t, err, "sinh token không được lỗi")
	assert.Len(t, token, 64, "token thô phải là 32 bytes hex (64 ký tự)")
	assert.Len(t, tokenHash, 64, "hash sha256 phải là 64 ký tự hex")
	assert.NotEqual(t, token, tokenHash, "hash không được trùng với token thô")

	// Hash lại token thô phải cho đúng hash đã lưu
	assert.Equal(t, tokenHash, HashResetToken(token))
}

func TestGenerateResetToken_Unique(t *testing.T) {
	a, _, err := GenerateResetToken()
	assert.NoError(t, err)
	b, _, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.NotEqual(t, a, b, "hai lần sinh token phải khác nhau")
}
