package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIndexTag(t *testing.T) {
	got := parseIndexTag("unique")
	assert.Len(t, got, 1)
	_, hasUnique := got[0]["unique"]
	assert.True(t, hasUnique)

	got = parseIndexTag("unique,sparse;ttl:1800")
	assert.Len(t, got, 2, "dấu chấm phẩy phải tách thành hai cấu hình index")
	_, hasSparse := got[0]["sparse"]
	assert.True(t, hasSparse)
	assert.Equal(t, "1800", got[1]["ttl"])

	got = parseIndexTag("compound:slug_status")
	assert.Equal(t, "slug_status", got[0]["compound"])
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, 1, parseOrder("single"), "không khai báo order thì mặc định tăng dần")
	assert.Equal(t, -1, parseOrder("single,order:-1"))
	assert.Equal(t, 1, parseOrder("single,order:1"))
}
