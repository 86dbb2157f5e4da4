// Package models - model yêu cầu đặt lại mật khẩu thuộc domain auth.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PasswordReset lưu một yêu cầu đặt lại mật khẩu.
// TokenHash là sha256 của token gốc, token gốc chỉ gửi qua email.
// ExpiresAt dùng TTL index để Mongo tự xóa các yêu cầu hết hạn.
// UsedAt khác 0 nghĩa là token đã được dùng (one-time use).
type PasswordReset struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"single"`
	TokenHash string             `json:"-" bson:"tokenHash" index:"unique"`
	ExpiresAt time.Time          `json:"expiresAt" bson:"expiresAt" index:"ttl:0"`
	UsedAt    int64              `json:"usedAt,omitempty" bson:"usedAt,omitempty"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// IsExpired kiểm tra yêu cầu đã hết hạn chưa
func (p *PasswordReset) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}

// IsUsed kiểm tra token đã được dùng chưa
func (p *PasswordReset) IsUsed() bool {
	return p.UsedAt != 0
}
