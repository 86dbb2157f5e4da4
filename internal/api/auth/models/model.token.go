// Package models - claims JWT thuộc domain auth.
package models

import "github.com/dgrijalva/jwt-go"

// Loại token được mã hóa trong claims
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims chứa data được mã hóa trong JWT token.
// TokenType phân biệt access token (Authorization header) và refresh token (cookie).
type TokenClaims struct {
	UserID    string `json:"userId"`
	IsAdmin   bool   `json:"isAdmin"`
	TokenType string `json:"type"`
	jwt.StandardClaims
}

// TokenPair kết quả cấp token sau khi đăng nhập / refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"-"`
}
