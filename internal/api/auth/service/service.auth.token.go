package authsvc

import (
	"time"

	"github.com/dgrijalva/jwt-go"

	authmodels "store_commerce/internal/api/auth/models"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
)

// signToken ký một JWT token HS256 cho user
func signToken(user *authmodels.User, tokenType string, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := authmodels.TokenClaims{
		UserID:    user.ID.Hex(),
		IsAdmin:   user.IsAdmin,
		TokenType: tokenType,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// IssueTokenPair cấp cặp access + refresh token cho user
func IssueTokenPair(user *authmodels.User) (*authmodels.TokenPair, error) {
	cfg := global.ServerConfig

	accessToken, err := signToken(user, authmodels.TokenTypeAccess,
		cfg.JwtAccessSecret, time.Duration(cfg.JwtAccessExpiryMin)*time.Minute)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo access token", common.StatusInternalServerError, err)
	}

	refreshToken, err := signToken(user, authmodels.TokenTypeRefresh,
		cfg.JwtRefreshSecret, time.Duration(cfg.JwtRefreshExpiryHr)*time.Hour)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể tạo refresh token", common.StatusInternalServerError, err)
	}

	return &authmodels.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// ParseRefreshToken parse và validate refresh token từ cookie
func ParseRefreshToken(tokenStr string) (*authmodels.TokenClaims, error) {
	claims := &authmodels.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtRefreshSecret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.TokenType != authmodels.TokenTypeRefresh {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
