package middleware

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authmodels "store_commerce/internal/api/auth/models"
	basesvc "store_commerce/internal/api/base/service"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// AuthManager quản lý xác thực người dùng.
// Cache user lookup để không phải query DB cho mỗi request.
type AuthManager struct {
	UserCRUD *basesvc.BaseServiceMongoImpl[authmodels.User]
	Cache    *utility.Cache
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		col, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
		if !exist {
			panic("auth_users collection is not registered")
		}
		authManagerInstance = &AuthManager{
			UserCRUD: basesvc.NewBaseServiceMongo[authmodels.User](col),
			Cache:    utility.NewCache(5*time.Minute, 10*time.Minute),
		}
	})
	return authManagerInstance
}

// getUser lấy user từ cache hoặc database theo ID (hex string)
func (am *AuthManager) getUser(userID string) (authmodels.User, error) {
	cacheKey := "auth_user:" + userID
	if cached, found := am.Cache.Get(cacheKey); found {
		return cached.(authmodels.User), nil
	}

	user, err := am.UserCRUD.FindOne(context.TODO(), bson.M{"_id": utility.String2ObjectID(userID)}, nil)
	if err != nil {
		return authmodels.User{}, err
	}

	am.Cache.Set(cacheKey, user)
	return user, nil
}

// InvalidateUser xóa user khỏi cache (gọi sau khi update user, đổi mật khẩu, khóa tài khoản)
func (am *AuthManager) InvalidateUser(userID string) {
	am.Cache.Delete("auth_user:" + userID)
}

// ParseAccessToken parse và validate access token, trả về claims
func ParseAccessToken(tokenStr string) (*authmodels.TokenClaims, error) {
	claims := &authmodels.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(global.ServerConfig.JwtAccessSecret), nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid || claims.TokenType != authmodels.TokenTypeAccess {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// RequireAuth middleware xác thực access token cho Fiber.
// Token hợp lệ: lưu user_id, is_admin và user vào context rồi cho request đi tiếp.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		claims, err := ParseAccessToken(parts[1])
		if err != nil {
			HandleErrorResponse(c, err)
			return nil
		}

		// Load user để chắc chắn tài khoản còn tồn tại và còn hoạt động.
		// Token cũ của user đã bị vô hiệu hóa không được phép đi tiếp.
		user, err := GetAuthManager().getUser(claims.UserID)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": claims.UserID,
			}).Warn("Token user not found")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		if !user.IsActive {
			HandleErrorResponse(c, common.ErrAccountInactive)
			return nil
		}

		// Lưu thông tin user vào context
		c.Locals("user_id", user.ID.Hex())
		c.Locals("is_admin", user.IsAdmin)
		c.Locals("user", user)

		return c.Next()
	}
}

// RequireAdmin middleware yêu cầu quyền quản trị.
// Phải đứng sau RequireAuth trong middleware chain.
func RequireAdmin() fiber.Handler {
	return func(c fiber.Ctx) error {
		isAdmin, ok := c.Locals("is_admin").(bool)
		if !ok || !isAdmin {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":    c.Path(),
				"user_id": c.Locals("user_id"),
			}).Warn("Non-admin user attempted admin route")
			HandleErrorResponse(c, common.ErrAdminRequired)
			return nil
		}
		return c.Next()
	}
}
