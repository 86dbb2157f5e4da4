package authsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"store_commerce/config"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/utility"
)

// newMockedAuthService đăng ký các collection mock vào registry toàn cục
// rồi dựng AuthService trên đó. Gọi bên trong mt.Run.
func newMockedAuthService(mt *mtest.T) *AuthService {
	global.ServerConfig = &config.Configuration{ResetTokenExpMin: 30}
	global.MongoDB_ColNames = global.CollectionName{
		Users:          "auth_users",
		PasswordResets: "auth_password_resets",
		Products:       "catalog_products",
		Categories:     "catalog_categories",
		Orders:         "order_orders",
		StoreConfigs:   "store_configs",
	}
	for _, name := range []string{"auth_users", "auth_password_resets", "order_orders"} {
		_, err := global.RegistryCollections.Register(name, mt.DB.Collection(name))
		assert.NoError(mt.T, err)
	}

	service, err := NewAuthService()
	if err != nil {
		mt.Fatalf("không tạo được AuthService: %v", err)
	}
	return service
}

func startedCommands(mt *mtest.T) []string {
	var names []string
	for _, evt := range mt.GetAllStartedEvents() {
		names = append(names, evt.CommandName)
	}
	return names
}

func TestForgotPassword_UnknownEmailCreatesNothing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("email không tồn tại", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.auth_users", mtest.FirstBatch))

		err := service.ForgotPassword(context.Background(), "khongtontai@example.com")
		assert.NoError(mt.T, err, "email lạ vẫn trả về thành công để tránh dò tài khoản")

		for _, name := range startedCommands(mt) {
			assert.NotEqual(mt.T, "insert", name, "không được tạo record reset cho email lạ")
			assert.NotEqual(mt.T, "delete", name)
		}
	})
}

func TestForgotPassword_InvalidatesOlderTokens(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("token cũ bị xóa trước khi tạo token mới", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		userID := primitive.NewObjectID()
		resetDoc := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: userID},
			{Key: "tokenHash", Value: "hash"},
			{Key: "expiresAt", Value: primitive.NewDateTimeFromTime(time.Now().Add(30 * time.Minute))},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.auth_users", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: userID},
				{Key: "email", Value: "khach@example.com"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch, resetDoc),
		)

		err := service.ForgotPassword(context.Background(), "khach@example.com")
		assert.NoError(mt.T, err)

		commands := startedCommands(mt)
		assert.Contains(mt.T, commands, "delete", "token cũ của user phải bị vô hiệu")
		assert.Contains(mt.T, commands, "insert", "token mới phải được ghi lại")
	})
}

func TestResetPassword_TokenLifecycle(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("token không tồn tại", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch))

		_, err := service.ResetPassword(context.Background(), "token-la", "MatKhauMoi@123")
		assert.True(mt.T, errors.Is(err, common.ErrResetTokenInvalid), "token lạ phải bị từ chối, nhận được: %v", err)
	})

	mt.Run("token đã dùng bị từ chối không ghi gì", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		userID := primitive.NewObjectID()
		token, tokenHash, err := utility.GenerateResetToken()
		assert.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: userID},
			{Key: "tokenHash", Value: tokenHash},
			{Key: "expiresAt", Value: primitive.NewDateTimeFromTime(time.Now().Add(30 * time.Minute))},
			{Key: "usedAt", Value: time.Now().UnixMilli()},
		}))

		_, err = service.ResetPassword(context.Background(), token, "MatKhauMoi@123")
		assert.True(mt.T, errors.Is(err, common.ErrResetTokenInvalid), "token một lần không dùng lại được, nhận được: %v", err)

		for _, name := range startedCommands(mt) {
			assert.NotEqual(mt.T, "update", name, "token đã dùng không được đổi mật khẩu")
		}
	})

	mt.Run("token hết hạn bị từ chối", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		token, tokenHash, err := utility.GenerateResetToken()
		assert.NoError(mt.T, err)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "userId", Value: primitive.NewObjectID()},
			{Key: "tokenHash", Value: tokenHash},
			{Key: "expiresAt", Value: primitive.NewDateTimeFromTime(time.Now().Add(-1 * time.Minute))},
		}))

		_, err = service.ResetPassword(context.Background(), token, "MatKhauMoi@123")
		assert.True(mt.T, errors.Is(err, common.ErrResetTokenInvalid), "token hết hạn phải bị từ chối, nhận được: %v", err)
	})

	mt.Run("token hợp lệ đổi mật khẩu và bị đánh dấu đã dùng", func(mt *mtest.T) {
		service := newMockedAuthService(mt)
		userID := primitive.NewObjectID()
		resetID := primitive.NewObjectID()
		token, tokenHash, err := utility.GenerateResetToken()
		assert.NoError(mt.T, err)

		userDoc := bson.D{
			{Key: "_id", Value: userID},
			{Key: "email", Value: "khach@example.com"},
			{Key: "isActive", Value: true},
		}
		resetDoc := bson.D{
			{Key: "_id", Value: resetID},
			{Key: "userId", Value: userID},
			{Key: "tokenHash", Value: tokenHash},
			{Key: "expiresAt", Value: primitive.NewDateTimeFromTime(time.Now().Add(30 * time.Minute))},
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch, resetDoc),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "test.auth_users", mtest.FirstBatch, userDoc),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateCursorResponse(0, "test.auth_password_resets", mtest.FirstBatch, resetDoc),
		)

		user, err := service.ResetPassword(context.Background(), token, "MatKhauMoi@123")
		assert.NoError(mt.T, err)
		assert.Equal(mt.T, userID, user.ID)

		updates := 0
		for _, name := range startedCommands(mt) {
			if name == "update" {
				updates++
			}
		}
		assert.Equal(mt.T, 2, updates, "phải có hai update: mật khẩu mới và đánh dấu token đã dùng")
	})
}
