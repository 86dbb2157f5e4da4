package authsvc

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"store_commerce/internal/api/auth/dto"
	authmodels "store_commerce/internal/api/auth/models"
	basesvc "store_commerce/internal/api/base/service"
	"store_commerce/internal/api/notification"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

// AuthService xử lý vòng đời xác thực: đăng ký, đăng nhập, refresh, đặt lại mật khẩu
type AuthService struct {
	userService  *UserService
	resetService *basesvc.BaseServiceMongoImpl[authmodels.PasswordReset]
	mailer       *notification.Mailer
}

// NewAuthService tạo mới AuthService
func NewAuthService() (*AuthService, error) {
	userService, err := NewUserService()
	if err != nil {
		return nil, err
	}

	resetCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.PasswordResets)
	if !exist {
		return nil, common.ErrNotFound
	}

	return &AuthService{
		userService:  userService,
		resetService: basesvc.NewBaseServiceMongo[authmodels.PasswordReset](resetCollection),
		mailer:       notification.NewMailer(),
	}, nil
}

// UserService trả về service người dùng bên trong (dùng bởi handler admin)
func (s *AuthService) UserService() *UserService {
	return s.userService
}

// Register đăng ký tài khoản mới.
// Email trùng trả về lỗi 409. Tài khoản mới luôn là thành viên thường, đang hoạt động.
func (s *AuthService) Register(ctx context.Context, input *dto.RegisterInput) (*authmodels.User, *authmodels.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userService.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, common.ErrEmailExists
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return nil, nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user, err := s.userService.InsertOne(ctx, authmodels.User{
		Email:     email,
		Password:  hash,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		IsAdmin:   false,
		IsActive:  true,
	})
	if err != nil {
		return nil, nil, err
	}

	tokens, err := IssueTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// Login xác thực email + mật khẩu.
// Email không tồn tại và sai mật khẩu trả về cùng một lỗi 401 để tránh dò tài khoản.
func (s *AuthService) Login(ctx context.Context, input *dto.LoginInput) (*authmodels.User, *authmodels.TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	if !utility.ComparePassword(user.Password, input.Password) {
		return nil, nil, common.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, nil, common.ErrAccountInactive
	}

	tokens, err := IssueTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}
	return &user, tokens, nil
}

// Refresh cấp access token mới từ refresh token.
// User bị xóa hoặc bị vô hiệu hóa sau khi cấp refresh token sẽ không refresh được.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*authmodels.User, string, error) {
	claims, err := ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, "", err
	}

	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, "", common.ErrTokenInvalid
	}

	user, err := s.userService.FindOneById(ctx, userID)
	if err != nil {
		return nil, "", common.ErrTokenInvalid
	}
	if !user.IsActive {
		return nil, "", common.ErrAccountInactive
	}

	accessToken, err := signToken(&user, authmodels.TokenTypeAccess,
		global.ServerConfig.JwtAccessSecret,
		time.Duration(global.ServerConfig.JwtAccessExpiryMin)*time.Minute)
	if err != nil {
		return nil, "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo access token", common.StatusInternalServerError, err)
	}
	return &user, accessToken, nil
}

// ForgotPassword tạo yêu cầu đặt lại mật khẩu và gửi email chứa token gốc.
// Email không tồn tại vẫn trả về thành công để tránh dò tài khoản, không tạo record.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"email": email,
		}).Info("Yêu cầu đặt lại mật khẩu cho email không tồn tại")
		return nil
	}

	token, tokenHash, err := utility.GenerateResetToken()
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể tạo token đặt lại mật khẩu", common.StatusInternalServerError, err)
	}

	// Vô hiệu các token cũ của user: chỉ token mới nhất còn dùng được
	if _, err := s.resetService.DeleteMany(ctx, bson.M{"userId": user.ID}); err != nil {
		return err
	}

	expiry := time.Duration(global.ServerConfig.ResetTokenExpMin) * time.Minute
	_, err = s.resetService.InsertOne(ctx, authmodels.PasswordReset{
		UserID:    user.ID,
		TokenHash: tokenHash,
		ExpiresAt: time.Now().Add(expiry),
	})
	if err != nil {
		return err
	}

	s.mailer.SendPasswordReset(user.Email, user.FullName(), token)
	return nil
}

// ResetPassword đặt mật khẩu mới bằng token từ email.
// Token chỉ dùng được đúng một lần và phải còn hạn.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) (*authmodels.User, error) {
	tokenHash := utility.HashResetToken(token)

	reset, err := s.resetService.FindOne(ctx, bson.M{"tokenHash": tokenHash}, nil)
	if err != nil {
		return nil, common.ErrResetTokenInvalid
	}
	if reset.IsUsed() || reset.IsExpired() {
		return nil, common.ErrResetTokenInvalid
	}

	hash, err := utility.HashPassword(newPassword)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user, err := s.userService.UpdateById(ctx, reset.UserID, bson.M{"password": hash})
	if err != nil {
		return nil, err
	}

	// Đánh dấu token đã dùng để không dùng lại được
	_, err = s.resetService.UpdateById(ctx, reset.ID, bson.M{"usedAt": time.Now().UnixMilli()})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// ChangePassword đổi mật khẩu khi đã đăng nhập, yêu cầu mật khẩu hiện tại đúng
func (s *AuthService) ChangePassword(ctx context.Context, userID primitive.ObjectID, currentPassword, newPassword string) error {
	user, err := s.userService.FindOneById(ctx, userID)
	if err != nil {
		return common.ErrUserNotFound
	}

	if !utility.ComparePassword(user.Password, currentPassword) {
		return common.ErrPasswordMismatch
	}

	hash, err := utility.HashPassword(newPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.userService.UpdateById(ctx, userID, bson.M{"password": hash})
	return err
}
