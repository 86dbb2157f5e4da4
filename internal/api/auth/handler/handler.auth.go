// Package authhdl chứa các Fiber handler thuộc domain auth.
package authhdl

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"store_commerce/internal/api/auth/dto"
	authmodels "store_commerce/internal/api/auth/models"
	authsvc "store_commerce/internal/api/auth/service"
	basehdl "store_commerce/internal/api/base/handler"
	"store_commerce/internal/api/middleware"
	"store_commerce/internal/common"
	"store_commerce/internal/global"
	"store_commerce/internal/logger"
	"store_commerce/internal/utility"
)

const refreshCookieName = "refreshToken"

// AuthHandler xử lý các route xác thực
type AuthHandler struct {
	authService *authsvc.AuthService
}

// NewAuthHandler tạo mới AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	authService, err := authsvc.NewAuthService()
	if err != nil {
		return nil, err
	}
	return &AuthHandler{authService: authService}, nil
}

// setRefreshCookie ghi refresh token vào http-only cookie.
// SameSite Strict để cookie không bị gửi từ site khác, Secure khi chạy production.
func setRefreshCookie(c fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   global.ServerConfig.JwtRefreshExpiryHr * 3600,
		HTTPOnly: true,
		Secure:   global.ServerConfig.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// clearRefreshCookie xóa refresh cookie khi logout
func clearRefreshCookie(c fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   global.ServerConfig.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// parseAndValidate parse body và validate input bằng validator toàn cục
func parseAndValidate(c fiber.Ctx, input interface{}) error {
	if err := c.Bind().Body(input); err != nil {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Dữ liệu gửi lên không đúng định dạng JSON. Chi tiết: %v", err),
			common.StatusBadRequest,
			err,
		)
	}
	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// HandleRegister đăng ký tài khoản mới
// @Router /auth/register [post]
func (h *AuthHandler) HandleRegister(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.RegisterInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		user, tokens, err := h.authService.Register(c.Context(), &input)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		setRefreshCookie(c, tokens.RefreshToken)
		logger.LogAction("user_register", c, map[string]interface{}{
			"resource_type": "user",
			"resource_id":   user.ID.Hex(),
			"email":         user.Email,
		})
		basehdl.Respond(c, fiber.Map{
			"user":        user,
			"accessToken": tokens.AccessToken,
		}, nil)
		return nil
	})
}

// HandleLogin đăng nhập bằng email và mật khẩu
// @Router /auth/login [post]
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.LoginInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		user, tokens, err := h.authService.Login(c.Context(), &input)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		setRefreshCookie(c, tokens.RefreshToken)
		logger.LogAction("user_login", c, map[string]interface{}{
			"resource_type": "user",
			"resource_id":   user.ID.Hex(),
		})
		basehdl.Respond(c, fiber.Map{
			"user":        user,
			"accessToken": tokens.AccessToken,
		}, nil)
		return nil
	})
}

// HandleRefresh cấp access token mới từ refresh cookie
// @Router /auth/refresh [post]
func (h *AuthHandler) HandleRefresh(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		refreshToken := c.Cookies(refreshCookieName)
		if refreshToken == "" {
			basehdl.Respond(c, nil, common.ErrTokenMissing)
			return nil
		}

		user, accessToken, err := h.authService.Refresh(c.Context(), refreshToken)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		basehdl.Respond(c, fiber.Map{
			"user":        user,
			"accessToken": accessToken,
		}, nil)
		return nil
	})
}

// HandleLogout xóa refresh cookie
// @Router /auth/logout [post]
func (h *AuthHandler) HandleLogout(c fiber.Ctx) error {
	clearRefreshCookie(c)
	basehdl.Respond(c, fiber.Map{"loggedOut": true}, nil)
	return nil
}

// HandleMe trả về thông tin người dùng hiện tại (đã qua RequireAuth)
// @Router /auth/me [get]
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	user, ok := c.Locals("user").(authmodels.User)
	if !ok {
		basehdl.Respond(c, nil, common.ErrTokenInvalid)
		return nil
	}
	basehdl.Respond(c, user, nil)
	return nil
}

// HandleForgotPassword gửi email đặt lại mật khẩu.
// Luôn trả về thành công, kể cả khi email không tồn tại.
// @Router /auth/forgot-password [post]
func (h *AuthHandler) HandleForgotPassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.ForgotPasswordInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		if err := h.authService.ForgotPassword(c.Context(), input.Email); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		basehdl.Respond(c, fiber.Map{
			"message": "Nếu email tồn tại, link đặt lại mật khẩu đã được gửi",
		}, nil)
		return nil
	})
}

// HandleResetPassword đặt mật khẩu mới bằng token từ email
// @Router /auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.ResetPasswordInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		user, err := h.authService.ResetPassword(c.Context(), input.Token, input.NewPassword)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		// Token cũ của phiên đang đăng nhập không còn đáng tin sau khi đổi mật khẩu
		middleware.GetAuthManager().InvalidateUser(user.ID.Hex())
		basehdl.Respond(c, fiber.Map{"reset": true}, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu khi đã đăng nhập (đã qua RequireAuth)
// @Router /auth/change-password [post]
func (h *AuthHandler) HandleChangePassword(c fiber.Ctx) error {
	return basehdl.SafeHandlerFunc(c, func() error {
		var input dto.ChangePasswordInput
		if err := parseAndValidate(c, &input); err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		userID, _ := c.Locals("user_id").(string)
		err := h.authService.ChangePassword(c.Context(), utility.String2ObjectID(userID), input.CurrentPassword, input.NewPassword)
		if err != nil {
			basehdl.Respond(c, nil, err)
			return nil
		}

		middleware.GetAuthManager().InvalidateUser(userID)
		logger.LogAction("user_change_password", c, map[string]interface{}{
			"resource_type": "user",
			"resource_id":   userID,
		})
		basehdl.Respond(c, fiber.Map{"changed": true}, nil)
		return nil
	})
}
