// Package dto - các cấu trúc request/response thuộc domain auth.
package dto

// RegisterInput dữ liệu đăng ký tài khoản
type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	FirstName string `json:"firstName" validate:"required,no_xss"`
	LastName  string `json:"lastName" validate:"omitempty,no_xss"`
}

// LoginInput dữ liệu đăng nhập
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordInput yêu cầu gửi link đặt lại mật khẩu
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput đặt lại mật khẩu bằng token từ email
type ResetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// ChangePasswordInput đổi mật khẩu khi đã đăng nhập
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,strong_password"`
}

// UserUpdateInput dữ liệu admin cập nhật người dùng.
// Con trỏ phân biệt "không gửi" với "gửi false".
type UserUpdateInput struct {
	FirstName string `json:"firstName" validate:"omitempty,no_xss"`
	LastName  string `json:"lastName" validate:"omitempty,no_xss"`
	IsAdmin   *bool  `json:"isAdmin"`
	IsActive  *bool  `json:"isActive"`
}
