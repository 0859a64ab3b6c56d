// Package dto định nghĩa input/output cho domain auth.
package dto

// LoginInput là thông tin đăng nhập admin
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput trả về khi đăng nhập thành công
type LoginOutput struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
