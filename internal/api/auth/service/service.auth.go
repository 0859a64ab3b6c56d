// Package authsvc xử lý đăng nhập admin cho dashboard.
package authsvc

import (
	"crypto/subtle"

	"air_command/internal/api/auth/dto"
	"air_command/internal/common"

	"github.com/google/uuid"
)

// AuthService so khớp thông tin đăng nhập với tài khoản admin trong cấu hình
type AuthService struct {
	adminEmail    string
	adminPassword string
}

// NewAuthService tạo service với tài khoản admin được cấu hình
func NewAuthService(adminEmail, adminPassword string) *AuthService {
	return &AuthService{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
	}
}

// Login kiểm tra thông tin đăng nhập, thành công thì cấp token phiên mới
func (s *AuthService) Login(input *dto.LoginInput) (*dto.LoginOutput, error) {
	emailMatch := subtle.ConstantTimeCompare([]byte(input.Email), []byte(s.adminEmail)) == 1
	passwordMatch := subtle.ConstantTimeCompare([]byte(input.Password), []byte(s.adminPassword)) == 1

	if !emailMatch || !passwordMatch {
		return nil, common.ErrInvalidCredentials
	}

	return &dto.LoginOutput{
		Token: uuid.NewString(),
		Email: input.Email,
		Role:  "admin",
	}, nil
}
