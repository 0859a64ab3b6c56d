// Package authhdl chứa handler HTTP cho domain auth.
package authhdl

import (
	"air_command/internal/api/auth/dto"
	authsvc "air_command/internal/api/auth/service"
	basehdl "air_command/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AuthHandler xử lý đăng nhập admin
type AuthHandler struct {
	service *authsvc.AuthService
}

// NewAuthHandler tạo handler với service được cung cấp
func NewAuthHandler(service *authsvc.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login xử lý POST /auth/login
func (h *AuthHandler) Login(c fiber.Ctx) error {
	return basehdl.SafeHandler(c, func() error {
		input := new(dto.LoginInput)
		if err := basehdl.ParseRequestBody(c, input); err != nil {
			basehdl.HandleResponse(c, nil, err)
			return nil
		}

		output, err := h.service.Login(input)
		basehdl.HandleResponse(c, output, err)
		return nil
	})
}
