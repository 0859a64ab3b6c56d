// Package router đăng ký các route thuộc domain auth.
package router

import (
	"github.com/gofiber/fiber/v3"

	authhdl "air_command/internal/api/auth/handler"
	authsvc "air_command/internal/api/auth/service"
	"air_command/internal/global"
)

// Register đăng ký route đăng nhập admin lên v1
func Register(v1 fiber.Router) error {
	service := authsvc.NewAuthService(
		global.ServerConfig.AdminEmail,
		global.ServerConfig.AdminPassword,
	)
	handler := authhdl.NewAuthHandler(service)

	v1.Post("/auth/login", handler.Login)

	return nil
}
