// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"quizku_backend/internals/configs"
)

// Ambil Authorization: Bearer ... (fallback cookie access_token)
func extractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")), nil
	}
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func parseClaims(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString, err := extractBearerToken(c)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	secretKey := configs.JWTSecret
	if secretKey == "" {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak valid atau kedaluwarsa")
	}
	return claims, nil
}

// UserAuth mewajibkan token dengan klaim user_id (login sebagai user).
func UserAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseClaims(c)
		if err != nil {
			return err
		}
		id, _ := claims["user_id"].(string)
		if id == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Silakan login sebagai user")
		}
		c.Locals("user_id", id)
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		return c.Next()
	}
}

// AdminAuth mewajibkan token dengan klaim admin_id (login sebagai admin).
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := parseClaims(c)
		if err != nil {
			return err
		}
		id, _ := claims["admin_id"].(string)
		if id == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Silakan login sebagai admin")
		}
		c.Locals("admin_id", id)
		if name, ok := claims["admin_username"].(string); ok {
			c.Locals("admin_username", name)
		}
		return c.Next()
	}
}
