package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware verifies the auth-session token issued by the external auth
// service and stores the user identity in request locals. When DISABLE_AUTH
// is set (development only), a fixed mock user is injected instead.
func JwtMiddleware(ctx *fiber.Ctx) error {
	if os.Getenv("DISABLE_AUTH") == "true" {
		ctx.Locals("user_id", "00000000-0000-0000-0000-000000000001")
		ctx.Locals("user_email", "dev@example.com")
		return ctx.Next()
	}

	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Missing token"})
	}
	tokenStr := authHeader[7:]

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid token"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}

	// Supabase-style tokens carry the user id in "sub"
	if sub, ok := claims["sub"].(string); ok {
		ctx.Locals("user_id", sub)
	} else if uid, ok := claims["user_id"].(string); ok {
		ctx.Locals("user_id", uid)
	} else {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Invalid claims"})
	}
	if email, ok := claims["email"].(string); ok {
		ctx.Locals("user_email", email)
	}
	return ctx.Next()
}
