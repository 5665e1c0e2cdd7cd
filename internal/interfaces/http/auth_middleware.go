package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tdiallo/papistock-api/internal/application/dto"
	"github.com/tdiallo/papistock-api/internal/domain/entity"
	"github.com/tdiallo/papistock-api/pkg/jwt"
)

// Clés Locals posées par le middleware d'authentification.
const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware valide le Bearer Token JWT et pose UserID et Role dans c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("en-tête Authorization requis"))
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("format attendu : Bearer <token>"))
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("jeton vide"))
		}
		userID, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail("jeton invalide ou expiré"))
		}
		c.Locals(LocalUserID, userID)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireAdmin bloque les requêtes dont le jeton ne porte pas le rôle admin.
// À chaîner après AuthMiddleware.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetRole(c) != entity.RoleAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fail("rôle admin requis"))
		}
		return c.Next()
	}
}

// GetUserID renvoie l'ID utilisateur du contexte (après le middleware d'auth).
func GetUserID(c *fiber.Ctx) uint {
	v := c.Locals(LocalUserID)
	if v == nil {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// GetRole renvoie le rôle du contexte (après le middleware d'auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
