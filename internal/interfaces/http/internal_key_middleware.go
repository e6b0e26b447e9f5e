package http

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
)

// HeaderInternalKey cabecera de la clave interna para robots/integraciones.
const HeaderInternalKey = "X-Internal-Key"

// InternalKeyMiddleware protege la superficie interna (products/clients/orders).
// Sin clave configurada todo acceso falla: nunca se abre por omisión.
func InternalKeyMiddleware(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "MISCONFIGURED", Message: "INTERNAL_API_KEY no configurada"})
		}
		got := c.Get(HeaderInternalKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "clave interna inválida"})
		}
		return c.Next()
	}
}
