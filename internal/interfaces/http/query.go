package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pickQuery copia solo los query params permitidos, descartando vacíos.
// Evita reenviar al upstream parámetros arbitrarios del caller.
func pickQuery(c *fiber.Ctx, allowed ...string) url.Values {
	out := url.Values{}
	for _, k := range allowed {
		if v := c.Query(k); v != "" {
			out.Set(k, v)
		}
	}
	return out
}
