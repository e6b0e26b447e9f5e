package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vendus-gateway/internal/application/clients"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
)

var clientListFilters = []string{
	"q", "fiscal_id", "name", "email", "external_reference", "status", "date",
	"per_page", "page",
}

// ClientHandler consultas de clientes y alta idempotente.
type ClientHandler struct {
	uc *clients.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *clients.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

// List GET /clients
func (h *ClientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), pickQuery(c, clientListFilters...))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "clients": list})
}

// GetByID GET /clients/:id
func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	client, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "client": client})
}

// Resolve POST /clients: crea el cliente si no existe y devuelve su id.
func (h *ClientHandler) Resolve(c *fiber.Ctx) error {
	var in dto.ResolveClientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.uc.Resolve(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "clientId": result.ClientID, "created": result.Created})
}
