package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/application/orders"
)

// Filtros de listado que se reenvían al upstream (type se fuerza aparte).
var orderListFilters = []string{
	"store_id", "register_id", "client_id", "client_fiscal_id", "client_country",
	"subtype", "since", "until", "q", "external_reference", "status",
	"mode", "per_page", "page",
}

// Parámetros de salida del detalle (plantillas/copias las resuelve Vendus).
var orderDetailFilters = []string{
	"mode", "copies", "output", "output_template_id", "output_version",
	"return_qrcode", "download", "force_template", "register_id",
}

// OrderHandler encomiendas: consultas read-only y pipeline de aprobación.
type OrderHandler struct {
	orders   *orders.OrdersUseCase
	approval *orders.ApprovalUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(ordersUC *orders.OrdersUseCase, approvalUC *orders.ApprovalUseCase) *OrderHandler {
	return &OrderHandler{orders: ordersUC, approval: approvalUC}
}

// List GET /orders?view=enriched&...
func (h *OrderHandler) List(c *fiber.Ctx) error {
	enriched := c.Query("view") == "enriched"
	list, err := h.orders.List(c.Context(), pickQuery(c, orderListFilters...), enriched)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "orders": list})
}

// GetByID GET /orders/:id
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	order, err := h.orders.GetByID(c.Context(), id, pickQuery(c, orderDetailFilters...))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "order": order})
}

// Submit POST /orders: encola el draft en PENDING, sin tocar el upstream.
func (h *OrderHandler) Submit(c *fiber.Ctx) error {
	var draft dto.DraftOrder
	if err := c.BodyParser(&draft); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pending, err := h.approval.Submit(c.Context(), draft)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "pending_order": pending})
}

// ListPending GET /orders/pending
func (h *OrderHandler) ListPending(c *fiber.Ctx) error {
	list, err := h.approval.ListPending(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "pending_orders": list})
}

// Accept POST /orders/pending/:id/accept
func (h *OrderHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	order, err := h.approval.Accept(c.Context(), c.Params("id"), in.Actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "order": order})
}

// Reject POST /orders/pending/:id/reject
func (h *OrderHandler) Reject(c *fiber.Ctx) error {
	var in dto.RejectOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	pending, err := h.approval.Reject(c.Context(), c.Params("id"), in.Actor, in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "pending_order": pending})
}
