package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/vendus-gateway/internal/application/dto"
	"github.com/tu-usuario/vendus-gateway/internal/application/products"
)

var productListFilters = []string{
	"q", "reference", "status", "category_id", "since", "per_page", "page",
}

// ProductHandler proxy read-only del catálogo.
type ProductHandler struct {
	uc *products.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *products.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List GET /products
func (h *ProductHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context(), pickQuery(c, productListFilters...))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "products": list})
}

// GetByID GET /products/:id
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id inválido"})
	}
	product, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "product": product})
}
