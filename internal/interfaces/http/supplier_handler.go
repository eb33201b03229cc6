package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
)

// SupplierHandler maneja las consultas de proveedores (protegido).
type SupplierHandler struct {
	coordinator *reorder.Coordinator
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(coordinator *reorder.Coordinator) *SupplierHandler {
	return &SupplierHandler{coordinator: coordinator}
}

// List godoc
// @Summary      Listar proveedores
// @Description  Proveedores disponibles para dirigir una orden de compra, con sus contactos.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.SupplierListResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	out, err := h.coordinator.ListSuppliers(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar los proveedores"})
	}
	return c.JSON(out)
}
