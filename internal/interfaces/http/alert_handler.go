package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
)

// AlertHandler maneja las peticiones HTTP del flujo de alertas de stock bajo (protegido).
type AlertHandler struct {
	engine      *alerts.Engine
	coordinator *reorder.Coordinator
}

// NewAlertHandler construye el handler.
func NewAlertHandler(engine *alerts.Engine, coordinator *reorder.Coordinator) *AlertHandler {
	return &AlertHandler{engine: engine, coordinator: coordinator}
}

// ListActive godoc
// @Summary      Alertas activas de stock bajo
// @Description  Productos con stock <= umbral sin marcador de ignorar/resolver,
//
//	ordenados por criticidad (ratio stock/umbral ascendente).
//
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.ActiveAlertDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/active [get]
func (h *AlertHandler) ListActive(c *fiber.Ctx) error {
	list, err := h.engine.ListActive(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar las alertas"})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}

// ListIgnored godoc
// @Summary      Alertas ignoradas
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MarkerDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/ignored [get]
func (h *AlertHandler) ListIgnored(c *fiber.Ctx) error {
	list, err := h.engine.ListIgnored(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar las alertas ignoradas"})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}

// ListResolved godoc
// @Summary      Alertas resueltas vía orden de compra
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.MarkerDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/resolved [get]
func (h *AlertHandler) ListResolved(c *fiber.Ctx) error {
	list, err := h.engine.ListResolved(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible listar las alertas resueltas"})
	}
	return c.JSON(fiber.Map{"total": len(list), "alerts": list})
}

// Ignore godoc
// @Summary      Ignorar la alerta de un producto
// @Description  Suprime la alerta durante el episodio de agotamiento actual; se
//
//	reactiva cuando el producto se reabastece sobre el umbral y vuelve a caer.
//
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Param        body       body  dto.IgnoreAlertRequest  false  "Razón opcional"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{productId}/ignore [post]
func (h *AlertHandler) Ignore(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	var in dto.IgnoreAlertRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	if err := h.engine.Ignore(c.Context(), productID, in.Reason); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrNotLowStock):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto sin alerta de stock bajo activa"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "la alerta ya fue ignorada o resuelta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible ignorar la alerta"})
	}
	return c.JSON(fiber.Map{"message": "alerta ignorada"})
}

// Acknowledge godoc
// @Summary      Confirmar recepción de la alerta (solo auditoría)
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{productId}/acknowledge [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	if err := h.engine.Acknowledge(c.Context(), productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrNotLowStock) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto sin alerta de stock bajo activa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible registrar la confirmación"})
	}
	return c.JSON(fiber.Map{"message": "alerta confirmada"})
}

// UpdateThreshold godoc
// @Summary      Actualizar el umbral de stock bajo de un producto
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateThresholdRequest  true  "product_id y threshold"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/threshold [put]
func (h *AlertHandler) UpdateThreshold(c *fiber.Ctx) error {
	var in dto.UpdateThresholdRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	if err := h.coordinator.UpdateThreshold(c.Context(), in.ProductID, in.Threshold); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "el umbral no puede ser negativo"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible actualizar el umbral"})
	}
	return c.JSON(fiber.Map{"message": "umbral actualizado"})
}

// SendPO godoc
// @Summary      Enviar una orden de compra al proveedor
// @Description  Entrega la orden por email o WhatsApp y la marca como enviada.
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SendPurchaseOrderRequest  true  "po_id, method (email|whatsapp), recipient_info opcional"
// @Success      200  {object}  dto.SendPurchaseOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/alerts/send-po [post]
func (h *AlertHandler) SendPO(c *fiber.Ctx) error {
	var in dto.SendPurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.coordinator.SendPurchaseOrder(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "método de envío o destinatario inválido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "orden o proveedor no encontrado"})
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "la orden no está en estado pendiente"})
		case errors.Is(err, domain.ErrDispatchFailed):
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "DISPATCH_FAILED", Message: "no fue posible entregar la orden al proveedor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no fue posible enviar la orden"})
	}
	return c.JSON(out)
}
