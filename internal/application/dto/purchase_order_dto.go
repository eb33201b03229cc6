package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseOrderRequest body para POST /api/purchase-orders.
type CreatePurchaseOrderRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

// CreatePurchaseOrderResponse respuesta de la creación.
type CreatePurchaseOrderResponse struct {
	POID        string          `json:"po_id"`
	PONumber    string          `json:"po_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// SendPurchaseOrderRequest body para POST /api/alerts/send-po.
type SendPurchaseOrderRequest struct {
	POID          string `json:"po_id"`
	Method        string `json:"method"` // email | whatsapp
	RecipientInfo string `json:"recipient_info,omitempty"`
}

// SendPurchaseOrderResponse confirmación del envío.
type SendPurchaseOrderResponse struct {
	Message string `json:"message"`
}

// UpdatePOStatusRequest body para PUT /api/purchase-orders/{id}/status.
type UpdatePOStatusRequest struct {
	Status string `json:"status"` // completed | cancelled
}

// PurchaseOrderItemDTO línea de la orden en respuestas.
type PurchaseOrderItemDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  int64           `json:"quantity"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// PurchaseOrderDTO orden completa en respuestas.
type PurchaseOrderDTO struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"po_number"`
	SupplierID string                 `json:"supplier_id"`
	Status     string                 `json:"status"`
	Notes      string                 `json:"notes,omitempty"`
	Total      decimal.Decimal        `json:"total"`
	Items      []PurchaseOrderItemDTO `json:"items,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
}

// PurchaseOrderListResponse listado paginado de órdenes.
type PurchaseOrderListResponse struct {
	Total  int                `json:"total"`
	Orders []PurchaseOrderDTO `json:"orders"`
}
