package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActiveAlertDTO representa una alerta de stock bajo materializada desde el
// estado actual del producto, ordenada por criticidad (ratio stock/umbral).
type ActiveAlertDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	Stock        int64           `json:"stock"`
	Threshold    int64           `json:"threshold"`
	Priority     string          `json:"priority"` // high | medium | low
	SupplierID   string          `json:"supplier_id,omitempty"`
	SupplierName string          `json:"supplier_name,omitempty"`
	UnitCost     decimal.Decimal `json:"unit_cost"`
}

// MarkerDTO proyección de un marcador ignorado/resuelto para listados.
type MarkerDTO struct {
	MarkerID        string    `json:"marker_id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Category        string    `json:"category"`
	SupplierName    string    `json:"supplier_name,omitempty"`
	Status          string    `json:"status"`
	Reason          string    `json:"reason,omitempty"`
	PurchaseOrderID string    `json:"purchase_order_id,omitempty"`
	OrderNumber     string    `json:"po_number,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// IgnoreAlertRequest body para POST /api/alerts/{productId}/ignore.
type IgnoreAlertRequest struct {
	Reason string `json:"reason,omitempty"`
}

// UpdateThresholdRequest body para PUT /api/alerts/threshold.
type UpdateThresholdRequest struct {
	ProductID string `json:"product_id"`
	Threshold int64  `json:"threshold"`
}
