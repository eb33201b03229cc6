package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de compra.
const (
	POStatusPending   = "pending"
	POStatusSent      = "sent"
	POStatusCompleted = "completed"
	POStatusCancelled = "cancelled"
)

// Métodos de envío soportados por el despachador de notificaciones.
const (
	SendMethodEmail    = "email"
	SendMethodWhatsApp = "whatsapp"
)

// PurchaseOrder representa el borrador de orden de compra generado desde una
// alerta (o como reorden regular). Inmutable una vez enviada salvo transiciones
// de estado.
type PurchaseOrder struct {
	ID         string
	Number     string // PO-<año>-<consecutivo 4 dígitos>, único
	SupplierID string
	Status     string
	Notes      string
	Total      decimal.Decimal
	Items      []PurchaseOrderItem
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseOrderItem es una línea de la orden. ProductName se denormaliza al
// crear la orden para que el PDF y los mensajes al proveedor no consulten productos.
type PurchaseOrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int64
	UnitCost    decimal.Decimal
	Subtotal    decimal.Decimal
}

// CanTransitionTo valida la máquina de estados:
// pending → sent → completed; pending|sent → cancelled. Terminales: completed, cancelled.
func (o *PurchaseOrder) CanTransitionTo(next string) bool {
	switch o.Status {
	case POStatusPending:
		return next == POStatusSent || next == POStatusCancelled
	case POStatusSent:
		return next == POStatusCompleted || next == POStatusCancelled
	default:
		return false
	}
}
