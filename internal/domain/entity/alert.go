package entity

import "time"

// Estados de una alerta de stock bajo. La alerta activa no se persiste: se deriva
// del estado actual del producto; ignored/resolved viven como marcadores durables.
const (
	AlertStatusActive   = "active"
	AlertStatusIgnored  = "ignored"
	AlertStatusResolved = "resolved"
)

// Prioridades derivadas de qué tan por debajo del umbral está el stock.
const (
	AlertPriorityHigh   = "high"   // stock agotado
	AlertPriorityMedium = "medium" // stock <= umbral/2
	AlertPriorityLow    = "low"    // stock <= umbral
)

// Tipos de marcador. ignored y resolved suprimen la alerta durante el episodio
// de agotamiento actual; acknowledged es solo auditoría y no la suprime.
const (
	MarkerKindIgnored      = "ignored"
	MarkerKindAcknowledged = "acknowledged"
	MarkerKindResolved     = "resolved"
)

// AlertMarker es el registro durable de una decisión sobre la alerta de un
// producto (ignorar, confirmar recepción o resolver vía orden de compra).
// ClearedAt != nil significa que el episodio terminó: el producto fue observado
// por encima de su umbral y el marcador dejó de suprimir.
type AlertMarker struct {
	ID              string
	ProductID       string
	Kind            string
	Reason          string
	PurchaseOrderID string // solo para resolved
	CreatedAt       time.Time
	ClearedAt       *time.Time
}

// Suppresses indica si el marcador sigue ocultando la alerta del producto.
func (m *AlertMarker) Suppresses() bool {
	if m.ClearedAt != nil {
		return false
	}
	return m.Kind == MarkerKindIgnored || m.Kind == MarkerKindResolved
}
