package alert

import "github.com/jhoicas/stock-alerts-api/internal/domain/entity"

// Priority deriva la prioridad de una alerta de stock bajo (servicio de dominio).
// high: stock agotado; medium: stock <= umbral/2; low: stock <= umbral.
// Precondición: el producto está en estado de stock bajo (stock <= umbral).
func Priority(stock, threshold int64) string {
	switch {
	case stock == 0:
		return entity.AlertPriorityHigh
	case stock*2 <= threshold:
		return entity.AlertPriorityMedium
	default:
		return entity.AlertPriorityLow
	}
}

// CriticalityRatio devuelve stock/umbral como medida de criticidad: menor ratio,
// más crítico. Con umbral 0 el único caso activo es stock 0, criticidad máxima.
func CriticalityRatio(stock, threshold int64) float64 {
	if threshold == 0 {
		return 0
	}
	return float64(stock) / float64(threshold)
}
