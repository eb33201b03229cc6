package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario con su nivel de stock actual
// y el umbral de stock bajo configurado. Stock y umbral son enteros no negativos;
// el stock lo mutan las operaciones de recepción/despacho fuera de este servicio.
type Product struct {
	ID         string
	Name       string
	Category   string
	UnitPrice  decimal.Decimal // precio de venta
	UnitCost   decimal.Decimal // costo unitario de compra al proveedor
	Stock      int64
	Threshold  int64  // umbral de stock bajo
	SupplierID string // vacío = sin proveedor asignado
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsLowStock indica si el producto califica para alerta (stock <= umbral).
func (p *Product) IsLowStock() bool {
	return p.Stock <= p.Threshold
}
