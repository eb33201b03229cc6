package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// LowStockItem resultado crudo del repositorio para un producto en stock bajo,
// denormalizado con el proveedor para no recomputar nada en capas superiores.
type LowStockItem struct {
	ProductID    string
	ProductName  string
	Category     string
	Stock        int64
	Threshold    int64
	UnitCost     decimal.Decimal
	SupplierID   string
	SupplierName string
}

// ProductRepository define el puerto de persistencia para Product (DIP).
// El stock lo mutan recepciones/despachos fuera de este servicio; aquí solo
// se lee y se actualiza el umbral.
type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de
	// la transacción en curso.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	// ListBelowThreshold devuelve los productos con stock <= umbral, con el
	// nombre del proveedor ya resuelto.
	ListBelowThreshold(ctx context.Context) ([]LowStockItem, error)
	UpdateThreshold(ctx context.Context, id string, threshold int64) error
}
