package repository

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// PurchaseOrderRepository define el puerto de persistencia para PurchaseOrder.
type PurchaseOrderRepository interface {
	// Create inserta la orden con sus líneas. Retorna domain.ErrDuplicate si el
	// número de orden ya existe (constraint único; ver generación del consecutivo).
	Create(ctx context.Context, order *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseOrder, error)
	// CountByYear cuenta las órdenes creadas en el año dado (base del consecutivo
	// PO-<año>-NNNN; la unicidad real la garantiza el constraint, no el conteo).
	CountByYear(ctx context.Context, year int) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*entity.PurchaseOrder, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
