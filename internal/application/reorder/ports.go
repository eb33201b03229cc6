package reorder

import (
	"context"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que crear la orden y resolver la
// alerta sea una unidad atómica (todo o nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		markerRepo repository.AlertMarkerRepository,
		orderRepo repository.PurchaseOrderRepository,
	) error) error
}

// Notifier entrega una orden de compra al proveedor por un canal concreto
// (email, WhatsApp). Retorna el mensaje de confirmación legible para el caller.
// La política de reintentos pertenece al caller: aquí no se reintenta.
type Notifier interface {
	Send(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier, recipient string) (string, error)
}
