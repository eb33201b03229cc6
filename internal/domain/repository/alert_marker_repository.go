package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

// MarkerView proyección de un marcador para listados (solo lectura, con el
// contexto de producto/proveedor denormalizado para la UI).
type MarkerView struct {
	MarkerID        string
	ProductID       string
	ProductName     string
	Category        string
	SupplierName    string
	Kind            string
	Reason          string
	PurchaseOrderID string
	OrderNumber     string
	CreatedAt       time.Time
}

// AlertMarkerRepository define el puerto de persistencia para los marcadores
// de alerta (ignorar / confirmar / resolver).
type AlertMarkerRepository interface {
	Create(ctx context.Context, marker *entity.AlertMarker) error
	// GetOpenSuppressor devuelve el marcador abierto que suprime la alerta del
	// producto (ignored o resolved sin limpiar), o nil si no existe.
	GetOpenSuppressor(ctx context.Context, productID string) (*entity.AlertMarker, error)
	// ListOpenSuppressedProductIDs devuelve los IDs de producto con algún
	// marcador supresor abierto (para filtrar el listado de alertas activas).
	ListOpenSuppressedProductIDs(ctx context.Context) ([]string, error)
	// ClearForProduct cierra todos los marcadores abiertos del producto
	// (se usa antes de registrar la resolución vía orden de compra).
	ClearForProduct(ctx context.Context, productID string) error
	// ClearRestocked cierra los marcadores supresores de productos observados
	// por encima de su umbral: el episodio de agotamiento terminó y una nueva
	// alerta puede materializarse en la próxima caída de stock.
	ClearRestocked(ctx context.Context) (int64, error)
	// ListViews lista los marcadores abiertos de un tipo dado, más recientes primero.
	ListViews(ctx context.Context, kind string) ([]MarkerView, error)
}
