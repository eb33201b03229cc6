package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.AlertMarkerRepository = (*AlertMarkerRepo)(nil)

// AlertMarkerRepo implementación de AlertMarkerRepository (usable con pool o tx).
// Los marcadores son el único estado persistido del motor de alertas: la alerta
// activa se deriva de products en cada lectura.
type AlertMarkerRepo struct {
	q Querier
}

// NewAlertMarkerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAlertMarkerRepository(q Querier) *AlertMarkerRepo {
	return &AlertMarkerRepo{q: q}
}

// Create persiste un marcador.
func (r *AlertMarkerRepo) Create(ctx context.Context, m *entity.AlertMarker) error {
	query := `
		INSERT INTO alert_markers (id, product_id, kind, reason, purchase_order_id, created_at, cleared_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.Kind, nullIfEmpty(m.Reason), nullIfEmpty(m.PurchaseOrderID),
		m.CreatedAt, m.ClearedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("alert marker already exists: %w", err)
		}
		return fmt.Errorf("insert alert marker: %w", err)
	}
	return nil
}

// GetOpenSuppressor devuelve el marcador abierto que suprime la alerta del
// producto, o nil. A lo sumo hay uno por producto (se limpian antes de resolver).
func (r *AlertMarkerRepo) GetOpenSuppressor(ctx context.Context, productID string) (*entity.AlertMarker, error) {
	query := `
		SELECT id, product_id, kind, COALESCE(reason, ''), COALESCE(purchase_order_id::text, ''), created_at, cleared_at
		FROM alert_markers
		WHERE product_id = $1 AND cleared_at IS NULL AND kind IN ('ignored', 'resolved')
		ORDER BY created_at DESC
		LIMIT 1`
	var m entity.AlertMarker
	err := r.q.QueryRow(ctx, query, productID).Scan(
		&m.ID, &m.ProductID, &m.Kind, &m.Reason, &m.PurchaseOrderID, &m.CreatedAt, &m.ClearedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get open suppressor: %w", err)
	}
	return &m, nil
}

// ListOpenSuppressedProductIDs devuelve los productos con marcador supresor abierto.
func (r *AlertMarkerRepo) ListOpenSuppressedProductIDs(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT product_id
		FROM alert_markers
		WHERE cleared_at IS NULL AND kind IN ('ignored', 'resolved')`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppressed product ids: %w", err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan product id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ClearRestocked cierra los marcadores abiertos de productos observados por
// encima de su umbral. El reabastecimiento termina el episodio de agotamiento:
// si el stock vuelve a caer, una nueva alerta se materializa desde cero.
func (r *AlertMarkerRepo) ClearRestocked(ctx context.Context) (int64, error) {
	query := `
		UPDATE alert_markers m
		SET cleared_at = now()
		FROM products p
		WHERE p.id = m.product_id
		  AND m.cleared_at IS NULL
		  AND p.stock > p.low_stock_threshold`
	cmd, err := r.q.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("clear restocked markers: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// ClearForProduct cierra todos los marcadores abiertos del producto.
func (r *AlertMarkerRepo) ClearForProduct(ctx context.Context, productID string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE alert_markers SET cleared_at = now() WHERE product_id = $1 AND cleared_at IS NULL`,
		productID,
	)
	if err != nil {
		return fmt.Errorf("clear markers for product: %w", err)
	}
	return nil
}

// ListViews lista los marcadores abiertos de un tipo con el contexto de
// producto/proveedor denormalizado, más recientes primero.
func (r *AlertMarkerRepo) ListViews(ctx context.Context, kind string) ([]repository.MarkerView, error) {
	query := `
		SELECT m.id, m.product_id, p.name, p.category, COALESCE(s.name, ''),
		       m.kind, COALESCE(m.reason, ''), COALESCE(m.purchase_order_id::text, ''),
		       COALESCE(o.po_number, ''), m.created_at
		FROM alert_markers m
		JOIN products p ON p.id = m.product_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		LEFT JOIN purchase_orders o ON o.id = m.purchase_order_id
		WHERE m.kind = $1 AND m.cleared_at IS NULL
		ORDER BY m.created_at DESC`
	rows, err := r.q.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("list marker views: %w", err)
	}
	defer rows.Close()
	var list []repository.MarkerView
	for rows.Next() {
		var v repository.MarkerView
		if err := rows.Scan(&v.MarkerID, &v.ProductID, &v.ProductName, &v.Category,
			&v.SupplierName, &v.Kind, &v.Reason, &v.PurchaseOrderID, &v.OrderNumber,
			&v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan marker view: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}
