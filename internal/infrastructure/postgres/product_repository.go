package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, name, category, unit_price, unit_cost, stock, low_stock_threshold, supplier_id, created_at, updated_at`

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.scanOne(ctx, query, id)
}

// GetForUpdate bloquea la fila del producto (SELECT FOR UPDATE) dentro de la
// transacción en curso; fuera de una tx el lock se libera de inmediato.
func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.scanOne(ctx, query, id)
}

func (r *ProductRepo) scanOne(ctx context.Context, query, id string) (*entity.Product, error) {
	var p entity.Product
	var supplierID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Category, &p.UnitPrice, &p.UnitCost,
		&p.Stock, &p.Threshold, &supplierID, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	if supplierID != nil {
		p.SupplierID = *supplierID
	}
	return &p, nil
}

// ListBelowThreshold devuelve los productos con stock <= umbral con el nombre
// del proveedor resuelto, los de mayor déficit relativo primero.
func (r *ProductRepo) ListBelowThreshold(ctx context.Context) ([]repository.LowStockItem, error) {
	query := `
		SELECT p.id, p.name, p.category, p.stock, p.low_stock_threshold, p.unit_cost,
		       COALESCE(p.supplier_id::text, ''), COALESCE(s.name, '')
		FROM products p
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.stock <= p.low_stock_threshold
		ORDER BY CASE WHEN p.low_stock_threshold = 0 THEN 0
		              ELSE p.stock::float / p.low_stock_threshold END ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products below threshold: %w", err)
	}
	defer rows.Close()
	var list []repository.LowStockItem
	for rows.Next() {
		var it repository.LowStockItem
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.Category, &it.Stock,
			&it.Threshold, &it.UnitCost, &it.SupplierID, &it.SupplierName); err != nil {
			return nil, fmt.Errorf("scan low stock item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UpdateThreshold actualiza solo el umbral de stock bajo del producto.
func (r *ProductRepo) UpdateThreshold(ctx context.Context, id string, threshold int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE products SET low_stock_threshold = $2, updated_at = now() WHERE id = $1`,
		id, threshold,
	)
	if err != nil {
		return fmt.Errorf("update threshold: %w", err)
	}
	return nil
}
