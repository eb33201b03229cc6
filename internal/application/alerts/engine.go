package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/alert"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// Engine calcula y administra el conjunto de alertas de stock bajo.
// Las alertas activas son una vista derivada (stock <= umbral) filtrada por los
// marcadores durables de ignorar/resolver; no existe tabla de alertas activas.
type Engine struct {
	productRepo repository.ProductRepository
	markerRepo  repository.AlertMarkerRepository
	log         *logger.Logger
}

// NewEngine construye el motor de alertas.
func NewEngine(
	productRepo repository.ProductRepository,
	markerRepo repository.AlertMarkerRepository,
	log *logger.Logger,
) *Engine {
	return &Engine{productRepo: productRepo, markerRepo: markerRepo, log: log}
}

// ListActive devuelve las alertas activas ordenadas por criticidad ascendente
// (ratio stock/umbral: primero lo más crítico), cada una con su prioridad
// derivada. Antes de computar el conjunto cierra los marcadores de productos
// ya reabastecidos, terminando el episodio de agotamiento correspondiente.
// Lectura idempotente: dos llamadas sin mutaciones intermedias son idénticas.
func (e *Engine) ListActive(ctx context.Context) ([]dto.ActiveAlertDTO, error) {
	cleared, err := e.markerRepo.ClearRestocked(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("cerrar marcadores de productos reabastecidos")
		return nil, fmt.Errorf("clear restocked markers: %w", err)
	}
	if cleared > 0 {
		e.log.Debug().Int64("cleared", cleared).Msg("episodios de agotamiento terminados")
	}

	items, err := e.productRepo.ListBelowThreshold(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("listar productos bajo umbral")
		return nil, fmt.Errorf("list products below threshold: %w", err)
	}

	suppressedIDs, err := e.markerRepo.ListOpenSuppressedProductIDs(ctx)
	if err != nil {
		e.log.Error().Err(err).Msg("listar marcadores supresores abiertos")
		return nil, fmt.Errorf("list open suppressors: %w", err)
	}
	suppressed := make(map[string]struct{}, len(suppressedIDs))
	for _, id := range suppressedIDs {
		suppressed[id] = struct{}{}
	}

	out := make([]dto.ActiveAlertDTO, 0, len(items))
	for _, item := range items {
		if _, ok := suppressed[item.ProductID]; ok {
			continue
		}
		out = append(out, dto.ActiveAlertDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Category:     item.Category,
			Stock:        item.Stock,
			Threshold:    item.Threshold,
			Priority:     alert.Priority(item.Stock, item.Threshold),
			SupplierID:   item.SupplierID,
			SupplierName: item.SupplierName,
			UnitCost:     item.UnitCost,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri := alert.CriticalityRatio(out[i].Stock, out[i].Threshold)
		rj := alert.CriticalityRatio(out[j].Stock, out[j].Threshold)
		if ri != rj {
			return ri < rj
		}
		if out[i].Stock != out[j].Stock {
			return out[i].Stock < out[j].Stock
		}
		return out[i].ProductName < out[j].ProductName
	})
	return out, nil
}

// Ignore marca la alerta del producto como ignorada durante el episodio de
// agotamiento actual. El producto debe existir y estar en stock bajo; si ya
// tiene un marcador supresor abierto retorna ErrDuplicate.
func (e *Engine) Ignore(ctx context.Context, productID, reason string) error {
	product, err := e.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.IsLowStock() {
		return domain.ErrNotLowStock
	}
	open, err := e.markerRepo.GetOpenSuppressor(ctx, productID)
	if err != nil {
		return fmt.Errorf("get open suppressor: %w", err)
	}
	if open != nil {
		return domain.ErrDuplicate
	}
	marker := &entity.AlertMarker{
		ID:        uuid.New().String(),
		ProductID: productID,
		Kind:      entity.MarkerKindIgnored,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := e.markerRepo.Create(ctx, marker); err != nil {
		e.log.Error().Err(err).Str("product_id", productID).Msg("crear marcador ignorado")
		return fmt.Errorf("create ignore marker: %w", err)
	}
	e.log.Info().Str("product_id", productID).Str("reason", reason).Msg("alerta ignorada")
	return nil
}

// Acknowledge registra que alguien vio la alerta (solo auditoría): no la
// suprime ni evita su recurrencia, a diferencia de Ignore.
func (e *Engine) Acknowledge(ctx context.Context, productID string) error {
	product, err := e.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.IsLowStock() {
		return domain.ErrNotLowStock
	}
	marker := &entity.AlertMarker{
		ID:        uuid.New().String(),
		ProductID: productID,
		Kind:      entity.MarkerKindAcknowledged,
		CreatedAt: time.Now(),
	}
	if err := e.markerRepo.Create(ctx, marker); err != nil {
		e.log.Error().Err(err).Str("product_id", productID).Msg("crear marcador de confirmación")
		return fmt.Errorf("create acknowledge marker: %w", err)
	}
	return nil
}

// ListIgnored lista los marcadores ignorados abiertos con contexto de
// producto/proveedor para mostrar. Proyección de solo lectura.
func (e *Engine) ListIgnored(ctx context.Context) ([]dto.MarkerDTO, error) {
	return e.listMarkers(ctx, entity.MarkerKindIgnored, entity.AlertStatusIgnored)
}

// ListResolved lista los marcadores resueltos vía orden de compra.
func (e *Engine) ListResolved(ctx context.Context) ([]dto.MarkerDTO, error) {
	return e.listMarkers(ctx, entity.MarkerKindResolved, entity.AlertStatusResolved)
}

func (e *Engine) listMarkers(ctx context.Context, kind, status string) ([]dto.MarkerDTO, error) {
	views, err := e.markerRepo.ListViews(ctx, kind)
	if err != nil {
		e.log.Error().Err(err).Str("kind", kind).Msg("listar marcadores")
		return nil, fmt.Errorf("list markers: %w", err)
	}
	out := make([]dto.MarkerDTO, 0, len(views))
	for _, v := range views {
		out = append(out, dto.MarkerDTO{
			MarkerID:        v.MarkerID,
			ProductID:       v.ProductID,
			ProductName:     v.ProductName,
			Category:        v.Category,
			SupplierName:    v.SupplierName,
			Status:          status,
			Reason:          v.Reason,
			PurchaseOrderID: v.PurchaseOrderID,
			OrderNumber:     v.OrderNumber,
			CreatedAt:       v.CreatedAt,
		})
	}
	return out, nil
}
