package reorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// Coordinator convierte una alerta en una orden de compra accionable y maneja
// el ciclo de vida posterior de la orden (envío al proveedor, completar, cancelar).
type Coordinator struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	orderRepo    repository.PurchaseOrderRepository
	notifiers    map[string]Notifier // por método: email, whatsapp
	log          *logger.Logger
}

// NewCoordinator construye el coordinador de reorden.
func NewCoordinator(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	orderRepo repository.PurchaseOrderRepository,
	notifiers map[string]Notifier,
	log *logger.Logger,
) *Coordinator {
	return &Coordinator{
		txRunner:     txRunner,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		orderRepo:    orderRepo,
		notifiers:    notifiers,
		log:          log,
	}
}

// CreatePurchaseOrder crea el borrador de orden para el proveedor del producto
// en una sola transacción: bloquea el producto, deriva el consecutivo anual,
// inserta la orden con su línea y, si el producto sigue en stock bajo, registra
// el marcador de resolución apuntando a la orden. El conteo del consecutivo es
// susceptible a carrera bajo creación concurrente: la unicidad la garantiza el
// constraint sobre po_number y ante una colisión se regenera el número una vez.
//
// Crear una orden para un producto que no está en stock bajo está permitido
// (reorden regular); en ese caso no se toca ningún marcador.
func (c *Coordinator) CreatePurchaseOrder(ctx context.Context, in dto.CreatePurchaseOrderRequest) (*dto.CreatePurchaseOrderResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var resp *dto.CreatePurchaseOrderResponse
	attempt := func() error {
		return c.txRunner.Run(ctx, func(
			productRepo repository.ProductRepository,
			markerRepo repository.AlertMarkerRepository,
			orderRepo repository.PurchaseOrderRepository,
		) error {
			product, err := productRepo.GetForUpdate(ctx, in.ProductID)
			if err != nil {
				return fmt.Errorf("get product for update: %w", err)
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if product.SupplierID == "" {
				return domain.ErrNoSupplier
			}

			now := time.Now()
			year := now.Year()
			count, err := orderRepo.CountByYear(ctx, year)
			if err != nil {
				return fmt.Errorf("count orders by year: %w", err)
			}
			number := fmt.Sprintf("PO-%d-%04d", year, count+1)

			qty := decimal.NewFromInt(in.Quantity)
			subtotal := qty.Mul(product.UnitCost)
			order := &entity.PurchaseOrder{
				ID:         uuid.New().String(),
				Number:     number,
				SupplierID: product.SupplierID,
				Status:     entity.POStatusPending,
				Notes:      in.Notes,
				Total:      subtotal,
				Items: []entity.PurchaseOrderItem{{
					ID:          uuid.New().String(),
					ProductID:   product.ID,
					ProductName: product.Name,
					Quantity:    in.Quantity,
					UnitCost:    product.UnitCost,
					Subtotal:    subtotal,
				}},
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := orderRepo.Create(ctx, order); err != nil {
				return err
			}

			// Solo si el producto sigue calificando como stock bajo se resuelve
			// la alerta; un reorden regular no deja rastro en los marcadores.
			if product.IsLowStock() {
				if err := markerRepo.ClearForProduct(ctx, product.ID); err != nil {
					return fmt.Errorf("clear open markers: %w", err)
				}
				marker := &entity.AlertMarker{
					ID:              uuid.New().String(),
					ProductID:       product.ID,
					Kind:            entity.MarkerKindResolved,
					PurchaseOrderID: order.ID,
					CreatedAt:       now,
				}
				if err := markerRepo.Create(ctx, marker); err != nil {
					return fmt.Errorf("create resolved marker: %w", err)
				}
			}

			resp = &dto.CreatePurchaseOrderResponse{
				POID:        order.ID,
				PONumber:    order.Number,
				TotalAmount: order.Total,
			}
			return nil
		})
	}

	err := attempt()
	if errors.Is(err, domain.ErrDuplicate) {
		// Dos creaciones concurrentes observaron el mismo conteo anual; el
		// constraint rechazó a la segunda. Se regenera el número una sola vez.
		c.log.Warn().Str("product_id", in.ProductID).Msg("colisión de número de orden, regenerando")
		err = attempt()
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.ErrOrderNumberBusy
		}
	}
	if err != nil {
		if isCallerError(err) {
			return nil, err
		}
		c.log.Error().Err(err).Str("product_id", in.ProductID).Msg("crear orden de compra")
		return nil, fmt.Errorf("create purchase order: %w", err)
	}
	c.log.Info().Str("po_number", resp.PONumber).Str("product_id", in.ProductID).Msg("orden de compra creada")
	return resp, nil
}

// SendPurchaseOrder entrega la orden al proveedor por el método indicado y la
// transiciona a sent. No reintenta: la política de reintentos es del caller.
func (c *Coordinator) SendPurchaseOrder(ctx context.Context, in dto.SendPurchaseOrderRequest) (*dto.SendPurchaseOrderResponse, error) {
	notifier, ok := c.notifiers[in.Method]
	if !ok {
		return nil, domain.ErrInvalidInput
	}
	order, err := c.orderRepo.GetByID(ctx, in.POID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if !order.CanTransitionTo(entity.POStatusSent) {
		return nil, domain.ErrConflict
	}
	supplier, err := c.supplierRepo.GetByID(ctx, order.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	recipient := in.RecipientInfo
	if recipient == "" {
		switch in.Method {
		case entity.SendMethodEmail:
			recipient = supplier.Email
		case entity.SendMethodWhatsApp:
			recipient = supplier.WhatsApp
		}
	}
	if recipient == "" {
		return nil, domain.ErrInvalidInput
	}

	msg, err := notifier.Send(ctx, order, supplier, recipient)
	if err != nil {
		c.log.Error().Err(err).
			Str("po_number", order.Number).
			Str("method", in.Method).
			Str("supplier_id", supplier.ID).
			Msg("despacho de orden de compra fallido")
		return nil, domain.ErrDispatchFailed
	}
	if err := c.orderRepo.UpdateStatus(ctx, order.ID, entity.POStatusSent); err != nil {
		c.log.Error().Err(err).Str("po_number", order.Number).Msg("marcar orden como enviada")
		return nil, fmt.Errorf("mark order sent: %w", err)
	}
	c.log.Info().Str("po_number", order.Number).Str("method", in.Method).Msg("orden de compra enviada")
	return &dto.SendPurchaseOrderResponse{Message: msg}, nil
}

// UpdateThreshold actualiza el umbral de stock bajo del producto. La membresía
// en alertas activas es derivada, así que no hay tabla de alertas que mutar.
func (c *Coordinator) UpdateThreshold(ctx context.Context, productID string, threshold int64) error {
	if threshold < 0 {
		return domain.ErrInvalidInput
	}
	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := c.productRepo.UpdateThreshold(ctx, productID, threshold); err != nil {
		c.log.Error().Err(err).Str("product_id", productID).Msg("actualizar umbral")
		return fmt.Errorf("update threshold: %w", err)
	}
	return nil
}

// UpdateStatus transiciona la orden a completed o cancelled validando la
// máquina de estados de la entidad.
func (c *Coordinator) UpdateStatus(ctx context.Context, poID, status string) error {
	if status != entity.POStatusCompleted && status != entity.POStatusCancelled {
		return domain.ErrInvalidInput
	}
	order, err := c.orderRepo.GetByID(ctx, poID)
	if err != nil {
		return fmt.Errorf("get purchase order: %w", err)
	}
	if order == nil {
		return domain.ErrNotFound
	}
	if !order.CanTransitionTo(status) {
		return domain.ErrConflict
	}
	if err := c.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
		c.log.Error().Err(err).Str("po_number", order.Number).Msg("actualizar estado de orden")
		return fmt.Errorf("update order status: %w", err)
	}
	return nil
}

// GetPurchaseOrder devuelve la orden completa por ID.
func (c *Coordinator) GetPurchaseOrder(ctx context.Context, poID string) (*dto.PurchaseOrderDTO, error) {
	order, err := c.orderRepo.GetByID(ctx, poID)
	if err != nil {
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if order == nil {
		return nil, nil
	}
	out := toOrderDTO(order)
	return &out, nil
}

// ListPurchaseOrders lista las órdenes más recientes primero.
func (c *Coordinator) ListPurchaseOrders(ctx context.Context, limit, offset int) (*dto.PurchaseOrderListResponse, error) {
	orders, err := c.orderRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	resp := &dto.PurchaseOrderListResponse{Orders: make([]dto.PurchaseOrderDTO, 0, len(orders))}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, toOrderDTO(o))
	}
	resp.Total = len(resp.Orders)
	return resp, nil
}

// ListSuppliers lista los proveedores disponibles para dirigir una orden,
// ordenados por nombre.
func (c *Coordinator) ListSuppliers(ctx context.Context, limit, offset int) (*dto.SupplierListResponse, error) {
	suppliers, err := c.supplierRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	resp := &dto.SupplierListResponse{Suppliers: make([]dto.SupplierDTO, 0, len(suppliers))}
	for _, s := range suppliers {
		resp.Suppliers = append(resp.Suppliers, dto.SupplierDTO{
			ID:       s.ID,
			Name:     s.Name,
			Email:    s.Email,
			Phone:    s.Phone,
			WhatsApp: s.WhatsApp,
		})
	}
	resp.Total = len(resp.Suppliers)
	return resp, nil
}

func toOrderDTO(o *entity.PurchaseOrder) dto.PurchaseOrderDTO {
	items := make([]dto.PurchaseOrderItemDTO, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.PurchaseOrderItemDTO{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	return dto.PurchaseOrderDTO{
		ID:         o.ID,
		Number:     o.Number,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		Notes:      o.Notes,
		Total:      o.Total,
		Items:      items,
		CreatedAt:  o.CreatedAt,
	}
}

// isCallerError distingue los errores que se devuelven tal cual al caller (4xx)
// de los fallos de persistencia que se loguean y se envuelven.
func isCallerError(err error) bool {
	return errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrInvalidInput) ||
		errors.Is(err, domain.ErrNoSupplier) ||
		errors.Is(err, domain.ErrConflict)
}
