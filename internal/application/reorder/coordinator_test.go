package reorder_test

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/dto"
	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
	"github.com/jhoicas/stock-alerts-api/internal/domain"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
	"github.com/jhoicas/stock-alerts-api/internal/domain/repository"
	"github.com/jhoicas/stock-alerts-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeProductRepo) ListBelowThreshold(_ context.Context) ([]repository.LowStockItem, error) {
	var items []repository.LowStockItem
	for _, p := range f.products {
		if p.IsLowStock() {
			items = append(items, repository.LowStockItem{
				ProductID:   p.ID,
				ProductName: p.Name,
				Stock:       p.Stock,
				Threshold:   p.Threshold,
				UnitCost:    p.UnitCost,
				SupplierID:  p.SupplierID,
			})
		}
	}
	return items, nil
}

func (f *fakeProductRepo) UpdateThreshold(_ context.Context, id string, threshold int64) error {
	if p, ok := f.products[id]; ok {
		p.Threshold = threshold
	}
	return nil
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (f *fakeSupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}

func (f *fakeSupplierRepo) List(_ context.Context, limit, offset int) ([]*entity.Supplier, error) {
	var out []*entity.Supplier
	for _, s := range f.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

type fakeMarkerRepo struct {
	markers  []*entity.AlertMarker
	products *fakeProductRepo
}

func (f *fakeMarkerRepo) Create(_ context.Context, m *entity.AlertMarker) error {
	cp := *m
	f.markers = append(f.markers, &cp)
	return nil
}

func (f *fakeMarkerRepo) GetOpenSuppressor(_ context.Context, productID string) (*entity.AlertMarker, error) {
	for _, m := range f.markers {
		if m.ProductID == productID && m.Suppresses() {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeMarkerRepo) ListOpenSuppressedProductIDs(_ context.Context) ([]string, error) {
	var ids []string
	for _, m := range f.markers {
		if m.Suppresses() {
			ids = append(ids, m.ProductID)
		}
	}
	return ids, nil
}

func (f *fakeMarkerRepo) ClearRestocked(_ context.Context) (int64, error) {
	now := time.Now()
	var n int64
	for _, m := range f.markers {
		if m.ClearedAt != nil {
			continue
		}
		if p, ok := f.products.products[m.ProductID]; ok && !p.IsLowStock() {
			m.ClearedAt = &now
			n++
		}
	}
	return n, nil
}

func (f *fakeMarkerRepo) ClearForProduct(_ context.Context, productID string) error {
	now := time.Now()
	for _, m := range f.markers {
		if m.ProductID == productID && m.ClearedAt == nil {
			m.ClearedAt = &now
		}
	}
	return nil
}

func (f *fakeMarkerRepo) ListViews(_ context.Context, kind string) ([]repository.MarkerView, error) {
	var views []repository.MarkerView
	for _, m := range f.markers {
		if m.Kind != kind || m.ClearedAt != nil {
			continue
		}
		view := repository.MarkerView{
			MarkerID:        m.ID,
			ProductID:       m.ProductID,
			Kind:            m.Kind,
			Reason:          m.Reason,
			PurchaseOrderID: m.PurchaseOrderID,
			CreatedAt:       m.CreatedAt,
		}
		if p, ok := f.products.products[m.ProductID]; ok {
			view.ProductName = p.Name
		}
		views = append(views, view)
	}
	return views, nil
}

// fakeOrderRepo simula el constraint único sobre po_number y permite inyectar
// colisiones forzadas para ejercitar el reintento.
type fakeOrderRepo struct {
	orders    map[string]*entity.PurchaseOrder
	forceDups int // cantidad de Create que fallarán con ErrDuplicate
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[string]*entity.PurchaseOrder{}}
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.PurchaseOrder) error {
	if f.forceDups > 0 {
		f.forceDups--
		return domain.ErrDuplicate
	}
	for _, o := range f.orders {
		if o.Number == order.Number {
			return domain.ErrDuplicate
		}
	}
	cp := *order
	f.orders[order.ID] = &cp
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.PurchaseOrder, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) CountByYear(_ context.Context, year int) (int64, error) {
	var n int64
	for _, o := range f.orders {
		if o.CreatedAt.Year() == year {
			n++
		}
	}
	return n, nil
}

func (f *fakeOrderRepo) List(_ context.Context, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range f.orders {
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	if o, ok := f.orders[id]; ok {
		o.Status = status
		return nil
	}
	return domain.ErrNotFound
}

// fakeTxRunner ejecuta el callback sobre los mismos fakes, sin transacción real.
type fakeTxRunner struct {
	products *fakeProductRepo
	markers  *fakeMarkerRepo
	orders   *fakeOrderRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	markerRepo repository.AlertMarkerRepository,
	orderRepo repository.PurchaseOrderRepository,
) error) error {
	return fn(f.products, f.markers, f.orders)
}

type fakeNotifier struct {
	fail          bool
	lastRecipient string
	sent          int
}

func (f *fakeNotifier) Send(_ context.Context, order *entity.PurchaseOrder, _ *entity.Supplier, recipient string) (string, error) {
	if f.fail {
		return "", fmt.Errorf("proveedor de mensajería caído")
	}
	f.sent++
	f.lastRecipient = recipient
	return "Orden " + order.Number + " enviada", nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	coordinator *reorder.Coordinator
	engine      *alerts.Engine
	products    *fakeProductRepo
	suppliers   *fakeSupplierRepo
	markers     *fakeMarkerRepo
	orders      *fakeOrderRepo
	email       *fakeNotifier
	whatsapp    *fakeNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := &fakeProductRepo{products: map[string]*entity.Product{}}
	suppliers := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}}
	markers := &fakeMarkerRepo{products: products}
	orders := newFakeOrderRepo()
	email := &fakeNotifier{}
	whatsapp := &fakeNotifier{}

	tx := &fakeTxRunner{products: products, markers: markers, orders: orders}
	notifiers := map[string]reorder.Notifier{
		entity.SendMethodEmail:    email,
		entity.SendMethodWhatsApp: whatsapp,
	}
	return &fixture{
		coordinator: reorder.NewCoordinator(tx, products, suppliers, orders, notifiers, logger.Nop()),
		engine:      alerts.NewEngine(products, markers, logger.Nop()),
		products:    products,
		suppliers:   suppliers,
		markers:     markers,
		orders:      orders,
		email:       email,
		whatsapp:    whatsapp,
	}
}

func (f *fixture) addSupplier(id, name, mail, wa string) {
	f.suppliers.suppliers[id] = &entity.Supplier{ID: id, Name: name, Email: mail, WhatsApp: wa}
}

func (f *fixture) addProduct(id, name string, stock, threshold int64, unitCost int64, supplierID string) {
	f.products.products[id] = &entity.Product{
		ID: id, Name: name, Category: "general",
		UnitCost: decimal.NewFromInt(unitCost), Stock: stock, Threshold: threshold,
		SupplierID: supplierID,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CreatePurchaseOrder
// ──────────────────────────────────────────────────────────────────────────────

// Escenario de la guía: 100 unidades a costo 50 → total 5000, número PO-<año>-0001.
func TestCreatePurchaseOrder_OK(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Distribuidora Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")

	resp, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProductID: "p1",
		Quantity:  100,
	})
	require.NoError(t, err)

	wantNumber := fmt.Sprintf("PO-%d-0001", time.Now().Year())
	assert.Equal(t, wantNumber, resp.PONumber)
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(5000)),
		"total esperado 5000, obtenido %s", resp.TotalAmount)

	order := f.orders.orders[resp.POID]
	require.NotNil(t, order)
	assert.Equal(t, entity.POStatusPending, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(100), order.Items[0].Quantity)
	assert.True(t, order.Items[0].Subtotal.Equal(decimal.NewFromInt(5000)))
}

func TestCreatePurchaseOrder_CantidadInvalida(t *testing.T) {
	f := newFixture(t)
	for _, qty := range []int64{0, -1} {
		_, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
			ProductID: "p1",
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "qty=%d", qty)
	}
}

func TestCreatePurchaseOrder_ProductoInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProductID: "nope",
		Quantity:  10,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchaseOrder_SinProveedor(t *testing.T) {
	f := newFixture(t)
	f.addProduct("p1", "Harina", 2, 30, 50, "")
	_, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProductID: "p1",
		Quantity:  10,
	})
	assert.ErrorIs(t, err, domain.ErrNoSupplier)
}

// Consecutivo anual: órdenes sucesivas obtienen números distintos y crecientes.
func TestCreatePurchaseOrder_ConsecutivoAnual(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")
	f.addProduct("p2", "Azúcar", 3, 30, 40, "s1")

	first, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 10})
	require.NoError(t, err)
	second, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p2", Quantity: 10})
	require.NoError(t, err)

	year := time.Now().Year()
	assert.Equal(t, fmt.Sprintf("PO-%d-0001", year), first.PONumber)
	assert.Equal(t, fmt.Sprintf("PO-%d-0002", year), second.PONumber)
}

// Colisión de número: se regenera una vez y la creación prospera.
func TestCreatePurchaseOrder_ReintentaTrasColision(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")
	f.orders.forceDups = 1

	resp, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 10})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PONumber)
	assert.Len(t, f.orders.orders, 1)
}

// Dos colisiones seguidas agotan el reintento.
func TestCreatePurchaseOrder_NumeroOcupado(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")
	f.orders.forceDups = 2

	_, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 10})
	assert.ErrorIs(t, err, domain.ErrOrderNumberBusy)
	assert.Empty(t, f.orders.orders)
}

// Crear la orden para un producto en stock bajo resuelve la alerta: desaparece
// de activas y queda en resueltas con referencia a la orden.
func TestCreatePurchaseOrder_ResuelveLaAlerta(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")

	active, err := f.engine.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)

	resp, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 100})
	require.NoError(t, err)

	active, err = f.engine.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	resolved, err := f.engine.ListResolved(context.Background())
	require.NoError(t, err)
	require.Len(t, resolved, 1)
	assert.Equal(t, "p1", resolved[0].ProductID)
	assert.Equal(t, resp.POID, resolved[0].PurchaseOrderID)
}

// Reorden regular: producto con stock suficiente genera la orden sin tocar marcadores.
func TestCreatePurchaseOrder_ProductoSinStockBajo(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 500, 30, 50, "s1")

	resp, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PONumber)
	assert.Empty(t, f.markers.markers)
}

// Un ignore previo se limpia al resolver: no quedan dos marcadores abiertos.
func TestCreatePurchaseOrder_LimpiaIgnorePrevio(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Norte", "ventas@norte.co", "")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")

	require.NoError(t, f.engine.Ignore(context.Background(), "p1", "proveedor en vacaciones"))
	_, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 100})
	require.NoError(t, err)

	var open int
	for _, m := range f.markers.markers {
		if m.ClearedAt == nil {
			open++
			assert.Equal(t, entity.MarkerKindResolved, m.Kind)
		}
	}
	assert.Equal(t, 1, open)
}

// ──────────────────────────────────────────────────────────────────────────────
// SendPurchaseOrder
// ──────────────────────────────────────────────────────────────────────────────

func createOrder(t *testing.T, f *fixture) *dto.CreatePurchaseOrderResponse {
	t.Helper()
	f.addSupplier("s1", "Norte", "ventas@norte.co", "+573001112233")
	f.addProduct("p1", "Harina", 2, 30, 50, "s1")
	resp, err := f.coordinator.CreatePurchaseOrder(context.Background(), dto.CreatePurchaseOrderRequest{ProductID: "p1", Quantity: 100})
	require.NoError(t, err)
	return resp
}

func TestSendPurchaseOrder_EmailOK(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)

	resp, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: entity.SendMethodEmail,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
	assert.Equal(t, 1, f.email.sent)
	// Sin destinatario explícito usa el email del proveedor
	assert.Equal(t, "ventas@norte.co", f.email.lastRecipient)
	assert.Equal(t, entity.POStatusSent, f.orders.orders[created.POID].Status)
}

func TestSendPurchaseOrder_WhatsAppConDestinatarioExplicito(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)

	_, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:          created.POID,
		Method:        entity.SendMethodWhatsApp,
		RecipientInfo: "+573009998877",
	})
	require.NoError(t, err)
	assert.Equal(t, "+573009998877", f.whatsapp.lastRecipient)
}

func TestSendPurchaseOrder_MetodoInvalido(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)
	_, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: "paloma mensajera",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSendPurchaseOrder_OrdenInexistente(t *testing.T) {
	f := newFixture(t)
	_, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   "nope",
		Method: entity.SendMethodEmail,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Reenviar una orden ya enviada es conflicto de estado.
func TestSendPurchaseOrder_YaEnviada(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)
	_, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: entity.SendMethodEmail,
	})
	require.NoError(t, err)

	_, err = f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: entity.SendMethodEmail,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

// Fallo del despachador: la orden queda en pending y se puede reintentar.
func TestSendPurchaseOrder_DespachoFallido(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)
	f.email.fail = true

	_, err := f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: entity.SendMethodEmail,
	})
	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
	assert.Equal(t, entity.POStatusPending, f.orders.orders[created.POID].Status)

	// Reintento tras recuperar el despachador
	f.email.fail = false
	_, err = f.coordinator.SendPurchaseOrder(context.Background(), dto.SendPurchaseOrderRequest{
		POID:   created.POID,
		Method: entity.SendMethodEmail,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusSent, f.orders.orders[created.POID].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateThreshold / UpdateStatus
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateThreshold(t *testing.T) {
	f := newFixture(t)
	f.addProduct("p1", "Harina", 50, 30, 50, "")

	require.NoError(t, f.coordinator.UpdateThreshold(context.Background(), "p1", 60))
	assert.Equal(t, int64(60), f.products.products["p1"].Threshold)

	assert.ErrorIs(t, f.coordinator.UpdateThreshold(context.Background(), "p1", -1), domain.ErrInvalidInput)
	assert.ErrorIs(t, f.coordinator.UpdateThreshold(context.Background(), "nope", 10), domain.ErrNotFound)
}

// Subir el umbral por encima del stock hace aparecer la alerta en la siguiente lectura.
func TestUpdateThreshold_ActivaAlerta(t *testing.T) {
	f := newFixture(t)
	f.addProduct("p1", "Harina", 50, 30, 50, "")

	active, err := f.engine.ListActive(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, f.coordinator.UpdateThreshold(context.Background(), "p1", 80))
	active, err = f.engine.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "p1", active[0].ProductID)
}

func TestUpdateStatus_Transiciones(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)
	ctx := context.Background()

	// pending no puede completarse directamente
	assert.ErrorIs(t, f.coordinator.UpdateStatus(ctx, created.POID, entity.POStatusCompleted), domain.ErrConflict)

	// estados fuera de completed|cancelled se rechazan
	assert.ErrorIs(t, f.coordinator.UpdateStatus(ctx, created.POID, "archived"), domain.ErrInvalidInput)

	_, err := f.coordinator.SendPurchaseOrder(ctx, dto.SendPurchaseOrderRequest{POID: created.POID, Method: entity.SendMethodEmail})
	require.NoError(t, err)

	require.NoError(t, f.coordinator.UpdateStatus(ctx, created.POID, entity.POStatusCompleted))
	assert.Equal(t, entity.POStatusCompleted, f.orders.orders[created.POID].Status)

	// completed es terminal
	assert.ErrorIs(t, f.coordinator.UpdateStatus(ctx, created.POID, entity.POStatusCancelled), domain.ErrConflict)
}

func TestUpdateStatus_CancelarPendiente(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)
	require.NoError(t, f.coordinator.UpdateStatus(context.Background(), created.POID, entity.POStatusCancelled))
	assert.Equal(t, entity.POStatusCancelled, f.orders.orders[created.POID].Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestGetPurchaseOrder(t *testing.T) {
	f := newFixture(t)
	created := createOrder(t, f)

	order, err := f.coordinator.GetPurchaseOrder(context.Background(), created.POID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, created.PONumber, order.Number)
	require.Len(t, order.Items, 1)

	missing, err := f.coordinator.GetPurchaseOrder(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestListSuppliers(t *testing.T) {
	f := newFixture(t)
	f.addSupplier("s1", "Distribuidora Norte", "ventas@norte.co", "")
	f.addSupplier("s2", "Abarrotes Sur", "pedidos@sur.co", "+573001112233")

	resp, err := f.coordinator.ListSuppliers(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	require.Len(t, resp.Suppliers, 2)
	// Orden alfabético por nombre
	assert.Equal(t, "Abarrotes Sur", resp.Suppliers[0].Name)
	assert.Equal(t, "Distribuidora Norte", resp.Suppliers[1].Name)

	// Paginación
	resp, err = f.coordinator.ListSuppliers(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, resp.Suppliers, 1)
	assert.Equal(t, "Distribuidora Norte", resp.Suppliers[0].Name)
}

func TestListPurchaseOrders(t *testing.T) {
	f := newFixture(t)
	createOrder(t, f)

	resp, err := f.coordinator.ListPurchaseOrders(context.Background(), 20, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Orders, 1)
}
