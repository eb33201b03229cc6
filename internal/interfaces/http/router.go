package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/alerts"
	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
)

// Roles con permiso de mutación sobre alertas y órdenes.
const (
	RoleAdmin    = "admin"
	RoleCompras  = "compras"
	RoleConsulta = "consulta"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AlertEngine *alerts.Engine
	Coordinator *reorder.Coordinator
	JWTSecret   string
}

// Router registra las rutas de la API. Todas las rutas requieren Bearer Token;
// las mutaciones requieren además rol admin o compras.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))
	canWrite := RequireRole(RoleAdmin, RoleCompras)

	// Alerts
	alertsGroup := api.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertEngine, deps.Coordinator)
	alertsGroup.Get("/active", alertHandler.ListActive)
	alertsGroup.Get("/ignored", alertHandler.ListIgnored)
	alertsGroup.Get("/resolved", alertHandler.ListResolved)
	alertsGroup.Post("/send-po", canWrite, alertHandler.SendPO)
	alertsGroup.Put("/threshold", canWrite, alertHandler.UpdateThreshold)
	alertsGroup.Post("/:productId/ignore", canWrite, alertHandler.Ignore)
	alertsGroup.Post("/:productId/acknowledge", alertHandler.Acknowledge)

	// Suppliers
	supplierHandler := NewSupplierHandler(deps.Coordinator)
	api.Get("/suppliers", supplierHandler.List)

	// Purchase orders
	orders := api.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.Coordinator)
	orders.Post("/", canWrite, orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Put("/:id/status", canWrite, orderHandler.UpdateStatus)
}
