// Package notify implementa los despachadores concretos de órdenes de compra
// hacia proveedores (email SMTP y WhatsApp Cloud API). Ninguno reintenta:
// la política de reintentos pertenece al caller del coordinador.
package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

var _ reorder.Notifier = (*EmailDispatcher)(nil)

// OrderPDFGenerator genera el PDF adjunto de la orden.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier) ([]byte, error)
}

// SMTPConfig configuración del servidor de salida.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// EmailDispatcher envía la orden por correo con el PDF adjunto.
type EmailDispatcher struct {
	cfg    SMTPConfig
	pdfGen OrderPDFGenerator
}

// NewEmailDispatcher construye el despachador de correo.
func NewEmailDispatcher(cfg SMTPConfig, pdfGen OrderPDFGenerator) *EmailDispatcher {
	return &EmailDispatcher{cfg: cfg, pdfGen: pdfGen}
}

// Send genera el PDF, arma el correo y lo entrega vía SMTP.
func (d *EmailDispatcher) Send(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier, recipient string) (string, error) {
	pdfBytes, err := d.pdfGen.GenerateOrderPDF(ctx, order, supplier)
	if err != nil {
		return "", fmt.Errorf("generar PDF de la orden: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", d.cfg.From)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", fmt.Sprintf("Orden de compra %s", order.Number))
	m.SetBody("text/plain", orderBody(order, supplier))
	m.Attach(order.Number+".pdf", gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdfBytes)
		return err
	}))

	dialer := gomail.NewDialer(d.cfg.Host, d.cfg.Port, d.cfg.Username, d.cfg.Password)
	if err := dialer.DialAndSend(m); err != nil {
		return "", fmt.Errorf("enviar correo: %w", err)
	}
	return fmt.Sprintf("Orden %s enviada por correo a %s", order.Number, recipient), nil
}

// orderBody arma el cuerpo de texto plano del correo.
func orderBody(order *entity.PurchaseOrder, supplier *entity.Supplier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estimado %s:\n\n", supplier.Name)
	fmt.Fprintf(&b, "Adjuntamos la orden de compra %s.\n\n", order.Number)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "  - %s x%d ($ %s c/u)\n", it.ProductName, it.Quantity, it.UnitCost.StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: $ %s\n", order.Total.StringFixed(2))
	if order.Notes != "" {
		fmt.Fprintf(&b, "\nNotas: %s\n", order.Notes)
	}
	return b.String()
}
