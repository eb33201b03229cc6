package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/stock-alerts-api/internal/application/reorder"
	"github.com/jhoicas/stock-alerts-api/internal/domain/entity"
)

var _ reorder.Notifier = (*WhatsAppDispatcher)(nil)

// WhatsAppConfig credenciales de la Cloud API de WhatsApp Business.
type WhatsAppConfig struct {
	APIURL        string // ej. https://graph.facebook.com/v19.0
	PhoneNumberID string
	Token         string
}

// WhatsAppDispatcher envía el resumen de la orden como mensaje de texto por la
// Cloud API de WhatsApp Business.
type WhatsAppDispatcher struct {
	cfg        WhatsAppConfig
	httpClient *http.Client
}

// NewWhatsAppDispatcher construye el despachador.
func NewWhatsAppDispatcher(cfg WhatsAppConfig) *WhatsAppDispatcher {
	return &WhatsAppDispatcher{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type waTextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// Send entrega el mensaje; cualquier estado no-2xx cuenta como fallo de despacho.
func (d *WhatsAppDispatcher) Send(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier, recipient string) (string, error) {
	msg := waTextMessage{MessagingProduct: "whatsapp", To: recipient, Type: "text"}
	msg.Text.Body = orderText(order, supplier)

	payload, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("serializar mensaje: %w", err)
	}
	url := fmt.Sprintf("%s/%s/messages", strings.TrimRight(d.cfg.APIURL, "/"), d.cfg.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("armar request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+d.cfg.Token)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("llamar API de WhatsApp: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("API de WhatsApp respondió %d: %s", resp.StatusCode, string(body))
	}
	return fmt.Sprintf("Orden %s enviada por WhatsApp a %s", order.Number, recipient), nil
}

// orderText arma el resumen de la orden para el mensaje.
func orderText(order *entity.PurchaseOrder, supplier *entity.Supplier) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hola %s, nueva orden de compra %s:\n", supplier.Name, order.Number)
	for _, it := range order.Items {
		fmt.Fprintf(&b, "• %s x%d\n", it.ProductName, it.Quantity)
	}
	fmt.Fprintf(&b, "Total: $ %s", order.Total.StringFixed(2))
	return b.String()
}
