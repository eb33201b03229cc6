package entity

import "time"

// Supplier representa un proveedor al que se le envían órdenes de compra.
type Supplier struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	WhatsApp  string // número E.164 para la API de WhatsApp
	CreatedAt time.Time
	UpdatedAt time.Time
}
