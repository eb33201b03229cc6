package dto

// SupplierDTO proveedor en respuestas (contactos para el envío de órdenes).
type SupplierDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
}

// SupplierListResponse listado paginado de proveedores.
type SupplierListResponse struct {
	Total     int           `json:"total"`
	Suppliers []SupplierDTO `json:"suppliers"`
}
