package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrForbidden       = errors.New("acceso denegado")
	ErrConflict        = errors.New("conflicto con el estado actual")
	ErrNoSupplier      = errors.New("producto sin proveedor asignado")
	ErrNotLowStock     = errors.New("el producto no está en estado de stock bajo")
	ErrDispatchFailed  = errors.New("envío de la notificación fallido")
	ErrOrderNumberBusy = errors.New("número de orden en conflicto tras reintento")
)
