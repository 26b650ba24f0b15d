package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// La capa HTTP los mapea a códigos de estado; las entidades y casos de uso los
// envuelven con fmt.Errorf("...: %w", err) cuando hace falta contexto.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")

	ErrInvalidTransition   = errors.New("transición de estado inválida")
	ErrSaleNotModifiable   = errors.New("la venta no admite modificación en su estado actual")
	ErrInsufficientStock   = errors.New("stock disponible insuficiente")
	ErrInsufficientCredit  = errors.New("cupo de crédito insuficiente")
	ErrCurrencyMismatch    = errors.New("monedas distintas")
	ErrNegativeQuantity    = errors.New("la cantidad no puede ser negativa")
	ErrNegativeAmount      = errors.New("el monto no puede ser negativo")
	ErrStockInactive       = errors.New("el stock no está activo")
	ErrReservationExceeded = errors.New("cantidad mayor a la reservada")
)
