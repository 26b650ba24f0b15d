package entity

import (
	"fmt"
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// StockStatus estados del registro de stock.
type StockStatus string

const (
	StockStatusActive   StockStatus = "active"
	StockStatusInactive StockStatus = "inactive"
	StockStatusBlocked  StockStatus = "blocked"
)

// Stock existencias de un producto en una bodega. Lleva dos contadores:
// Quantity (físico) y ReservedQuantity (apartado para ventas aprobadas).
// Invariante: ReservedQuantity <= Quantity en todo momento; el disponible
// es la diferencia. La reserva es un commit en dos fases sobre el inventario:
// Reserve aparta sin descontar, ConfirmReservation descuenta en firme y
// ReleaseReservation deshace el apartado sin tocar el físico.
type Stock struct {
	Base
	ProductID        string
	WarehouseID      string
	Quantity         valueobject.Quantity
	ReservedQuantity valueobject.Quantity
	Status           StockStatus
	LastMovementAt   *time.Time
}

// NewStock crea el registro de stock activo para un producto en una bodega.
func NewStock(productID, warehouseID string, quantity valueobject.Quantity) *Stock {
	return &Stock{
		Base:             NewBase(),
		ProductID:        productID,
		WarehouseID:      warehouseID,
		Quantity:         quantity,
		ReservedQuantity: valueobject.ZeroQuantity(),
		Status:           StockStatusActive,
	}
}

// AvailableQuantity físico menos reservado.
func (s *Stock) AvailableQuantity() valueobject.Quantity {
	available, err := s.Quantity.Sub(s.ReservedQuantity)
	if err != nil {
		// El invariante reservado <= físico hace esto inalcanzable; si la fila
		// llegó corrupta desde la DB se reporta disponible cero.
		return valueobject.ZeroQuantity()
	}
	return available
}

// HasAvailableQuantity indica si el disponible cubre la cantidad requerida.
func (s *Stock) HasAvailableQuantity(required valueobject.Quantity) bool {
	return s.AvailableQuantity().IsSufficientFor(required)
}

// AddQuantity entrada directa de físico (recepción de mercancía).
func (s *Stock) AddQuantity(quantity valueobject.Quantity) error {
	if !s.IsActive() {
		return fmt.Errorf("%w: no se puede ingresar a stock %s", domain.ErrStockInactive, s.Status)
	}
	s.Quantity = s.Quantity.Add(quantity)
	s.markMovement()
	return nil
}

// RemoveQuantity salida directa de físico (pérdida, ajuste); respeta el disponible.
func (s *Stock) RemoveQuantity(quantity valueobject.Quantity) error {
	if !s.IsActive() {
		return fmt.Errorf("%w: no se puede descontar de stock %s", domain.ErrStockInactive, s.Status)
	}
	if !s.HasAvailableQuantity(quantity) {
		return fmt.Errorf("%w: disponible %s, requerido %s", domain.ErrInsufficientStock, s.AvailableQuantity(), quantity)
	}
	remaining, err := s.Quantity.Sub(quantity)
	if err != nil {
		return err
	}
	s.Quantity = remaining
	s.markMovement()
	return nil
}

// Reserve aparta cantidad del disponible sin descontar el físico (fase 1).
func (s *Stock) Reserve(quantity valueobject.Quantity) error {
	if !s.IsActive() {
		return fmt.Errorf("%w: no se puede reservar de stock %s", domain.ErrStockInactive, s.Status)
	}
	if !s.HasAvailableQuantity(quantity) {
		return fmt.Errorf("%w: disponible %s, requerido %s", domain.ErrInsufficientStock, s.AvailableQuantity(), quantity)
	}
	s.ReservedQuantity = s.ReservedQuantity.Add(quantity)
	s.Touch()
	return nil
}

// ReleaseReservation deshace un apartado sin tocar el físico (cancelación).
func (s *Stock) ReleaseReservation(quantity valueobject.Quantity) error {
	if s.ReservedQuantity.LessThan(quantity) {
		return fmt.Errorf("%w: reservado %s, a liberar %s", domain.ErrReservationExceeded, s.ReservedQuantity, quantity)
	}
	reserved, err := s.ReservedQuantity.Sub(quantity)
	if err != nil {
		return err
	}
	s.ReservedQuantity = reserved
	s.Touch()
	return nil
}

// ConfirmReservation convierte el apartado en descuento en firme del físico (fase 2).
func (s *Stock) ConfirmReservation(quantity valueobject.Quantity) error {
	if s.ReservedQuantity.LessThan(quantity) {
		return fmt.Errorf("%w: reservado %s, a confirmar %s", domain.ErrReservationExceeded, s.ReservedQuantity, quantity)
	}
	reserved, err := s.ReservedQuantity.Sub(quantity)
	if err != nil {
		return err
	}
	remaining, err := s.Quantity.Sub(quantity)
	if err != nil {
		return err
	}
	s.ReservedQuantity = reserved
	s.Quantity = remaining
	s.markMovement()
	return nil
}

// Activate / Deactivate / Block cambian el estado del registro.
func (s *Stock) Activate() {
	s.Status = StockStatusActive
	s.Touch()
}

func (s *Stock) Deactivate() {
	s.Status = StockStatusInactive
	s.Touch()
}

func (s *Stock) Block() {
	s.Status = StockStatusBlocked
	s.Touch()
}

// IsActive indica si el stock admite operaciones.
func (s *Stock) IsActive() bool {
	return s.Status == StockStatusActive
}

// IsBlocked indica si el stock está bloqueado.
func (s *Stock) IsBlocked() bool {
	return s.Status == StockStatusBlocked
}

func (s *Stock) markMovement() {
	now := time.Now()
	s.LastMovementAt = &now
	s.Touch()
}
