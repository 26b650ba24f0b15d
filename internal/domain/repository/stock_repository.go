package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// StockRepository puerto para el stock por producto+bodega.
// Las mutaciones de reserva corren dentro de una transacción con la fila
// bloqueada (GetForUpdate) para que dos aprobaciones concurrentes no pasen
// ambas el chequeo de disponibilidad.
type StockRepository interface {
	GetByProductAndWarehouse(productID, warehouseID string) (*entity.Stock, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	GetForUpdate(productID, warehouseID string) (*entity.Stock, error)
	ListByWarehouse(warehouseID string) ([]*entity.Stock, error)
	Save(stock *entity.Stock) error
	Update(stock *entity.Stock) error
}
