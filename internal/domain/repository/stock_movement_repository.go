package repository

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// StockMovementRepository puerto de persistencia para el historial de
// movimientos (append-only: nunca se actualiza ni borra un movimiento).
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error)
	ListByStock(stockID string, limit, offset int) ([]*entity.StockMovement, error)
}
