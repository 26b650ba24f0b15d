package sales

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Los casos de uso que mutan stock (aprobar,
// completar, cancelar) corren completos dentro de una transacción para que
// sus efectos sean todo-o-nada frente a observadores concurrentes.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}
