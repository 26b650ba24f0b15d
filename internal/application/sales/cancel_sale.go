package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CancelSaleUseCase cancela una venta. Si estaba aprobada (y por tanto tiene
// stock reservado) requiere la bodega para liberar la reserva de cada ítem
// antes de cancelar; en draft/pending/rejected cancela directo porque esos
// estados nunca reservaron stock.
type CancelSaleUseCase struct {
	txRunner TxRunner
}

// NewCancelSaleUseCase construye el caso de uso.
func NewCancelSaleUseCase(txRunner TxRunner) *CancelSaleUseCase {
	return &CancelSaleUseCase{txRunner: txRunner}
}

// Execute libera reservas si aplica y cancela.
func (uc *CancelSaleUseCase) Execute(ctx context.Context, saleID, warehouseID string) error {
	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		_ repository.StockMovementRepository,
		_ repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}

		if sale.IsApproved() {
			if warehouseID == "" {
				return fmt.Errorf("%w: warehouse_id es obligatorio para cancelar una venta aprobada", domain.ErrInvalidInput)
			}
			for _, item := range sale.Items {
				stock, err := stockRepo.GetForUpdate(item.ProductID, warehouseID)
				if err != nil {
					return err
				}
				if stock == nil {
					continue // sin fila de stock no hay reserva que liberar
				}
				if err := stock.ReleaseReservation(item.Quantity); err != nil {
					return err
				}
				if err := stockRepo.Update(stock); err != nil {
					return err
				}
			}
			if err := sale.CancelApproved(); err != nil {
				return err
			}
			return saleRepo.Update(sale)
		}

		if err := sale.Cancel(); err != nil {
			return err
		}
		return saleRepo.Update(sale)
	})
}
