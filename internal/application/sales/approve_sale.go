package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ApproveSaleUseCase aprueba una venta pendiente reservando el stock de cada
// ítem en la bodega indicada. Corre en dos pasadas dentro de una transacción:
// primero verifica disponibilidad de todos los ítems (falla rápido sin mutar
// nada) y solo después reserva; la venta pasa a approved únicamente cuando
// todas las reservas quedaron aplicadas.
type ApproveSaleUseCase struct {
	txRunner TxRunner
}

// NewApproveSaleUseCase construye el caso de uso.
func NewApproveSaleUseCase(txRunner TxRunner) *ApproveSaleUseCase {
	return &ApproveSaleUseCase{txRunner: txRunner}
}

// Execute reserva y aprueba. Las filas de stock se leen con FOR UPDATE para
// que dos aprobaciones concurrentes no pasen ambas el chequeo de disponibilidad.
func (uc *ApproveSaleUseCase) Execute(ctx context.Context, saleID, userID, warehouseID string) error {
	if warehouseID == "" {
		return fmt.Errorf("%w: warehouse_id es obligatorio", domain.ErrInvalidInput)
	}

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

		// Primera pasada: verificación de disponibilidad de todos los ítems.
		// El FOR UPDATE deja las filas bloqueadas hasta el commit, así la
		// segunda pasada reserva sobre lo que ya se verificó.
		stocks := make(map[string]*entity.Stock, len(sale.Items))
		for _, item := range sale.Items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, warehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w: el producto %s no tiene stock en la bodega", domain.ErrInvalidInput, item.ProductName)
			}
			if !stock.HasAvailableQuantity(item.Quantity) {
				return fmt.Errorf("%w: producto %s, disponible %s, requerido %s",
					domain.ErrInsufficientStock, item.ProductName, stock.AvailableQuantity(), item.Quantity)
			}
			stocks[item.ProductID] = stock
		}

		// Segunda pasada: reservar cada ítem.
		for _, item := range sale.Items {
			stock := stocks[item.ProductID]
			if err := stock.Reserve(item.Quantity); err != nil {
				return err
			}
			if err := stockRepo.Update(stock); err != nil {
				return err
			}
		}

		if err := sale.Approve(userID); err != nil {
			return err
		}
		return saleRepo.Update(sale)
	})
}
