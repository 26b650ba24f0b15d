package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CompleteSaleUseCase cumple una venta aprobada: pasa a processing, confirma
// la reserva de cada ítem (el apartado se convierte en descuento en firme del
// físico), registra un StockMovement de salida por ítem con cantidades
// antes/después, suma la deuda al cliente si el pago es a crédito y cierra la
// venta en completed. Todo dentro de una transacción.
type CompleteSaleUseCase struct {
	txRunner TxRunner
}

// NewCompleteSaleUseCase construye el caso de uso.
func NewCompleteSaleUseCase(txRunner TxRunner) *CompleteSaleUseCase {
	return &CompleteSaleUseCase{txRunner: txRunner}
}

// Execute confirma reservas y completa la venta.
func (uc *CompleteSaleUseCase) Execute(ctx context.Context, saleID, warehouseID string) error {
	if warehouseID == "" {
		return fmt.Errorf("%w: warehouse_id es obligatorio", domain.ErrInvalidInput)
	}

	return uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		stockRepo repository.StockRepository,
		movementRepo repository.StockMovementRepository,
		customerRepo repository.CustomerRepository,
	) error {
		sale, err := saleRepo.GetByID(saleID)
		if err != nil {
			return err
		}
		if sale == nil {
			return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
		}

		if err := sale.StartProcessing(); err != nil {
			return err
		}
		if err := saleRepo.Update(sale); err != nil {
			return err
		}

		for _, item := range sale.Items {
			stock, err := stockRepo.GetForUpdate(item.ProductID, warehouseID)
			if err != nil {
				return err
			}
			if stock == nil {
				return fmt.Errorf("%w: stock %s/%s", domain.ErrNotFound, item.ProductID, warehouseID)
			}

			previousQty := stock.Quantity
			if err := stock.ConfirmReservation(item.Quantity); err != nil {
				return err
			}
			if err := stockRepo.Update(stock); err != nil {
				return err
			}

			movement := entity.NewStockMovement(
				item.ProductID, stock.ID,
				entity.MovementExit, entity.ReasonSale,
				item.Quantity, previousQty, stock.Quantity,
				sale.CreatedBy,
			).WithReference(sale.ID, "sale")
			if err := movementRepo.Create(movement); err != nil {
				return err
			}
		}

		if sale.PaymentMethod == entity.PaymentCredit {
			customer, err := customerRepo.GetByID(sale.CustomerID)
			if err != nil {
				return err
			}
			if customer != nil {
				total, err := sale.Total()
				if err != nil {
					return err
				}
				if err := customer.AddDebt(total.Amount()); err != nil {
					return err
				}
				if err := customerRepo.Update(customer); err != nil {
					return err
				}
			}
		}

		if err := sale.Complete(); err != nil {
			return err
		}
		return saleRepo.Update(sale)
	})
}
