package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// UpdateItemQuantityUseCase cambia la cantidad de una línea de una venta editable.
type UpdateItemQuantityUseCase struct {
	saleRepo repository.SaleRepository
}

// NewUpdateItemQuantityUseCase construye el caso de uso.
func NewUpdateItemQuantityUseCase(saleRepo repository.SaleRepository) *UpdateItemQuantityUseCase {
	return &UpdateItemQuantityUseCase{saleRepo: saleRepo}
}

// Execute carga la venta, actualiza la línea y persiste venta e ítems.
func (uc *UpdateItemQuantityUseCase) Execute(ctx context.Context, saleID, itemID string, quantity decimal.Decimal) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}

	qty, err := valueobject.NewQuantity(quantity)
	if err != nil {
		return err
	}
	if err := sale.UpdateItemQuantity(itemID, qty); err != nil {
		return err
	}

	if err := uc.saleRepo.Update(sale); err != nil {
		return err
	}
	return uc.saleRepo.SaveItems(sale.ID, sale.Items)
}

// RemoveItemUseCase elimina una línea de una venta editable.
type RemoveItemUseCase struct {
	saleRepo repository.SaleRepository
}

// NewRemoveItemUseCase construye el caso de uso.
func NewRemoveItemUseCase(saleRepo repository.SaleRepository) *RemoveItemUseCase {
	return &RemoveItemUseCase{saleRepo: saleRepo}
}

// Execute elimina la línea por ID y persiste venta e ítems.
func (uc *RemoveItemUseCase) Execute(ctx context.Context, saleID, itemID string) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}

	if err := sale.RemoveItem(itemID); err != nil {
		return err
	}

	if err := uc.saleRepo.Update(sale); err != nil {
		return err
	}
	return uc.saleRepo.SaveItems(sale.ID, sale.Items)
}
