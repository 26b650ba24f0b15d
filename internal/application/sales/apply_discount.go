package sales

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// ApplySaleDiscountUseCase aplica un descuento global a una venta editable.
type ApplySaleDiscountUseCase struct {
	saleRepo repository.SaleRepository
}

// NewApplySaleDiscountUseCase construye el caso de uso.
func NewApplySaleDiscountUseCase(saleRepo repository.SaleRepository) *ApplySaleDiscountUseCase {
	return &ApplySaleDiscountUseCase{saleRepo: saleRepo}
}

// Execute valida y aplica el descuento sobre el total de la venta.
func (uc *ApplySaleDiscountUseCase) Execute(ctx context.Context, saleID, kind string, value decimal.Decimal) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}

	discount, err := buildDiscount(kind, &value)
	if err != nil {
		return err
	}
	if err := sale.ApplySaleDiscount(discount); err != nil {
		return err
	}
	return uc.saleRepo.Update(sale)
}

// ApplyItemDiscountUseCase aplica un descuento a una línea concreta.
type ApplyItemDiscountUseCase struct {
	saleRepo repository.SaleRepository
}

// NewApplyItemDiscountUseCase construye el caso de uso.
func NewApplyItemDiscountUseCase(saleRepo repository.SaleRepository) *ApplyItemDiscountUseCase {
	return &ApplyItemDiscountUseCase{saleRepo: saleRepo}
}

// Execute aplica el descuento sobre la línea indicada y persiste los ítems.
func (uc *ApplyItemDiscountUseCase) Execute(ctx context.Context, saleID, itemID, kind string, value decimal.Decimal) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	if !sale.CanModifyItems() {
		return fmt.Errorf("%w: estado %s", domain.ErrSaleNotModifiable, sale.Status)
	}

	discount, err := buildDiscount(kind, &value)
	if err != nil {
		return err
	}

	for _, item := range sale.Items {
		if item.ID == itemID {
			item.ApplyDiscount(discount)
			sale.Touch()
			if err := uc.saleRepo.Update(sale); err != nil {
				return err
			}
			return uc.saleRepo.SaveItems(sale.ID, sale.Items)
		}
	}
	return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, itemID)
}
