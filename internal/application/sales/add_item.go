package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// AddItemUseCase agrega una línea a una venta editable (draft o rejected).
// Si ya existe una línea del mismo producto, la cantidad se suma a la
// existente en lugar de insertar una fila duplicada.
type AddItemUseCase struct {
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
}

// NewAddItemUseCase construye el caso de uso.
func NewAddItemUseCase(saleRepo repository.SaleRepository, productRepo repository.ProductRepository) *AddItemUseCase {
	return &AddItemUseCase{saleRepo: saleRepo, productRepo: productRepo}
}

// Execute valida el producto, arma la línea y la agrega al agregado.
func (uc *AddItemUseCase) Execute(ctx context.Context, saleID string, in dto.AddItemRequest) error {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return err
	}
	if sale == nil {
		return fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	if !product.IsActive() {
		return fmt.Errorf("%w: el producto %s no está activo", domain.ErrInvalidInput, product.Name)
	}

	quantity, err := valueobject.NewQuantity(in.Quantity)
	if err != nil {
		return err
	}
	unitPrice := product.Price
	if in.UnitPrice != nil {
		unitPrice, err = valueobject.NewMoney(*in.UnitPrice, product.Price.Currency())
		if err != nil {
			return err
		}
	}
	discount, err := buildDiscount(in.DiscountType, in.DiscountValue)
	if err != nil {
		return err
	}

	item, err := entity.NewSaleItem(product.ID, product.Name, quantity, unitPrice, discount)
	if err != nil {
		return err
	}
	if err := sale.AddItem(item); err != nil {
		return err
	}

	if err := uc.saleRepo.Update(sale); err != nil {
		return err
	}
	return uc.saleRepo.SaveItems(sale.ID, sale.Items)
}
