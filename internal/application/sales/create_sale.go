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

// CreateSaleUseCase crea una venta en borrador a partir del catálogo:
// valida cliente y productos, resuelve precios (override explícito o precio
// vigente), arma los ítems y aplica el chequeo de cupo si el pago es a crédito.
type CreateSaleUseCase struct {
	saleRepo     repository.SaleRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	saleRepo repository.SaleRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{saleRepo: saleRepo, customerRepo: customerRepo, productRepo: productRepo}
}

// Execute valida y persiste la venta con sus ítems. El chequeo de crédito
// corre antes de persistir: una venta que no pasa el cupo nunca se guarda.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, userID string, in dto.CreateSaleRequest) (*dto.CreateSaleResponse, error) {
	customer, err := uc.customerRepo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, in.CustomerID)
	}
	if customer.IsBlocked() {
		return nil, fmt.Errorf("%w: el cliente está bloqueado", domain.ErrInvalidInput)
	}
	if !customer.IsActive() {
		return nil, fmt.Errorf("%w: el cliente no está activo", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la venta debe tener al menos un ítem", domain.ErrInvalidInput)
	}

	sale := entity.NewSale(customer.ID, customer.Name, userID)
	if in.Notes != "" {
		sale.UpdateNotes(in.Notes)
	}

	for _, itemIn := range in.Items {
		item, err := uc.buildItem(itemIn)
		if err != nil {
			return nil, err
		}
		if err := sale.AddItem(item); err != nil {
			return nil, err
		}
	}

	saleDiscount, err := buildDiscount(in.SaleDiscountType, in.SaleDiscountValue)
	if err != nil {
		return nil, err
	}
	if err := sale.ApplySaleDiscount(saleDiscount); err != nil {
		return nil, err
	}

	if in.PaymentMethod != "" {
		if err := sale.SetPaymentMethod(entity.PaymentMethod(in.PaymentMethod)); err != nil {
			return nil, err
		}
	}

	total, err := sale.Total()
	if err != nil {
		return nil, err
	}
	if sale.PaymentMethod == entity.PaymentCredit && !customer.CanPurchase(total.Amount()) {
		return nil, fmt.Errorf("%w: disponible %s, requerido %s", domain.ErrInsufficientCredit, customer.AvailableCredit(), total.Amount())
	}

	if err := uc.saleRepo.Save(sale); err != nil {
		return nil, err
	}
	if err := uc.saleRepo.SaveItems(sale.ID, sale.Items); err != nil {
		return nil, err
	}

	return &dto.CreateSaleResponse{
		ID:         sale.ID,
		Total:      total.Amount(),
		ItemsCount: len(sale.Items),
	}, nil
}

// buildItem valida el producto y resuelve precio, cantidad y descuento de la línea.
func (uc *CreateSaleUseCase) buildItem(in dto.SaleItemRequest) (*entity.SaleItem, error) {
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, in.ProductID)
	}
	if !product.IsActive() {
		return nil, fmt.Errorf("%w: el producto %s no está activo", domain.ErrInvalidInput, product.Name)
	}

	quantity, err := valueobject.NewQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice := product.Price
	if in.UnitPrice != nil {
		unitPrice, err = valueobject.NewMoney(*in.UnitPrice, product.Price.Currency())
		if err != nil {
			return nil, err
		}
	}

	discount, err := buildDiscount(in.DiscountType, in.DiscountValue)
	if err != nil {
		return nil, err
	}

	return entity.NewSaleItem(product.ID, product.Name, quantity, unitPrice, discount)
}
