package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// SaleItem línea de una venta. Pertenece exclusivamente a su Sale padre;
// nadie la persiste ni la muta por fuera del agregado.
type SaleItem struct {
	Base
	ProductID   string
	ProductName string // snapshot del nombre al momento de agregar
	Quantity    valueobject.Quantity
	UnitPrice   valueobject.Money
	Discount    valueobject.Discount
}

// NewSaleItem crea una línea validada: cantidad y precio unitario mayores a cero.
func NewSaleItem(productID, productName string, quantity valueobject.Quantity, unitPrice valueobject.Money, discount valueobject.Discount) (*SaleItem, error) {
	if quantity.IsZero() {
		return nil, fmt.Errorf("%w: la cantidad del ítem debe ser mayor a cero", domain.ErrInvalidInput)
	}
	if !unitPrice.IsPositive() {
		return nil, fmt.Errorf("%w: el precio unitario debe ser mayor a cero", domain.ErrInvalidInput)
	}
	return &SaleItem{
		Base:        NewBase(),
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Discount:    discount,
	}, nil
}

// Subtotal precio unitario por cantidad, antes de descuento.
func (i *SaleItem) Subtotal() valueobject.Money {
	return i.UnitPrice.Mul(i.Quantity.Decimal())
}

// DiscountAmount monto descontado sobre el subtotal (el fijo se acota al subtotal).
func (i *SaleItem) DiscountAmount() decimal.Decimal {
	return i.Discount.CalculateDiscount(i.Subtotal().Amount())
}

// Total subtotal con el descuento del ítem aplicado.
func (i *SaleItem) Total() valueobject.Money {
	subtotal := i.Subtotal()
	total, _ := valueobject.NewMoney(i.Discount.Apply(subtotal.Amount()), subtotal.Currency())
	return total
}

// UpdateQuantity cambia la cantidad; debe seguir siendo mayor a cero.
func (i *SaleItem) UpdateQuantity(quantity valueobject.Quantity) error {
	if quantity.IsZero() {
		return fmt.Errorf("%w: la cantidad del ítem debe ser mayor a cero", domain.ErrInvalidInput)
	}
	i.Quantity = quantity
	i.Touch()
	return nil
}

// UpdatePrice cambia el precio unitario; debe ser mayor a cero.
func (i *SaleItem) UpdatePrice(price valueobject.Money) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: el precio unitario debe ser mayor a cero", domain.ErrInvalidInput)
	}
	i.UnitPrice = price
	i.Touch()
	return nil
}

// ApplyDiscount reemplaza el descuento del ítem.
func (i *SaleItem) ApplyDiscount(discount valueobject.Discount) {
	i.Discount = discount
	i.Touch()
}
