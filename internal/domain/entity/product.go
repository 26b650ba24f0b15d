package entity

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// ProductStatus estados del producto en el catálogo.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Product producto del catálogo. Las ventas toman de aquí el precio vigente
// y el snapshot del nombre al momento de agregar el ítem.
type Product struct {
	Base
	Name          string
	Description   string
	SKU           string
	Price         valueobject.Money
	Status        ProductStatus
	MinStockLevel valueobject.Quantity
	Unit          string
}

// NewProduct crea un producto activo con precio de venta.
func NewProduct(name, sku string, price valueobject.Money) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del producto es obligatorio", domain.ErrInvalidInput)
	}
	sku = strings.ToUpper(strings.TrimSpace(sku))
	if sku == "" {
		return nil, fmt.Errorf("%w: el SKU es obligatorio", domain.ErrInvalidInput)
	}
	if !price.IsPositive() {
		return nil, fmt.Errorf("%w: el precio debe ser mayor a cero", domain.ErrInvalidInput)
	}
	return &Product{
		Base:          NewBase(),
		Name:          name,
		SKU:           sku,
		Price:         price,
		Status:        ProductStatusActive,
		MinStockLevel: valueobject.ZeroQuantity(),
		Unit:          "unidad",
	}, nil
}

// IsActive indica si el producto admite ventas.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// UpdatePrice cambia el precio de venta; debe ser mayor a cero.
func (p *Product) UpdatePrice(price valueobject.Money) error {
	if !price.IsPositive() {
		return fmt.Errorf("%w: el precio debe ser mayor a cero", domain.ErrInvalidInput)
	}
	p.Price = price
	p.Touch()
	return nil
}

// Activate / Deactivate / Discontinue cambian el estado del producto.
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.Touch()
}

func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.Touch()
}

func (p *Product) Discontinue() {
	p.Status = ProductStatusDiscontinued
	p.Touch()
}
