package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// DiscountType tipo de descuento.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

var oneHundred = decimal.NewFromInt(100)

// Discount descuento porcentual o de monto fijo (value object inmutable).
// El descuento calculado nunca supera la base; aplicarlo nunca deja un monto negativo.
type Discount struct {
	kind  DiscountType
	value decimal.Decimal
}

// NewPercentageDiscount descuento porcentual; el valor debe estar en [0, 100].
func NewPercentageDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() || value.GreaterThan(oneHundred) {
		return Discount{}, fmt.Errorf("%w: porcentaje de descuento fuera de [0, 100]: %s", domain.ErrInvalidInput, value)
	}
	return Discount{kind: DiscountPercentage, value: value}, nil
}

// NewFixedDiscount descuento de monto fijo; el valor no puede ser negativo.
func NewFixedDiscount(value decimal.Decimal) (Discount, error) {
	if value.IsNegative() {
		return Discount{}, fmt.Errorf("%w: descuento fijo negativo: %s", domain.ErrInvalidInput, value)
	}
	return Discount{kind: DiscountFixed, value: value}, nil
}

// NoDiscount descuento nulo (fijo de valor 0). Es el zero value útil del tipo.
func NoDiscount() Discount {
	return Discount{kind: DiscountFixed, value: decimal.Zero}
}

// NewDiscount construye desde tipo y valor en texto/número (entrada de API).
func NewDiscount(kind string, value decimal.Decimal) (Discount, error) {
	switch DiscountType(kind) {
	case DiscountPercentage:
		return NewPercentageDiscount(value)
	case DiscountFixed:
		return NewFixedDiscount(value)
	default:
		return Discount{}, fmt.Errorf("%w: tipo de descuento desconocido: %q", domain.ErrInvalidInput, kind)
	}
}

// Type devuelve el tipo de descuento.
func (d Discount) Type() DiscountType {
	if d.kind == "" {
		return DiscountFixed
	}
	return d.kind
}

// Value devuelve el valor configurado (porcentaje o monto fijo).
func (d Discount) Value() decimal.Decimal {
	return d.value
}

// CalculateDiscount monto a descontar sobre una base dada.
// Porcentual: base*valor/100. Fijo: min(valor, base) — nunca más que la base.
func (d Discount) CalculateDiscount(amount decimal.Decimal) decimal.Decimal {
	if d.Type() == DiscountPercentage {
		return amount.Mul(d.value).Div(oneHundred)
	}
	if d.value.GreaterThan(amount) {
		return amount
	}
	return d.value
}

// Apply devuelve la base menos el descuento, acotado a >= 0.
func (d Discount) Apply(amount decimal.Decimal) decimal.Decimal {
	result := amount.Sub(d.CalculateDiscount(amount))
	if result.IsNegative() {
		return decimal.Zero
	}
	return result
}

// IsNone indica si el descuento no descuenta nada.
func (d Discount) IsNone() bool {
	return d.value.IsZero()
}

// Equal igualdad estructural (tipo y valor).
func (d Discount) Equal(other Discount) bool {
	return d.Type() == other.Type() && d.value.Equal(other.value)
}
