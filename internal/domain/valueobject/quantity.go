package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// Quantity cantidad no negativa de inventario (value object inmutable).
// Toda operación devuelve un valor nuevo; nunca se muta el receptor.
type Quantity struct {
	value decimal.Decimal
}

// NewQuantity crea una cantidad validada. Falla si el valor es negativo.
func NewQuantity(value decimal.Decimal) (Quantity, error) {
	if value.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %s", domain.ErrNegativeQuantity, value)
	}
	return Quantity{value: value}, nil
}

// ZeroQuantity cantidad cero.
func ZeroQuantity() Quantity {
	return Quantity{value: decimal.Zero}
}

// Decimal devuelve el valor numérico.
func (q Quantity) Decimal() decimal.Decimal {
	return q.value
}

// Add suma dos cantidades.
func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value.Add(other.value)}
}

// Sub resta; falla si el resultado sería negativo.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	result := q.value.Sub(other.value)
	if result.IsNegative() {
		return Quantity{}, fmt.Errorf("%w: %s - %s", domain.ErrNegativeQuantity, q.value, other.value)
	}
	return Quantity{value: result}, nil
}

// IsZero indica si la cantidad es cero.
func (q Quantity) IsZero() bool {
	return q.value.IsZero()
}

// GreaterThan compara estrictamente.
func (q Quantity) GreaterThan(other Quantity) bool {
	return q.value.GreaterThan(other.value)
}

// LessThan compara estrictamente.
func (q Quantity) LessThan(other Quantity) bool {
	return q.value.LessThan(other.value)
}

// IsSufficientFor indica si esta cantidad alcanza para cubrir la requerida (>=).
func (q Quantity) IsSufficientFor(required Quantity) bool {
	return q.value.GreaterThanOrEqual(required.value)
}

// Equal igualdad estructural.
func (q Quantity) Equal(other Quantity) bool {
	return q.value.Equal(other.value)
}

// String representación legible (para mensajes de error y logs).
func (q Quantity) String() string {
	return q.value.String()
}
