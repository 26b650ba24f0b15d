package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// DefaultCurrency moneda por defecto del sistema.
const DefaultCurrency = "BRL"

// Money monto monetario no negativo con moneda (value object inmutable).
// Operar dos Money de monedas distintas falla con ErrCurrencyMismatch.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney crea un monto validado en la moneda indicada. Falla si es negativo.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s", domain.ErrNegativeAmount, amount)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}, nil
}

// ZeroMoney monto cero en la moneda por defecto.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, currency: DefaultCurrency}
}

// Amount devuelve el monto numérico.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency devuelve el código de moneda.
func (m Money) Currency() string {
	return m.currency
}

// IsZero indica si el monto es cero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive indica si el monto es mayor que cero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add suma; falla si las monedas difieren.
func (m Money) Add(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

// Sub resta; falla si las monedas difieren o el resultado sería negativo.
func (m Money) Sub(other Money) (Money, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return Money{}, err
	}
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", domain.ErrNegativeAmount, m.amount, other.amount)
	}
	return Money{amount: result, currency: m.currency}, nil
}

// Mul multiplica el monto por un factor (ej. cantidad de un ítem).
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

// GreaterThan compara montos; falla si las monedas difieren.
func (m Money) GreaterThan(other Money) (bool, error) {
	if err := m.ensureSameCurrency(other); err != nil {
		return false, err
	}
	return m.amount.GreaterThan(other.amount), nil
}

// Equal igualdad estructural (monto y moneda).
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// String representación legible, ej. "25.50 BRL".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount, m.currency)
}

func (m Money) ensureSameCurrency(other Money) error {
	if m.currency != other.currency {
		return fmt.Errorf("%w: %s vs %s", domain.ErrCurrencyMismatch, m.currency, other.currency)
	}
	return nil
}
