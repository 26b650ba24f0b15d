package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

func money(t *testing.T, amount string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoney(decimal.RequireFromString(amount), valueobject.DefaultCurrency)
	require.NoError(t, err)
	return m
}

func TestNewMoney_MontoNegativoFalla(t *testing.T) {
	_, err := valueobject.NewMoney(decimal.NewFromInt(-1), "BRL")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestNewMoney_MonedaVaciaUsaLaPorDefecto(t *testing.T) {
	m, err := valueobject.NewMoney(decimal.NewFromInt(10), "")
	require.NoError(t, err)
	assert.Equal(t, valueobject.DefaultCurrency, m.Currency())
}

func TestMoney_AddYSub(t *testing.T) {
	a := money(t, "10.50")
	b := money(t, "4.25")

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Amount().Equal(decimal.RequireFromString("14.75")))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Amount().Equal(decimal.RequireFromString("6.25")))
}

func TestMoney_SubResultadoNegativoFalla(t *testing.T) {
	a := money(t, "5")
	b := money(t, "10")

	_, err := a.Sub(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestMoney_MonedasDistintasFallan(t *testing.T) {
	brl := money(t, "10")
	usd, err := valueobject.NewMoney(decimal.NewFromInt(10), "USD")
	require.NoError(t, err)

	_, err = brl.Add(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = brl.Sub(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)

	_, err = brl.GreaterThan(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoney_MulPorCantidad(t *testing.T) {
	unit := money(t, "3.33")
	total := unit.Mul(decimal.NewFromInt(3))
	assert.True(t, total.Amount().Equal(decimal.RequireFromString("9.99")))
	assert.Equal(t, unit.Currency(), total.Currency())
}

func TestZeroMoney(t *testing.T) {
	z := valueobject.ZeroMoney()
	assert.True(t, z.IsZero())
	assert.False(t, z.IsPositive())
	assert.Equal(t, valueobject.DefaultCurrency, z.Currency())
}
