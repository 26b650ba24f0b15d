package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

func TestNewPercentageDiscount_RangoValido(t *testing.T) {
	_, err := valueobject.NewPercentageDiscount(decimal.NewFromInt(101))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = valueobject.NewPercentageDiscount(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = valueobject.NewPercentageDiscount(decimal.NewFromInt(100))
	assert.NoError(t, err)
}

func TestNewFixedDiscount_NegativoFalla(t *testing.T) {
	_, err := valueobject.NewFixedDiscount(decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewDiscount_TipoDesconocidoFalla(t *testing.T) {
	_, err := valueobject.NewDiscount("coupon", decimal.NewFromInt(5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDiscount_PorcentualCalculaSobreLaBase(t *testing.T) {
	d, err := valueobject.NewPercentageDiscount(decimal.NewFromInt(10))
	require.NoError(t, err)

	base := decimal.NewFromInt(200)
	assert.True(t, d.CalculateDiscount(base).Equal(decimal.NewFromInt(20)))
	assert.True(t, d.Apply(base).Equal(decimal.NewFromInt(180)))
}

func TestDiscount_FijoSeAcotaALaBase(t *testing.T) {
	// Un descuento fijo mayor que la base descuenta exactamente la base:
	// el total nunca queda negativo.
	d, err := valueobject.NewFixedDiscount(decimal.NewFromInt(50))
	require.NoError(t, err)

	base := decimal.NewFromInt(30)
	assert.True(t, d.CalculateDiscount(base).Equal(base))
	assert.True(t, d.Apply(base).IsZero())
}

func TestDiscount_CienPorCientoDejaTotalCero(t *testing.T) {
	d, err := valueobject.NewPercentageDiscount(decimal.NewFromInt(100))
	require.NoError(t, err)

	assert.True(t, d.Apply(decimal.RequireFromString("99.99")).IsZero())
}

func TestNoDiscount_NoDescuentaNada(t *testing.T) {
	d := valueobject.NoDiscount()
	assert.True(t, d.IsNone())
	base := decimal.RequireFromString("42.42")
	assert.True(t, d.Apply(base).Equal(base))
}
