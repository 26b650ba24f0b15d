package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

func newTestCustomer(t *testing.T) *entity.Customer {
	t.Helper()
	c, err := entity.NewCustomer("Cliente Uno", "12345678901", entity.CustomerIndividual)
	require.NoError(t, err)
	return c
}

func TestNewCustomer_NombreObligatorio(t *testing.T) {
	_, err := entity.NewCustomer("  ", "doc", entity.CustomerIndividual)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = entity.NewCustomer("ab", "doc", entity.CustomerIndividual)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nombre de menos de 3 caracteres debe fallar")
}

func TestCustomer_SinCupoCompraSinTope(t *testing.T) {
	c := newTestCustomer(t)

	// CreditLimit cero significa "sin control de cupo": compra cualquier monto,
	// pero HasAvailableCredit es false porque no hay cupo configurado.
	assert.True(t, c.CanPurchase(decimal.NewFromInt(1_000_000)))
	assert.False(t, c.HasAvailableCredit(decimal.NewFromInt(1)))
	assert.True(t, c.AvailableCredit().IsZero())
}

func TestCustomer_ConCupoRespetaElDisponible(t *testing.T) {
	c := newTestCustomer(t)
	require.NoError(t, c.SetCreditLimit(decimal.NewFromInt(1000)))
	require.NoError(t, c.AddDebt(decimal.NewFromInt(600)))

	assert.True(t, c.AvailableCredit().Equal(decimal.NewFromInt(400)))
	assert.True(t, c.CanPurchase(decimal.NewFromInt(400)))
	assert.False(t, c.CanPurchase(decimal.NewFromInt(401)))
}

func TestCustomer_BloqueadoOInactivoNoCompra(t *testing.T) {
	c := newTestCustomer(t)
	c.Block()
	assert.False(t, c.CanPurchase(decimal.NewFromInt(1)))

	c = newTestCustomer(t)
	c.Deactivate()
	assert.False(t, c.CanPurchase(decimal.NewFromInt(1)))
}

func TestCustomer_SetCreditLimitNegativoFalla(t *testing.T) {
	c := newTestCustomer(t)
	err := c.SetCreditLimit(decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCustomer_Deuda(t *testing.T) {
	c := newTestCustomer(t)
	require.NoError(t, c.AddDebt(decimal.NewFromInt(100)))
	require.NoError(t, c.ReduceDebt(decimal.NewFromInt(40)))
	assert.True(t, c.CurrentDebt.Equal(decimal.NewFromInt(60)))

	// El pago no puede superar la deuda.
	err := c.ReduceDebt(decimal.NewFromInt(61))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Montos no positivos fallan en ambas direcciones.
	assert.ErrorIs(t, c.AddDebt(decimal.Zero), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.ReduceDebt(decimal.NewFromInt(-5)), domain.ErrInvalidInput)
}

func TestCustomer_DeudaMayorAlCupoDejaDisponibleCero(t *testing.T) {
	c := newTestCustomer(t)
	require.NoError(t, c.SetCreditLimit(decimal.NewFromInt(100)))
	require.NoError(t, c.AddDebt(decimal.NewFromInt(150)))

	assert.True(t, c.AvailableCredit().IsZero(), "el disponible se acota a cero, nunca negativo")
	assert.False(t, c.CanPurchase(decimal.NewFromInt(1)))
}
