package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newTestSale(t *testing.T) *entity.Sale {
	t.Helper()
	return entity.NewSale("cust-1", "Cliente Uno", "user-1")
}

func newTestItem(t *testing.T, productID, quantity, unitPrice string) *entity.SaleItem {
	t.Helper()
	q, err := valueobject.NewQuantity(decimal.RequireFromString(quantity))
	require.NoError(t, err)
	price, err := valueobject.NewMoney(decimal.RequireFromString(unitPrice), valueobject.DefaultCurrency)
	require.NoError(t, err)
	item, err := entity.NewSaleItem(productID, "Producto "+productID, q, price, valueobject.NoDiscount())
	require.NoError(t, err)
	return item
}

func saleWithItem(t *testing.T) *entity.Sale {
	t.Helper()
	sale := newTestSale(t)
	require.NoError(t, sale.AddItem(newTestItem(t, "prod-1", "2", "10")))
	return sale
}

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_CicloFeliz(t *testing.T) {
	sale := saleWithItem(t)
	assert.True(t, sale.IsDraft())

	require.NoError(t, sale.SubmitForApproval())
	assert.True(t, sale.IsPending())

	require.NoError(t, sale.Approve("admin-1"))
	assert.True(t, sale.IsApproved())
	assert.Equal(t, "admin-1", sale.ApprovedBy)
	require.NotNil(t, sale.ApprovedAt)

	require.NoError(t, sale.StartProcessing())
	require.NoError(t, sale.Complete())
	assert.True(t, sale.IsCompleted())
}

func TestSale_SubmitSinItemsFalla(t *testing.T) {
	sale := newTestSale(t)
	err := sale.SubmitForApproval()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSale_TransicionesInvalidas(t *testing.T) {
	// Preparadores de estado origen.
	enDraft := func(t *testing.T, s *entity.Sale) {}
	enPending := func(t *testing.T, s *entity.Sale) {
		require.NoError(t, s.SubmitForApproval())
	}
	enApproved := func(t *testing.T, s *entity.Sale) {
		require.NoError(t, s.SubmitForApproval())
		require.NoError(t, s.Approve("admin-1"))
	}
	enCompleted := func(t *testing.T, s *entity.Sale) {
		require.NoError(t, s.SubmitForApproval())
		require.NoError(t, s.Approve("admin-1"))
		require.NoError(t, s.StartProcessing())
		require.NoError(t, s.Complete())
	}
	enCancelled := func(t *testing.T, s *entity.Sale) {
		require.NoError(t, s.Cancel())
	}

	cases := []struct {
		name string
		prep func(t *testing.T, s *entity.Sale)
		run  func(s *entity.Sale) error
		want entity.SaleStatus
	}{
		{"aprobar un borrador", enDraft, func(s *entity.Sale) error { return s.Approve("u") }, entity.SaleStatusDraft},
		{"rechazar un borrador", enDraft, func(s *entity.Sale) error { return s.Reject("u", "motivo") }, entity.SaleStatusDraft},
		{"procesar un borrador", enDraft, func(s *entity.Sale) error { return s.StartProcessing() }, entity.SaleStatusDraft},
		{"completar un borrador", enDraft, func(s *entity.Sale) error { return s.Complete() }, entity.SaleStatusDraft},
		{"cancelar-aprobada un borrador", enDraft, func(s *entity.Sale) error { return s.CancelApproved() }, entity.SaleStatusDraft},
		{"reenviar una pendiente", enPending, func(s *entity.Sale) error { return s.SubmitForApproval() }, entity.SaleStatusPending},
		{"procesar una pendiente", enPending, func(s *entity.Sale) error { return s.StartProcessing() }, entity.SaleStatusPending},
		{"completar una pendiente", enPending, func(s *entity.Sale) error { return s.Complete() }, entity.SaleStatusPending},
		{"aprobar una aprobada", enApproved, func(s *entity.Sale) error { return s.Approve("u") }, entity.SaleStatusApproved},
		{"rechazar una aprobada", enApproved, func(s *entity.Sale) error { return s.Reject("u", "motivo") }, entity.SaleStatusApproved},
		{"completar una aprobada sin procesar", enApproved, func(s *entity.Sale) error { return s.Complete() }, entity.SaleStatusApproved},
		{"cancelar directo una aprobada", enApproved, func(s *entity.Sale) error { return s.Cancel() }, entity.SaleStatusApproved},
		{"enviar una completada", enCompleted, func(s *entity.Sale) error { return s.SubmitForApproval() }, entity.SaleStatusCompleted},
		{"aprobar una completada", enCompleted, func(s *entity.Sale) error { return s.Approve("u") }, entity.SaleStatusCompleted},
		{"cancelar una completada", enCompleted, func(s *entity.Sale) error { return s.Cancel() }, entity.SaleStatusCompleted},
		{"enviar una cancelada", enCancelled, func(s *entity.Sale) error { return s.SubmitForApproval() }, entity.SaleStatusCancelled},
		{"aprobar una cancelada", enCancelled, func(s *entity.Sale) error { return s.Approve("u") }, entity.SaleStatusCancelled},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sale := saleWithItem(t)
			tc.prep(t, sale)
			err := tc.run(sale)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
			assert.Equal(t, tc.want, sale.Status, "una transición ilegal no debe cambiar el estado")
		})
	}
}

func TestSale_RechazoVuelveEditable(t *testing.T) {
	sale := saleWithItem(t)
	require.NoError(t, sale.SubmitForApproval())
	require.NoError(t, sale.Reject("admin-1", "precio fuera de política"))

	assert.True(t, sale.IsRejected())
	assert.Equal(t, "precio fuera de política", sale.RejectionReason)
	require.NotNil(t, sale.RejectedAt)

	// Una venta rechazada se puede corregir y volver a agregar ítems.
	assert.True(t, sale.CanModifyItems())
	require.NoError(t, sale.AddItem(newTestItem(t, "prod-2", "1", "5")))
}

func TestSale_RechazoSinMotivoFalla(t *testing.T) {
	sale := saleWithItem(t)
	require.NoError(t, sale.SubmitForApproval())

	err := sale.Reject("admin-1", "   ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.True(t, sale.IsPending(), "un rechazo fallido no debe cambiar el estado")
}

func TestSale_Cancel(t *testing.T) {
	// draft, pending y rejected se cancelan directo.
	for _, prep := range []func(s *entity.Sale){
		func(s *entity.Sale) {},
		func(s *entity.Sale) { _ = s.SubmitForApproval() },
		func(s *entity.Sale) { _ = s.SubmitForApproval(); _ = s.Reject("u", "motivo") },
	} {
		sale := saleWithItem(t)
		prep(sale)
		require.NoError(t, sale.Cancel())
		assert.True(t, sale.IsCancelled())
	}

	// approved no se cancela con Cancel: exige CancelApproved (reservas liberadas antes).
	sale := saleWithItem(t)
	require.NoError(t, sale.SubmitForApproval())
	require.NoError(t, sale.Approve("admin-1"))
	assert.ErrorIs(t, sale.Cancel(), domain.ErrInvalidTransition)
	require.NoError(t, sale.CancelApproved())
	assert.True(t, sale.IsCancelled())
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_AddItemMismoProductoSumaCantidad(t *testing.T) {
	sale := newTestSale(t)
	require.NoError(t, sale.AddItem(newTestItem(t, "prod-1", "2", "10")))
	require.NoError(t, sale.AddItem(newTestItem(t, "prod-1", "3", "10")))

	require.Len(t, sale.Items, 1, "el mismo producto no debe generar líneas duplicadas")
	assert.True(t, sale.Items[0].Quantity.Decimal().Equal(decimal.NewFromInt(5)))
}

func TestSale_NoSeModificaFueraDeDraftORejected(t *testing.T) {
	sale := saleWithItem(t)
	require.NoError(t, sale.SubmitForApproval())

	err := sale.AddItem(newTestItem(t, "prod-2", "1", "5"))
	assert.ErrorIs(t, err, domain.ErrSaleNotModifiable)

	err = sale.RemoveItem(sale.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrSaleNotModifiable)

	q, _ := valueobject.NewQuantity(decimal.NewFromInt(9))
	err = sale.UpdateItemQuantity(sale.Items[0].ID, q)
	assert.ErrorIs(t, err, domain.ErrSaleNotModifiable)

	err = sale.ApplySaleDiscount(valueobject.NoDiscount())
	assert.ErrorIs(t, err, domain.ErrSaleNotModifiable)
}

func TestSale_RemoveItemInexistenteFalla(t *testing.T) {
	sale := saleWithItem(t)
	err := sale.RemoveItem("no-existe")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Totales
// ──────────────────────────────────────────────────────────────────────────────

func TestSale_TotalesConDescuentosPorItemYPorVenta(t *testing.T) {
	sale := newTestSale(t)

	// Ítem 1: 2 x 100 = 200, con 10% de descuento → 180.
	itemDiscount, err := valueobject.NewPercentageDiscount(decimal.NewFromInt(10))
	require.NoError(t, err)
	item1 := newTestItem(t, "prod-1", "2", "100")
	item1.ApplyDiscount(itemDiscount)
	require.NoError(t, sale.AddItem(item1))

	// Ítem 2: 1 x 50 = 50, sin descuento.
	require.NoError(t, sale.AddItem(newTestItem(t, "prod-2", "1", "50")))

	// Descuento de venta: 30 fijo sobre (180 + 50) = 230 → total 200.
	saleDiscount, err := valueobject.NewFixedDiscount(decimal.NewFromInt(30))
	require.NoError(t, err)
	require.NoError(t, sale.ApplySaleDiscount(saleDiscount))

	subtotal, err := sale.Subtotal()
	require.NoError(t, err)
	assert.True(t, subtotal.Amount().Equal(decimal.NewFromInt(250)))

	assert.True(t, sale.ItemsDiscount().Equal(decimal.NewFromInt(20)))

	before, err := sale.TotalBeforeDiscount()
	require.NoError(t, err)
	assert.True(t, before.Amount().Equal(decimal.NewFromInt(230)))

	saleDiscAmount, err := sale.SaleDiscountAmount()
	require.NoError(t, err)
	assert.True(t, saleDiscAmount.Equal(decimal.NewFromInt(30)))

	total, err := sale.Total()
	require.NoError(t, err)
	assert.True(t, total.Amount().Equal(decimal.NewFromInt(200)))
}

func TestSale_TotalSinItemsEsCero(t *testing.T) {
	sale := newTestSale(t)
	total, err := sale.Total()
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestSaleItem_Validaciones(t *testing.T) {
	price, _ := valueobject.NewMoney(decimal.NewFromInt(10), valueobject.DefaultCurrency)

	_, err := entity.NewSaleItem("p", "P", valueobject.ZeroQuantity(), price, valueobject.NoDiscount())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad cero debe fallar")

	q, _ := valueobject.NewQuantity(decimal.NewFromInt(1))
	_, err = entity.NewSaleItem("p", "P", q, valueobject.ZeroMoney(), valueobject.NoDiscount())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "precio cero debe fallar")
}
