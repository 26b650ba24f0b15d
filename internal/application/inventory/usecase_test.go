package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStockRepo struct {
	stocks map[string]*entity.Stock
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}}
}

func key(productID, warehouseID string) string { return productID + "/" + warehouseID }

func (r *fakeStockRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Stock, error) {
	return r.stocks[key(productID, warehouseID)], nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.stocks[key(productID, warehouseID)], nil
}

func (r *fakeStockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	var out []*entity.Stock
	for _, s := range r.stocks {
		if s.WarehouseID == warehouseID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) Save(stock *entity.Stock) error {
	r.stocks[key(stock.ProductID, stock.WarehouseID)] = stock
	return nil
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	r.stocks[key(stock.ProductID, stock.WarehouseID)] = stock
	return nil
}

type fakeMovementRepo struct {
	movements []*entity.StockMovement
}

func (r *fakeMovementRepo) Create(m *entity.StockMovement) error {
	r.movements = append(r.movements, m)
	return nil
}

func (r *fakeMovementRepo) ListByProduct(productID string, _, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *fakeMovementRepo) ListByStock(stockID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.movements {
		if m.StockID == stockID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func (r *fakeProductRepo) Create(p *entity.Product) error          { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) { return r.products[id], nil }
func (r *fakeProductRepo) GetBySKU(string) (*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error)   { return nil, nil }
func (r *fakeProductRepo) Update(p *entity.Product) error          { r.products[p.ID] = p; return nil }
func (r *fakeProductRepo) Delete(id string) error                  { delete(r.products, id); return nil }

type fakeWarehouseRepo struct {
	warehouses map[string]*entity.Warehouse
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error { r.warehouses[w.ID] = w; return nil }
func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	return r.warehouses[id], nil
}
func (r *fakeWarehouseRepo) GetByCode(string) (*entity.Warehouse, error) { return nil, nil }
func (r *fakeWarehouseRepo) List(_, _ int) ([]*entity.Warehouse, error)  { return nil, nil }
func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error            { r.warehouses[w.ID] = w; return nil }

// fakeTxRunner pasa los fakes directo a la función, sin transacción real.
type fakeTxRunner struct {
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	return fn(r.stockRepo, r.movementRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	uc           *inventory.RegisterMovementUseCase
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo

	product *entity.Product
	whA     *entity.Warehouse
	whB     *entity.Warehouse
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	stockRepo := newFakeStockRepo()
	movementRepo := &fakeMovementRepo{}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{}}
	warehouseRepo := &fakeWarehouseRepo{warehouses: map[string]*entity.Warehouse{}}

	price, err := valueobject.NewMoney(decimal.NewFromInt(10), valueobject.DefaultCurrency)
	require.NoError(t, err)
	product, err := entity.NewProduct("Mouse", "SKU-1", price)
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(product))

	whA, err := entity.NewWarehouse("Bodega Central", "BC", entity.WarehouseMain)
	require.NoError(t, err)
	whB, err := entity.NewWarehouse("Sucursal Norte", "SN", entity.WarehouseBranch)
	require.NoError(t, err)
	require.NoError(t, warehouseRepo.Create(whA))
	require.NoError(t, warehouseRepo.Create(whB))

	return &fixture{
		uc: inventory.NewRegisterMovementUseCase(
			&fakeTxRunner{stockRepo: stockRepo, movementRepo: movementRepo},
			productRepo, warehouseRepo,
		),
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		product:      product,
		whA:          whA,
		whB:          whB,
	}
}

func (f *fixture) seedStock(t *testing.T, warehouseID, quantity string) *entity.Stock {
	t.Helper()
	q, err := valueobject.NewQuantity(decimal.RequireFromString(quantity))
	require.NoError(t, err)
	stock := entity.NewStock(f.product.ID, warehouseID, q)
	require.NoError(t, f.stockRepo.Save(stock))
	return stock
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_EntradaCreaStockSiNoExiste(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementEntry,
		Quantity:    decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	stock, err := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whA.ID)
	require.NoError(t, err)
	require.NotNil(t, stock, "la primera entrada crea la fila de stock")
	assert.True(t, stock.Quantity.Decimal().Equal(decimal.NewFromInt(20)))

	require.Len(t, f.movementRepo.movements, 1)
	mv := f.movementRepo.movements[0]
	assert.Equal(t, entity.MovementEntry, mv.Type)
	assert.Equal(t, entity.ReasonPurchase, mv.Reason, "sin motivo explícito la entrada registra purchase")
	assert.True(t, mv.PreviousQuantity.IsZero())
	assert.True(t, mv.NewQuantity.Decimal().Equal(decimal.NewFromInt(20)))
}

func TestRegisterMovement_EntradaAcumulaSobreStockExistente(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, f.whA.ID, "5")

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementEntry,
		Quantity:    decimal.NewFromInt(3),
	})
	require.NoError(t, err)

	stock, _ := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whA.ID)
	assert.True(t, stock.Quantity.Decimal().Equal(decimal.NewFromInt(8)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_SalidaSinFilaDeStockFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementExit,
		Quantity:    decimal.NewFromInt(1),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_SalidaRespetaElDisponible(t *testing.T) {
	f := newFixture(t)
	stock := f.seedStock(t, f.whA.ID, "10")
	q, _ := valueobject.NewQuantity(decimal.NewFromInt(7))
	require.NoError(t, stock.Reserve(q))

	// Disponible 3: sacar 5 debe fallar aunque el físico sea 10.
	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementExit,
		Quantity:    decimal.NewFromInt(5),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

func TestRegisterMovement_Perdida(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, f.whA.ID, "10")

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementLoss,
		Reason:      entity.ReasonDamaged,
		Quantity:    decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	stock, _ := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whA.ID)
	assert.True(t, stock.Quantity.Decimal().Equal(decimal.NewFromInt(8)))
	require.Len(t, f.movementRepo.movements, 1)
	assert.Equal(t, entity.ReasonDamaged, f.movementRepo.movements[0].Reason)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_AjustePositivoYNegativo(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, f.whA.ID, "10")

	require.NoError(t, f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementAdjustment,
		Quantity:    decimal.NewFromInt(5),
	}))
	require.NoError(t, f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:      "user-1",
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementAdjustment,
		Quantity:    decimal.NewFromInt(-3),
	}))

	stock, _ := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whA.ID)
	assert.True(t, stock.Quantity.Decimal().Equal(decimal.NewFromInt(12)))

	require.Len(t, f.movementRepo.movements, 2)
	for _, mv := range f.movementRepo.movements {
		assert.Equal(t, entity.ReasonInventory, mv.Reason, "los ajustes sin motivo registran inventory")
		assert.True(t, mv.Quantity.Decimal().IsPositive(), "la cantidad del registro siempre es positiva")
	}
}

func TestRegisterMovement_CantidadCeroFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementAdjustment,
		Quantity:    decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transferencias
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_TransferenciaMueveEntreBodegas(t *testing.T) {
	f := newFixture(t)
	f.seedStock(t, f.whA.ID, "10")

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		UserID:          "user-1",
		ProductID:       f.product.ID,
		FromWarehouseID: f.whA.ID,
		ToWarehouseID:   f.whB.ID,
		Type:            entity.MovementTransfer,
		Quantity:        decimal.NewFromInt(4),
	})
	require.NoError(t, err)

	origin, _ := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whA.ID)
	dest, _ := f.stockRepo.GetByProductAndWarehouse(f.product.ID, f.whB.ID)
	require.NotNil(t, dest, "la transferencia crea la fila destino si no existe")
	assert.True(t, origin.Quantity.Decimal().Equal(decimal.NewFromInt(6)))
	assert.True(t, dest.Quantity.Decimal().Equal(decimal.NewFromInt(4)))

	// Dos movimientos cruzados referenciándose como transferencia.
	require.Len(t, f.movementRepo.movements, 2)
	out, in := f.movementRepo.movements[0], f.movementRepo.movements[1]
	assert.Equal(t, entity.ReasonTransferOut, out.Reason)
	assert.Equal(t, entity.ReasonTransferIn, in.Reason)
	assert.Equal(t, dest.ID, out.ReferenceID)
	assert.Equal(t, origin.ID, in.ReferenceID)
	assert.Equal(t, "transfer", out.ReferenceType)
}

func TestRegisterMovement_TransferenciaMismaBodegaFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:       f.product.ID,
		FromWarehouseID: f.whA.ID,
		ToWarehouseID:   f.whA.ID,
		Type:            entity.MovementTransfer,
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_TransferenciaSinStockOrigenFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:       f.product.ID,
		FromWarehouseID: f.whA.ID,
		ToWarehouseID:   f.whB.ID,
		Type:            entity.MovementTransfer,
		Quantity:        decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Validaciones generales
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterMovement_TipoDesconocidoFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:   f.product.ID,
		WarehouseID: f.whA.ID,
		Type:        entity.MovementType("teleport"),
		Quantity:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegisterMovement_ProductoInexistenteFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:   "no-existe",
		WarehouseID: f.whA.ID,
		Type:        entity.MovementEntry,
		Quantity:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegisterMovement_BodegaInexistenteFalla(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RegisterMovement(context.Background(), inventory.MovementInput{
		ProductID:   f.product.ID,
		WarehouseID: "no-existe",
		Type:        entity.MovementEntry,
		Quantity:    decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
