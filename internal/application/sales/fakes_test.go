package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: implementan los puertos de repositorio sin base de datos.
// ──────────────────────────────────────────────────────────────────────────────

type fakeSaleRepo struct {
	sales map[string]*entity.Sale
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: map[string]*entity.Sale{}}
}

func (r *fakeSaleRepo) Save(sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) SaveItems(saleID string, items []*entity.SaleItem) error {
	if sale, ok := r.sales[saleID]; ok {
		sale.Items = items
	}
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	return r.sales[id], nil
}

func (r *fakeSaleRepo) ListByCustomer(customerID string, _ repository.SaleFilters) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List(_ repository.SaleFilters) ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSaleRepo) ListPendingApproval() ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		if s.IsPending() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) Update(sale *entity.Sale) error {
	r.sales[sale.ID] = sale
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.sales, id)
	return nil
}

type fakeStockRepo struct {
	stocks map[string]*entity.Stock // clave productID/warehouseID
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}}
}

func stockKey(productID, warehouseID string) string {
	return productID + "/" + warehouseID
}

func (r *fakeStockRepo) put(stock *entity.Stock) {
	r.stocks[stockKey(stock.ProductID, stock.WarehouseID)] = stock
}

func (r *fakeStockRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Stock, error) {
	return r.stocks[stockKey(productID, warehouseID)], nil
}

func (r *fakeStockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	return r.stocks[stockKey(productID, warehouseID)], nil
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
	r.put(stock)
	return nil
}

func (r *fakeStockRepo) Update(stock *entity.Stock) error {
	r.put(stock)
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

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return r.customers[id], nil
}

func (r *fakeCustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Document == document {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCustomerRepo) List(_, _ int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range r.customers {
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Update(c *entity.Customer) error {
	r.customers[c.ID] = c
	return nil
}

func (r *fakeCustomerRepo) Delete(id string) error {
	delete(r.customers, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List(_, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// fakeTxRunner pasa los fakes directo a la función, sin transacción real.
type fakeTxRunner struct {
	saleRepo     *fakeSaleRepo
	stockRepo    *fakeStockRepo
	movementRepo *fakeMovementRepo
	customerRepo *fakeCustomerRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	saleRepo repository.SaleRepository,
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	return fn(r.saleRepo, r.stockRepo, r.movementRepo, r.customerRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Builders de entidades para los escenarios
// ──────────────────────────────────────────────────────────────────────────────

func buildCustomer(t *testing.T) *entity.Customer {
	t.Helper()
	c, err := entity.NewCustomer("Cliente Uno", "12345678901", entity.CustomerIndividual)
	require.NoError(t, err)
	return c
}

func buildProduct(t *testing.T, name, sku, price string) *entity.Product {
	t.Helper()
	money, err := valueobject.NewMoney(decimal.RequireFromString(price), valueobject.DefaultCurrency)
	require.NoError(t, err)
	p, err := entity.NewProduct(name, sku, money)
	require.NoError(t, err)
	return p
}

func buildStock(t *testing.T, productID, warehouseID, quantity string) *entity.Stock {
	t.Helper()
	q, err := valueobject.NewQuantity(decimal.RequireFromString(quantity))
	require.NoError(t, err)
	return entity.NewStock(productID, warehouseID, q)
}

func buildSaleWithItems(t *testing.T, customer *entity.Customer, items ...*entity.SaleItem) *entity.Sale {
	t.Helper()
	sale := entity.NewSale(customer.ID, customer.Name, "seller-1")
	for _, item := range items {
		require.NoError(t, sale.AddItem(item))
	}
	return sale
}

func buildSaleItem(t *testing.T, product *entity.Product, quantity string) *entity.SaleItem {
	t.Helper()
	q, err := valueobject.NewQuantity(decimal.RequireFromString(quantity))
	require.NoError(t, err)
	item, err := entity.NewSaleItem(product.ID, product.Name, q, product.Price, valueobject.NoDiscount())
	require.NoError(t, err)
	return item
}
