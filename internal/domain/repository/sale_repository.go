package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// SaleFilters filtros opcionales para listados de ventas.
type SaleFilters struct {
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	CreatedBy string
	MinTotal  *decimal.Decimal
	MaxTotal  *decimal.Decimal
}

// SaleRepository puerto de persistencia para Sale y sus ítems (DIP).
// Los ítems se persisten como colección aparte ligada a la venta; GetByID
// devuelve el agregado completo con ítems cargados, o nil si no existe.
type SaleRepository interface {
	Save(sale *entity.Sale) error
	SaveItems(saleID string, items []*entity.SaleItem) error
	GetByID(id string) (*entity.Sale, error)
	ListByCustomer(customerID string, filters SaleFilters) ([]*entity.Sale, error)
	List(filters SaleFilters) ([]*entity.Sale, error)
	ListPendingApproval() ([]*entity.Sale, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
