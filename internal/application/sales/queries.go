package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SaleQueriesUseCase agrupa las lecturas sobre ventas.
type SaleQueriesUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSaleQueriesUseCase construye el caso de uso de lecturas.
func NewSaleQueriesUseCase(saleRepo repository.SaleRepository) *SaleQueriesUseCase {
	return &SaleQueriesUseCase{saleRepo: saleRepo}
}

// GetSale devuelve una venta con sus líneas y totales calculados.
func (uc *SaleQueriesUseCase) GetSale(ctx context.Context, saleID string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, fmt.Errorf("%w: venta %s", domain.ErrNotFound, saleID)
	}
	return toSaleResponse(sale)
}

// ListSales devuelve el listado filtrado de ventas.
func (uc *SaleQueriesUseCase) ListSales(ctx context.Context, filters repository.SaleFilters) ([]dto.SaleListItem, error) {
	sales, err := uc.saleRepo.List(filters)
	if err != nil {
		return nil, err
	}
	return toListItems(sales)
}

// ListPendingSales devuelve las ventas en espera de aprobación.
func (uc *SaleQueriesUseCase) ListPendingSales(ctx context.Context) ([]dto.SaleListItem, error) {
	sales, err := uc.saleRepo.ListPendingApproval()
	if err != nil {
		return nil, err
	}
	return toListItems(sales)
}

// ListSalesByCustomer devuelve las ventas de un cliente.
func (uc *SaleQueriesUseCase) ListSalesByCustomer(ctx context.Context, customerID string, filters repository.SaleFilters) ([]dto.SaleListItem, error) {
	sales, err := uc.saleRepo.ListByCustomer(customerID, filters)
	if err != nil {
		return nil, err
	}
	return toListItems(sales)
}

func toListItems(sales []*entity.Sale) ([]dto.SaleListItem, error) {
	items := make([]dto.SaleListItem, 0, len(sales))
	for _, s := range sales {
		item, err := toSaleListItem(s)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
