package inventory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// StockQueriesUseCase agrupa las lecturas sobre stock y movimientos.
type StockQueriesUseCase struct {
	stockRepo    repository.StockRepository
	movementRepo repository.StockMovementRepository
	productRepo  repository.ProductRepository
}

// NewStockQueriesUseCase construye el caso de uso de lecturas de inventario.
func NewStockQueriesUseCase(
	stockRepo repository.StockRepository,
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
) *StockQueriesUseCase {
	return &StockQueriesUseCase{
		stockRepo:    stockRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// GetStock devuelve el stock de un producto en una bodega.
func (uc *StockQueriesUseCase) GetStock(ctx context.Context, productID, warehouseID string) (*dto.StockDTO, error) {
	stock, err := uc.stockRepo.GetByProductAndWarehouse(productID, warehouseID)
	if err != nil {
		return nil, err
	}
	if stock == nil {
		return nil, fmt.Errorf("%w: stock de producto %s en bodega %s", domain.ErrNotFound, productID, warehouseID)
	}
	out := toStockDTO(stock)
	return &out, nil
}

// ListWarehouseStock devuelve todas las filas de stock de una bodega.
func (uc *StockQueriesUseCase) ListWarehouseStock(ctx context.Context, warehouseID string) ([]dto.StockDTO, error) {
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockDTO, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, toStockDTO(s))
	}
	return out, nil
}

// ListMovementsByProduct devuelve el historial de movimientos de un producto.
func (uc *StockQueriesUseCase) ListMovementsByProduct(ctx context.Context, productID string, from, to *time.Time, limit, offset int) ([]dto.StockMovementDTO, error) {
	movements, err := uc.movementRepo.ListByProduct(productID, from, to, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockMovementDTO, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementDTO(m))
	}
	return out, nil
}

// LowStockReport lista los productos de una bodega cuyo disponible está por
// debajo del stock mínimo del catálogo, ordenados por mayor déficit.
func (uc *StockQueriesUseCase) LowStockReport(ctx context.Context, warehouseID string) ([]dto.LowStockItemDTO, error) {
	stocks, err := uc.stockRepo.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.LowStockItemDTO, 0)
	for _, stock := range stocks {
		product, err := uc.productRepo.GetByID(stock.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || product.MinStockLevel.IsZero() {
			continue
		}
		available := stock.AvailableQuantity()
		if available.IsSufficientFor(product.MinStockLevel) {
			continue
		}
		deficit := product.MinStockLevel.Decimal().Sub(available.Decimal())
		items = append(items, dto.LowStockItemDTO{
			ProductID:     product.ID,
			SKU:           product.SKU,
			ProductName:   product.Name,
			WarehouseID:   warehouseID,
			Available:     available.Decimal(),
			MinStockLevel: product.MinStockLevel.Decimal(),
			Deficit:       deficit,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Deficit.GreaterThan(items[j].Deficit)
	})
	return items, nil
}

func toStockDTO(stock *entity.Stock) dto.StockDTO {
	return dto.StockDTO{
		ID:               stock.ID,
		ProductID:        stock.ProductID,
		WarehouseID:      stock.WarehouseID,
		Quantity:         stock.Quantity.Decimal(),
		ReservedQuantity: stock.ReservedQuantity.Decimal(),
		Available:        stock.AvailableQuantity().Decimal(),
		Status:           string(stock.Status),
		LastMovementAt:   stock.LastMovementAt,
	}
}

func toMovementDTO(m *entity.StockMovement) dto.StockMovementDTO {
	return dto.StockMovementDTO{
		ID:               m.ID,
		ProductID:        m.ProductID,
		StockID:          m.StockID,
		Type:             string(m.Type),
		Reason:           string(m.Reason),
		Quantity:         m.Quantity.Decimal(),
		PreviousQuantity: m.PreviousQuantity.Decimal(),
		NewQuantity:      m.NewQuantity.Decimal(),
		UserID:           m.UserID,
		Notes:            m.Notes,
		ReferenceID:      m.ReferenceID,
		ReferenceType:    m.ReferenceType,
		CreatedAt:        m.CreatedAt,
	}
}
