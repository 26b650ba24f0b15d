package usecase

import (
	"fmt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// ProductUseCase casos de uso CRUD para productos. El stock se maneja vía movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto activo; el SKU debe ser único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.repo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: SKU %s", domain.ErrDuplicate, in.SKU)
	}

	currency := in.Currency
	if currency == "" {
		currency = valueobject.DefaultCurrency
	}
	price, err := valueobject.NewMoney(in.Price, currency)
	if err != nil {
		return nil, err
	}
	product, err := entity.NewProduct(in.Name, in.SKU, price)
	if err != nil {
		return nil, err
	}
	product.Description = in.Description
	if in.Unit != "" {
		product.Unit = in.Unit
	}
	if in.MinStockLevel != nil {
		minLevel, err := valueobject.NewQuantity(*in.MinStockLevel)
		if err != nil {
			return nil, err
		}
		product.MinStockLevel = minLevel
	}

	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. El SKU no se modifica después de creado.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: producto %s", domain.ErrNotFound, id)
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		price, err := valueobject.NewMoney(*in.Price, product.Price.Currency())
		if err != nil {
			return nil, err
		}
		if err := product.UpdatePrice(price); err != nil {
			return nil, err
		}
	}
	if in.MinStockLevel != nil {
		minLevel, err := valueobject.NewQuantity(*in.MinStockLevel)
		if err != nil {
			return nil, err
		}
		product.MinStockLevel = minLevel
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.Status != nil {
		switch entity.ProductStatus(*in.Status) {
		case entity.ProductStatusActive:
			product.Activate()
		case entity.ProductStatusInactive:
			product.Deactivate()
		case entity.ProductStatusDiscontinued:
			product.Discontinue()
		default:
			return nil, fmt.Errorf("%w: estado de producto %q", domain.ErrInvalidInput, *in.Status)
		}
	}
	product.Touch()

	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.Amount(),
		Currency:      p.Price.Currency(),
		Status:        string(p.Status),
		MinStockLevel: p.MinStockLevel.Decimal(),
		Unit:          p.Unit,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
