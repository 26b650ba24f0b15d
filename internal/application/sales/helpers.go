package sales

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// buildDiscount arma un descuento desde tipo y valor de API; sin tipo o sin
// valor es descuento nulo.
func buildDiscount(kind string, value *decimal.Decimal) (valueobject.Discount, error) {
	if kind == "" || value == nil {
		return valueobject.NoDiscount(), nil
	}
	return valueobject.NewDiscount(kind, *value)
}

// toSaleResponse arma el DTO de detalle con la descomposición de descuentos.
func toSaleResponse(sale *entity.Sale) (*dto.SaleResponse, error) {
	subtotal, err := sale.Subtotal()
	if err != nil {
		return nil, err
	}
	saleDiscountAmount, err := sale.SaleDiscountAmount()
	if err != nil {
		return nil, err
	}
	total, err := sale.Total()
	if err != nil {
		return nil, err
	}

	items := make([]dto.SaleItemDTO, 0, len(sale.Items))
	for _, item := range sale.Items {
		items = append(items, dto.SaleItemDTO{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity.Decimal(),
			UnitPrice:   item.UnitPrice.Amount(),
			Discount: dto.DiscountDTO{
				Type:   string(item.Discount.Type()),
				Value:  item.Discount.Value(),
				Amount: item.DiscountAmount(),
			},
			Subtotal: item.Subtotal().Amount(),
			Total:    item.Total().Amount(),
		})
	}

	return &dto.SaleResponse{
		ID:           sale.ID,
		CustomerID:   sale.CustomerID,
		CustomerName: sale.CustomerName,
		Status:       sale.Status.String(),
		Items:        items,
		Discount: dto.DiscountDTO{
			Type:   string(sale.Discount.Type()),
			Value:  sale.Discount.Value(),
			Amount: saleDiscountAmount,
		},
		Subtotal:        subtotal.Amount(),
		TotalDiscount:   sale.ItemsDiscount().Add(saleDiscountAmount),
		Total:           total.Amount(),
		Currency:        total.Currency(),
		PaymentMethod:   string(sale.PaymentMethod),
		CreatedBy:       sale.CreatedBy,
		ApprovedBy:      sale.ApprovedBy,
		ApprovedAt:      sale.ApprovedAt,
		RejectedBy:      sale.RejectedBy,
		RejectedAt:      sale.RejectedAt,
		RejectionReason: sale.RejectionReason,
		Notes:           sale.Notes,
		CreatedAt:       sale.CreatedAt,
		UpdatedAt:       sale.UpdatedAt,
	}, nil
}

// toSaleListItem arma el resumen para listados.
func toSaleListItem(sale *entity.Sale) (dto.SaleListItem, error) {
	total, err := sale.Total()
	if err != nil {
		return dto.SaleListItem{}, err
	}
	return dto.SaleListItem{
		ID:            sale.ID,
		CustomerName:  sale.CustomerName,
		Status:        sale.Status.String(),
		ItemsCount:    len(sale.Items),
		Total:         total.Amount(),
		PaymentMethod: string(sale.PaymentMethod),
		CreatedBy:     sale.CreatedBy,
		CreatedAt:     sale.CreatedAt,
	}, nil
}
