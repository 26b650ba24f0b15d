package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta en la creación (producto, cantidad, precio y
// descuento opcionales; sin precio se usa el vigente del catálogo).
type SaleItemRequest struct {
	ProductID     string           `json:"product_id"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	DiscountType  string           `json:"discount_type,omitempty"` // percentage | fixed
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
}

// CreateSaleRequest body para POST /api/sales.
type CreateSaleRequest struct {
	CustomerID        string            `json:"customer_id"`
	Items             []SaleItemRequest `json:"items"`
	PaymentMethod     string            `json:"payment_method,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	SaleDiscountType  string            `json:"sale_discount_type,omitempty"`
	SaleDiscountValue *decimal.Decimal  `json:"sale_discount_value,omitempty"`
}

// CreateSaleResponse resultado de la creación.
type CreateSaleResponse struct {
	ID         string          `json:"id"`
	Total      decimal.Decimal `json:"total"`
	ItemsCount int             `json:"items_count"`
}

// AddItemRequest body para POST /api/sales/:id/items.
type AddItemRequest struct {
	ProductID     string           `json:"product_id"`
	Quantity      decimal.Decimal  `json:"quantity"`
	UnitPrice     *decimal.Decimal `json:"unit_price,omitempty"`
	DiscountType  string           `json:"discount_type,omitempty"`
	DiscountValue *decimal.Decimal `json:"discount_value,omitempty"`
}

// UpdateItemQuantityRequest body para PUT /api/sales/:id/items/:itemId.
type UpdateItemQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ApplySaleDiscountRequest body para PUT /api/sales/:id/discount.
type ApplySaleDiscountRequest struct {
	DiscountType  string          `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
}

// ApproveSaleRequest body para POST /api/sales/:id/approve.
// WarehouseID: bodega donde se reserva el stock de cada ítem.
type ApproveSaleRequest struct {
	WarehouseID string `json:"warehouse_id"`
}

// RejectSaleRequest body para POST /api/sales/:id/reject.
type RejectSaleRequest struct {
	Reason string `json:"reason"`
}

// CompleteSaleRequest body para POST /api/sales/:id/complete.
type CompleteSaleRequest struct {
	WarehouseID string `json:"warehouse_id"`
}

// CancelSaleRequest body para POST /api/sales/:id/cancel.
// WarehouseID es obligatorio solo si la venta está aprobada (para liberar reservas).
type CancelSaleRequest struct {
	WarehouseID string `json:"warehouse_id,omitempty"`
}

// DiscountDTO descomposición de un descuento en respuestas.
type DiscountDTO struct {
	Type   string          `json:"type"`
	Value  decimal.Decimal `json:"value"`
	Amount decimal.Decimal `json:"amount"`
}

// SaleItemDTO línea en la respuesta de detalle.
type SaleItemDTO struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    DiscountDTO     `json:"discount"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
}

// SaleResponse detalle completo para GET /api/sales/:id.
type SaleResponse struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Status          string          `json:"status"`
	Items           []SaleItemDTO   `json:"items"`
	Discount        DiscountDTO     `json:"discount"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TotalDiscount   decimal.Decimal `json:"total_discount"`
	Total           decimal.Decimal `json:"total"`
	Currency        string          `json:"currency"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	CreatedBy       string          `json:"created_by"`
	ApprovedBy      string          `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time      `json:"approved_at,omitempty"`
	RejectedBy      string          `json:"rejected_by,omitempty"`
	RejectedAt      *time.Time      `json:"rejected_at,omitempty"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// SaleListItem resumen para listados.
type SaleListItem struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Status        string          `json:"status"`
	ItemsCount    int             `json:"items_count"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ListSalesQuery filtros de query para GET /api/sales.
type ListSalesQuery struct {
	Status    string           `query:"status"`
	StartDate string           `query:"start_date"` // RFC 3339 o YYYY-MM-DD
	EndDate   string           `query:"end_date"`
	CreatedBy string           `query:"created_by"`
	MinTotal  *decimal.Decimal `query:"min_total"`
	MaxTotal  *decimal.Decimal `query:"max_total"`
}
