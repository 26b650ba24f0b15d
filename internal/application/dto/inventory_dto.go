package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
type RegisterMovementRequest struct {
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id,omitempty"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	Type            string          `json:"type"`
	Reason          string          `json:"reason,omitempty"`
	Quantity        decimal.Decimal `json:"quantity"`
	Notes           string          `json:"notes,omitempty"`
}

// StockDTO estado de stock de un producto en una bodega.
type StockDTO struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	WarehouseID      string          `json:"warehouse_id"`
	Quantity         decimal.Decimal `json:"quantity"`
	ReservedQuantity decimal.Decimal `json:"reserved_quantity"`
	Available        decimal.Decimal `json:"available"`
	Status           string          `json:"status"`
	LastMovementAt   *time.Time      `json:"last_movement_at,omitempty"`
}

// StockMovementDTO registro de auditoría de un movimiento.
type StockMovementDTO struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	StockID          string          `json:"stock_id"`
	Type             string          `json:"type"`
	Reason           string          `json:"reason"`
	Quantity         decimal.Decimal `json:"quantity"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	UserID           string          `json:"user_id,omitempty"`
	Notes            string          `json:"notes,omitempty"`
	ReferenceID      string          `json:"reference_id,omitempty"`
	ReferenceType    string          `json:"reference_type,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// LowStockItemDTO producto de una bodega por debajo de su stock mínimo.
type LowStockItemDTO struct {
	ProductID     string          `json:"product_id"`
	SKU           string          `json:"sku"`
	ProductName   string          `json:"product_name"`
	WarehouseID   string          `json:"warehouse_id"`
	Available     decimal.Decimal `json:"available"`
	MinStockLevel decimal.Decimal `json:"min_stock_level"`
	Deficit       decimal.Decimal `json:"deficit"` // MinStockLevel - Available
}
