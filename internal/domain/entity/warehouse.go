package entity

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// WarehouseType tipo de bodega.
type WarehouseType string

const (
	WarehouseMain         WarehouseType = "main"
	WarehouseBranch       WarehouseType = "branch"
	WarehouseStore        WarehouseType = "store"
	WarehouseDistribution WarehouseType = "distribution"
)

// WarehouseStatus estados de la bodega.
type WarehouseStatus string

const (
	WarehouseStatusActive      WarehouseStatus = "active"
	WarehouseStatusInactive    WarehouseStatus = "inactive"
	WarehouseStatusMaintenance WarehouseStatus = "maintenance"
)

var warehouseCodePattern = regexp.MustCompile(`^[A-Z0-9\-_]+$`)

// Warehouse bodega física donde se lleva el stock por producto.
type Warehouse struct {
	Base
	Name   string
	Code   string
	Type   WarehouseType
	Status WarehouseStatus
	Notes  string
}

// NewWarehouse crea una bodega activa. El código se normaliza a mayúsculas,
// debe tener entre 2 y 10 caracteres alfanuméricos, guiones o guiones bajos.
func NewWarehouse(name, code string, whType WarehouseType) (*Warehouse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre de la bodega es obligatorio", domain.ErrInvalidInput)
	}
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: el nombre de la bodega debe tener al menos 3 caracteres", domain.ErrInvalidInput)
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 || len(code) > 10 {
		return nil, fmt.Errorf("%w: el código de bodega debe tener entre 2 y 10 caracteres", domain.ErrInvalidInput)
	}
	if !warehouseCodePattern.MatchString(code) {
		return nil, fmt.Errorf("%w: el código de bodega solo admite letras, números, guiones y guiones bajos", domain.ErrInvalidInput)
	}
	return &Warehouse{
		Base:   NewBase(),
		Name:   name,
		Code:   code,
		Type:   whType,
		Status: WarehouseStatusActive,
	}, nil
}

// IsActive indica si la bodega está operativa.
func (w *Warehouse) IsActive() bool {
	return w.Status == WarehouseStatusActive
}
