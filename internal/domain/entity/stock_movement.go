package entity

import (
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// MovementType tipo de movimiento de inventario.
type MovementType string

const (
	MovementEntry      MovementType = "entry"
	MovementExit       MovementType = "exit"
	MovementAdjustment MovementType = "adjustment"
	MovementTransfer   MovementType = "transfer"
	MovementReturn     MovementType = "return"
	MovementLoss       MovementType = "loss"
)

// MovementReason motivo del movimiento.
type MovementReason string

const (
	ReasonPurchase       MovementReason = "purchase"
	ReasonSale           MovementReason = "sale"
	ReasonManual         MovementReason = "manual"
	ReasonTransferOut    MovementReason = "transfer_out"
	ReasonTransferIn     MovementReason = "transfer_in"
	ReasonCustomerReturn MovementReason = "return"
	ReasonDamaged        MovementReason = "damaged"
	ReasonExpired        MovementReason = "expired"
	ReasonInventory      MovementReason = "inventory"
)

// StockMovement registro de auditoría inmutable de un movimiento de stock.
// Se crea una sola vez por evento que afecta existencias; nunca se muta ni borra.
type StockMovement struct {
	Base
	ProductID        string
	StockID          string
	Type             MovementType
	Reason           MovementReason
	Quantity         valueobject.Quantity
	PreviousQuantity valueobject.Quantity
	NewQuantity      valueobject.Quantity
	UserID           string
	Notes            string
	ReferenceID      string // documento origen (ej. ID de la venta)
	ReferenceType    string // "sale", "adjustment", ...
}

// NewStockMovement crea el registro de auditoría con las cantidades antes/después.
func NewStockMovement(productID, stockID string, movType MovementType, reason MovementReason,
	quantity, previousQuantity, newQuantity valueobject.Quantity, userID string) *StockMovement {
	return &StockMovement{
		Base:             NewBase(),
		ProductID:        productID,
		StockID:          stockID,
		Type:             movType,
		Reason:           reason,
		Quantity:         quantity,
		PreviousQuantity: previousQuantity,
		NewQuantity:      newQuantity,
		UserID:           userID,
	}
}

// WithReference asocia el documento que originó el movimiento.
func (m *StockMovement) WithReference(referenceID, referenceType string) *StockMovement {
	m.ReferenceID = referenceID
	m.ReferenceType = referenceType
	return m
}

// WithNotes agrega notas libres.
func (m *StockMovement) WithNotes(notes string) *StockMovement {
	m.Notes = notes
	return m
}

// IsEntry / IsExit consultas de tipo.
func (m *StockMovement) IsEntry() bool { return m.Type == MovementEntry }
func (m *StockMovement) IsExit() bool  { return m.Type == MovementExit }
