package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

// SaleStatus estados del ciclo de vida de una venta.
type SaleStatus string

const (
	SaleStatusDraft      SaleStatus = "draft"
	SaleStatusPending    SaleStatus = "pending"
	SaleStatusApproved   SaleStatus = "approved"
	SaleStatusRejected   SaleStatus = "rejected"
	SaleStatusProcessing SaleStatus = "processing"
	SaleStatusCompleted  SaleStatus = "completed"
	SaleStatusCancelled  SaleStatus = "cancelled"
)

// IsValid indica si el valor es un estado conocido.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusDraft, SaleStatusPending, SaleStatusApproved, SaleStatusRejected,
		SaleStatusProcessing, SaleStatusCompleted, SaleStatusCancelled:
		return true
	}
	return false
}

func (s SaleStatus) String() string { return string(s) }

// PaymentMethod métodos de pago aceptados.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "cash"
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentDebitCard  PaymentMethod = "debit_card"
	PaymentPix        PaymentMethod = "pix"
	PaymentBankSlip   PaymentMethod = "bank_slip"
	PaymentCredit     PaymentMethod = "credit" // fiado: consume cupo del cliente
)

// IsValid indica si el valor es un método de pago conocido.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix, PaymentBankSlip, PaymentCredit:
		return true
	}
	return false
}

// Sale raíz de agregado: posee sus ítems y la máquina de estados de aprobación.
// draft → pending → approved → processing → completed; pending → rejected
// (vuelve a ser editable); draft/pending/rejected → cancelled.
// Los ítems solo se modifican en draft o rejected.
type Sale struct {
	Base
	CustomerID      string
	CustomerName    string // snapshot del nombre al momento de crear
	Items           []*SaleItem
	Status          SaleStatus
	Discount        valueobject.Discount // descuento a nivel venta
	PaymentMethod   PaymentMethod
	CreatedBy       string
	ApprovedBy      string
	ApprovedAt      *time.Time
	RejectedBy      string
	RejectedAt      *time.Time
	RejectionReason string
	Notes           string
}

// NewSale crea una venta en estado draft.
func NewSale(customerID, customerName, createdBy string) *Sale {
	return &Sale{
		Base:         NewBase(),
		CustomerID:   customerID,
		CustomerName: customerName,
		Items:        []*SaleItem{},
		Status:       SaleStatusDraft,
		Discount:     valueobject.NoDiscount(),
		CreatedBy:    createdBy,
	}
}

// CanModifyItems los ítems y el descuento solo cambian en draft o rejected.
func (s *Sale) CanModifyItems() bool {
	return s.Status == SaleStatusDraft || s.Status == SaleStatusRejected
}

// AddItem agrega una línea. Si ya existe una línea del mismo producto, la
// cantidad nueva se suma a la existente sin insertar una fila duplicada.
func (s *Sale) AddItem(item *SaleItem) error {
	if !s.CanModifyItems() {
		return fmt.Errorf("%w: estado %s", domain.ErrSaleNotModifiable, s.Status)
	}
	for _, existing := range s.Items {
		if existing.ProductID == item.ProductID {
			if err := existing.UpdateQuantity(existing.Quantity.Add(item.Quantity)); err != nil {
				return err
			}
			s.Touch()
			return nil
		}
	}
	s.Items = append(s.Items, item)
	s.Touch()
	return nil
}

// RemoveItem elimina una línea por su ID.
func (s *Sale) RemoveItem(itemID string) error {
	if !s.CanModifyItems() {
		return fmt.Errorf("%w: estado %s", domain.ErrSaleNotModifiable, s.Status)
	}
	for idx, item := range s.Items {
		if item.ID == itemID {
			s.Items = append(s.Items[:idx], s.Items[idx+1:]...)
			s.Touch()
			return nil
		}
	}
	return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, itemID)
}

// UpdateItemQuantity cambia la cantidad de una línea por su ID.
func (s *Sale) UpdateItemQuantity(itemID string, quantity valueobject.Quantity) error {
	if !s.CanModifyItems() {
		return fmt.Errorf("%w: estado %s", domain.ErrSaleNotModifiable, s.Status)
	}
	for _, item := range s.Items {
		if item.ID == itemID {
			if err := item.UpdateQuantity(quantity); err != nil {
				return err
			}
			s.Touch()
			return nil
		}
	}
	return fmt.Errorf("%w: ítem %s", domain.ErrNotFound, itemID)
}

// ApplySaleDiscount reemplaza el descuento a nivel venta.
func (s *Sale) ApplySaleDiscount(discount valueobject.Discount) error {
	if !s.CanModifyItems() {
		return fmt.Errorf("%w: estado %s", domain.ErrSaleNotModifiable, s.Status)
	}
	s.Discount = discount
	s.Touch()
	return nil
}

// SetPaymentMethod define el método de pago.
func (s *Sale) SetPaymentMethod(method PaymentMethod) error {
	if !method.IsValid() {
		return fmt.Errorf("%w: método de pago %q", domain.ErrInvalidInput, method)
	}
	s.PaymentMethod = method
	s.Touch()
	return nil
}

// UpdateNotes reemplaza las notas de la venta.
func (s *Sale) UpdateNotes(notes string) {
	s.Notes = strings.TrimSpace(notes)
	s.Touch()
}

// Subtotal suma de subtotales de ítems, antes de todo descuento.
func (s *Sale) Subtotal() (valueobject.Money, error) {
	total := valueobject.ZeroMoney()
	for _, item := range s.Items {
		sum, err := total.Add(item.Subtotal())
		if err != nil {
			return valueobject.Money{}, err
		}
		total = sum
	}
	return total, nil
}

// ItemsDiscount suma de los descuentos por ítem.
func (s *Sale) ItemsDiscount() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.DiscountAmount())
	}
	return total
}

// TotalBeforeDiscount suma de totales de ítems (con descuento por ítem, sin el de venta).
func (s *Sale) TotalBeforeDiscount() (valueobject.Money, error) {
	total := valueobject.ZeroMoney()
	for _, item := range s.Items {
		sum, err := total.Add(item.Total())
		if err != nil {
			return valueobject.Money{}, err
		}
		total = sum
	}
	return total, nil
}

// SaleDiscountAmount monto del descuento a nivel venta sobre TotalBeforeDiscount.
func (s *Sale) SaleDiscountAmount() (decimal.Decimal, error) {
	before, err := s.TotalBeforeDiscount()
	if err != nil {
		return decimal.Zero, err
	}
	return s.Discount.CalculateDiscount(before.Amount()), nil
}

// Total monto final: descuento de venta aplicado sobre TotalBeforeDiscount.
func (s *Sale) Total() (valueobject.Money, error) {
	before, err := s.TotalBeforeDiscount()
	if err != nil {
		return valueobject.Money{}, err
	}
	return valueobject.NewMoney(s.Discount.Apply(before.Amount()), before.Currency())
}

// SubmitForApproval pasa de draft a pending; requiere al menos un ítem.
func (s *Sale) SubmitForApproval() error {
	if s.Status != SaleStatusDraft {
		return fmt.Errorf("%w: solo una venta en borrador puede enviarse a aprobación (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	if len(s.Items) == 0 {
		return fmt.Errorf("%w: la venta no tiene ítems", domain.ErrInvalidInput)
	}
	s.Status = SaleStatusPending
	s.Touch()
	return nil
}

// Approve pasa de pending a approved y estampa quién y cuándo.
func (s *Sale) Approve(userID string) error {
	if s.Status != SaleStatusPending {
		return fmt.Errorf("%w: solo una venta pendiente puede aprobarse (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	now := time.Now()
	s.Status = SaleStatusApproved
	s.ApprovedBy = userID
	s.ApprovedAt = &now
	s.Touch()
	return nil
}

// Reject pasa de pending a rejected con motivo obligatorio. La venta queda editable.
func (s *Sale) Reject(userID, reason string) error {
	if s.Status != SaleStatusPending {
		return fmt.Errorf("%w: solo una venta pendiente puede rechazarse (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%w: el motivo de rechazo es obligatorio", domain.ErrInvalidInput)
	}
	now := time.Now()
	s.Status = SaleStatusRejected
	s.RejectedBy = userID
	s.RejectedAt = &now
	s.RejectionReason = reason
	s.Touch()
	return nil
}

// StartProcessing pasa de approved a processing.
func (s *Sale) StartProcessing() error {
	if s.Status != SaleStatusApproved {
		return fmt.Errorf("%w: solo una venta aprobada puede procesarse (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	s.Status = SaleStatusProcessing
	s.Touch()
	return nil
}

// Complete pasa de processing a completed (estado terminal).
func (s *Sale) Complete() error {
	if s.Status != SaleStatusProcessing {
		return fmt.Errorf("%w: solo una venta en proceso puede completarse (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	s.Status = SaleStatusCompleted
	s.Touch()
	return nil
}

// Cancel cancela desde draft, pending o rejected. Una venta approved se cancela
// vía el caso de uso, que primero libera las reservas y luego llama CancelApproved.
func (s *Sale) Cancel() error {
	switch s.Status {
	case SaleStatusDraft, SaleStatusPending, SaleStatusRejected:
		s.Status = SaleStatusCancelled
		s.Touch()
		return nil
	}
	return fmt.Errorf("%w: no se puede cancelar una venta en estado %s", domain.ErrInvalidTransition, s.Status)
}

// CancelApproved cancela una venta aprobada; el caller debe haber liberado las reservas.
func (s *Sale) CancelApproved() error {
	if s.Status != SaleStatusApproved {
		return fmt.Errorf("%w: la venta no está aprobada (estado %s)", domain.ErrInvalidTransition, s.Status)
	}
	s.Status = SaleStatusCancelled
	s.Touch()
	return nil
}

// IsDraft / IsPending / IsApproved / IsRejected / IsCompleted / IsCancelled consultas de estado.
func (s *Sale) IsDraft() bool     { return s.Status == SaleStatusDraft }
func (s *Sale) IsPending() bool   { return s.Status == SaleStatusPending }
func (s *Sale) IsApproved() bool  { return s.Status == SaleStatusApproved }
func (s *Sale) IsRejected() bool  { return s.Status == SaleStatusRejected }
func (s *Sale) IsCompleted() bool { return s.Status == SaleStatusCompleted }
func (s *Sale) IsCancelled() bool { return s.Status == SaleStatusCancelled }
