package entity

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
)

// CustomerType tipo de cliente.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerCompany    CustomerType = "company"
)

// CustomerStatus estados del cliente.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusBlocked  CustomerStatus = "blocked"
)

// Customer cliente de la empresa. Lleva la relación de crédito que consume
// el flujo de ventas: CreditLimit acota, CurrentDebt acumula al completar
// ventas a crédito.
type Customer struct {
	Base
	Name        string
	Email       string
	Phone       string
	Document    string // CPF o CNPJ
	Type        CustomerType
	Status      CustomerStatus
	CompanyName string
	Notes       string
	CreditLimit decimal.Decimal
	CurrentDebt decimal.Decimal
}

// NewCustomer crea un cliente activo sin deuda.
func NewCustomer(name, document string, customerType CustomerType) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(name) < 3 {
		return nil, fmt.Errorf("%w: el nombre del cliente debe tener al menos 3 caracteres", domain.ErrInvalidInput)
	}
	return &Customer{
		Base:        NewBase(),
		Name:        name,
		Document:    document,
		Type:        customerType,
		Status:      CustomerStatusActive,
		CreditLimit: decimal.Zero,
		CurrentDebt: decimal.Zero,
	}, nil
}

// IsActive / IsBlocked consultas de estado.
func (c *Customer) IsActive() bool  { return c.Status == CustomerStatusActive }
func (c *Customer) IsBlocked() bool { return c.Status == CustomerStatusBlocked }

// Activate / Deactivate / Block cambian el estado del cliente.
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
	c.Touch()
}

func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
	c.Touch()
}

func (c *Customer) Block() {
	c.Status = CustomerStatusBlocked
	c.Touch()
}

// SetCreditLimit define el cupo de crédito; no puede ser negativo.
func (c *Customer) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return fmt.Errorf("%w: el cupo de crédito no puede ser negativo", domain.ErrInvalidInput)
	}
	c.CreditLimit = limit
	c.Touch()
	return nil
}

// AvailableCredit cupo menos deuda, acotado a >= 0. Sin cupo configurado es cero.
func (c *Customer) AvailableCredit() decimal.Decimal {
	if c.CreditLimit.IsZero() {
		return decimal.Zero
	}
	available := c.CreditLimit.Sub(c.CurrentDebt)
	if available.IsNegative() {
		return decimal.Zero
	}
	return available
}

// HasAvailableCredit indica si el cupo disponible cubre el monto.
func (c *Customer) HasAvailableCredit(amount decimal.Decimal) bool {
	if c.CreditLimit.IsZero() {
		return false
	}
	return c.AvailableCredit().GreaterThanOrEqual(amount)
}

// CanPurchase valida si el cliente puede comprar a crédito por el monto dado.
// Bloqueado o inactivo nunca compra; sin cupo configurado compra sin tope.
func (c *Customer) CanPurchase(amount decimal.Decimal) bool {
	if c.IsBlocked() || !c.IsActive() {
		return false
	}
	if c.CreditLimit.IsZero() {
		return true
	}
	return c.HasAvailableCredit(amount)
}

// AddDebt suma deuda al completar una venta a crédito.
func (c *Customer) AddDebt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: el monto de deuda debe ser positivo", domain.ErrInvalidInput)
	}
	c.CurrentDebt = c.CurrentDebt.Add(amount)
	c.Touch()
	return nil
}

// ReduceDebt registra un pago; no puede superar la deuda actual.
func (c *Customer) ReduceDebt(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: el monto del pago debe ser positivo", domain.ErrInvalidInput)
	}
	if amount.GreaterThan(c.CurrentDebt) {
		return fmt.Errorf("%w: el pago supera la deuda actual", domain.ErrInvalidInput)
	}
	c.CurrentDebt = c.CurrentDebt.Sub(amount)
	c.Touch()
	return nil
}
