package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCustomerRequest entrada para crear un cliente.
type CreateCustomerRequest struct {
	Name        string           `json:"name" validate:"required,min=3,max=200"`
	Email       string           `json:"email" validate:"omitempty,email"`
	Phone       string           `json:"phone"`
	Document    string           `json:"document"`
	Type        string           `json:"type" validate:"omitempty,oneof=individual company"`
	CompanyName string           `json:"company_name"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
	Notes       string           `json:"notes"`
}

// UpdateCustomerRequest entrada para actualizar un cliente.
type UpdateCustomerRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=3,max=200"`
	Email       *string          `json:"email" validate:"omitempty,email"`
	Phone       *string          `json:"phone"`
	CompanyName *string          `json:"company_name"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
	Status      *string          `json:"status" validate:"omitempty,oneof=active inactive blocked"`
}

// RegisterPaymentRequest entrada para registrar un abono a la deuda del cliente.
type RegisterPaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CustomerResponse salida de un cliente con su relación de crédito.
type CustomerResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	Document        string          `json:"document,omitempty"`
	Type            string          `json:"type"`
	Status          string          `json:"status"`
	CompanyName     string          `json:"company_name,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	CreditLimit     decimal.Decimal `json:"credit_limit"`
	CurrentDebt     decimal.Decimal `json:"current_debt"`
	AvailableCredit decimal.Decimal `json:"available_credit"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CustomerListResponse lista paginada de clientes.
type CustomerListResponse struct {
	Items []CustomerResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
