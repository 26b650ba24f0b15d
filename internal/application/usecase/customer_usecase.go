package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD y de crédito para clientes.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente activo sin deuda. Documento y email deben ser únicos.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Document != "" {
		existing, err := uc.repo.GetByDocument(in.Document)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: documento %s", domain.ErrDuplicate, in.Document)
		}
	}
	if in.Email != "" {
		existing, err := uc.repo.GetByEmail(in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email %s", domain.ErrDuplicate, in.Email)
		}
	}

	customerType := entity.CustomerType(in.Type)
	if customerType == "" {
		customerType = entity.CustomerIndividual
	}
	customer, err := entity.NewCustomer(in.Name, in.Document, customerType)
	if err != nil {
		return nil, err
	}
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.CompanyName = in.CompanyName
	customer.Notes = in.Notes
	if in.CreditLimit != nil {
		if err := customer.SetCreditLimit(*in.CreditLimit); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente por ID.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza datos del cliente; la deuda solo cambia por ventas y pagos.
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}

	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.CompanyName != nil {
		customer.CompanyName = *in.CompanyName
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if in.CreditLimit != nil {
		if err := customer.SetCreditLimit(*in.CreditLimit); err != nil {
			return nil, err
		}
	}
	if in.Status != nil {
		switch entity.CustomerStatus(*in.Status) {
		case entity.CustomerStatusActive:
			customer.Activate()
		case entity.CustomerStatusInactive:
			customer.Deactivate()
		case entity.CustomerStatusBlocked:
			customer.Block()
		default:
			return nil, fmt.Errorf("%w: estado de cliente %q", domain.ErrInvalidInput, *in.Status)
		}
	}
	customer.Touch()

	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// RegisterPayment registra un abono que reduce la deuda del cliente.
func (uc *CustomerUseCase) RegisterPayment(id string, amount decimal.Decimal) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente %s", domain.ErrNotFound, id)
	}
	if err := customer.ReduceDebt(amount); err != nil {
		return nil, err
	}
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(limit, offset int) (*dto.CustomerListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina un cliente por ID.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	if c == nil {
		return nil
	}
	return &dto.CustomerResponse{
		ID:              c.ID,
		Name:            c.Name,
		Email:           c.Email,
		Phone:           c.Phone,
		Document:        c.Document,
		Type:            string(c.Type),
		Status:          string(c.Status),
		CompanyName:     c.CompanyName,
		Notes:           c.Notes,
		CreditLimit:     c.CreditLimit,
		CurrentDebt:     c.CurrentDebt,
		AvailableCredit: c.AvailableCredit(),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}
