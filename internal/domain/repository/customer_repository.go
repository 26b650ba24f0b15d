package repository

import "github.com/jhoicas/Ventas-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para Customer (DIP).
// Los Get devuelven nil, nil cuando el cliente no existe.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	GetByDocument(document string) (*entity.Customer, error)
	GetByEmail(email string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
}
