package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id, name, email, phone, document, type, status, company_name, notes, credit_limit, current_debt, created_at, updated_at`

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone, document, type, status, company_name, notes, credit_limit, current_debt, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullable(customer.Email), customer.Phone,
		nullable(customer.Document), string(customer.Type), string(customer.Status),
		customer.CompanyName, customer.Notes, customer.CreditLimit, customer.CurrentDebt,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID, o nil si no existe.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	return r.getOne(query, id)
}

// GetByDocument obtiene un cliente por documento (CPF/CNPJ), o nil si no existe.
func (r *CustomerRepo) GetByDocument(document string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE document = $1`
	return r.getOne(query, document)
}

// GetByEmail obtiene un cliente por email, o nil si no existe.
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1`
	return r.getOne(query, email)
}

// List lista clientes con paginación.
func (r *CustomerRepo) List(limit, offset int) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Update actualiza un cliente, incluida su relación de crédito.
func (r *CustomerRepo) Update(customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET name = $2, email = $3, phone = $4, type = $5, status = $6, company_name = $7,
		    notes = $8, credit_limit = $9, current_debt = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		customer.ID, customer.Name, nullable(customer.Email), customer.Phone,
		string(customer.Type), string(customer.Status), customer.CompanyName,
		customer.Notes, customer.CreditLimit, customer.CurrentDebt, customer.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente por ID.
func (r *CustomerRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func (r *CustomerRepo) getOne(query string, arg any) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var (
		id          string
		name        string
		email       *string
		phone       string
		document    *string
		ctype       string
		status      string
		companyName string
		notes       string
		creditLimit decimal.Decimal
		currentDebt decimal.Decimal
		createdAt   time.Time
		updatedAt   time.Time
	)
	if err := row.Scan(&id, &name, &email, &phone, &document, &ctype, &status, &companyName,
		&notes, &creditLimit, &currentDebt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	c := &entity.Customer{
		Base:        entity.NewBaseWithID(id, createdAt, updatedAt),
		Name:        name,
		Phone:       phone,
		Type:        entity.CustomerType(ctype),
		Status:      entity.CustomerStatus(status),
		CompanyName: companyName,
		Notes:       notes,
		CreditLimit: creditLimit,
		CurrentDebt: currentDebt,
	}
	if email != nil {
		c.Email = *email
	}
	if document != nil {
		c.Document = *document
	}
	return c, nil
}
