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
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// La venta guarda un total denormalizado para poder filtrar en SQL; la fuente
// de verdad del total sigue siendo el agregado.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// La columna total es denormalizada solo para filtros SQL; el agregado la
// recalcula desde sus ítems, así que nunca se lee.
const saleColumns = `id, customer_id, customer_name, status, payment_method, discount_kind, discount_value, notes, created_by, approved_by, approved_at, rejected_by, rejected_at, rejection_reason, created_at, updated_at`

// Save inserta la venta (sin ítems; ver SaveItems).
func (r *SaleRepo) Save(sale *entity.Sale) error {
	total, err := sale.Total()
	if err != nil {
		return err
	}
	query := `
		INSERT INTO sales (id, customer_id, customer_name, status, payment_method, discount_kind, discount_value, total, notes, created_by, approved_by, approved_at, rejected_by, rejected_at, rejection_reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, sale.CustomerID, sale.CustomerName, string(sale.Status), string(sale.PaymentMethod),
		string(sale.Discount.Type()), sale.Discount.Value(), total.Amount(), sale.Notes,
		sale.CreatedBy, nullable(sale.ApprovedBy), sale.ApprovedAt,
		nullable(sale.RejectedBy), sale.RejectedAt, sale.RejectionReason,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: referencia inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// SaveItems reemplaza las líneas de la venta por el estado actual del agregado.
func (r *SaleRepo) SaveItems(saleID string, items []*entity.SaleItem) error {
	ctx := context.Background()
	if _, err := r.q.Exec(ctx, `DELETE FROM sale_items WHERE sale_id = $1`, saleID); err != nil {
		return fmt.Errorf("clear sale items: %w", err)
	}
	query := `
		INSERT INTO sale_items (id, sale_id, product_id, product_name, quantity, unit_price, currency, discount_kind, discount_value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	for _, item := range items {
		_, err := r.q.Exec(ctx, query,
			item.ID, saleID, item.ProductID, item.ProductName,
			item.Quantity.Decimal(), item.UnitPrice.Amount(), item.UnitPrice.Currency(),
			string(item.Discount.Type()), item.Discount.Value(),
			item.CreatedAt, item.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert sale item: %w", err)
		}
	}
	return nil
}

// GetByID devuelve el agregado completo con ítems cargados, o nil si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	sale, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	items, err := r.loadItems([]string{sale.ID})
	if err != nil {
		return nil, err
	}
	sale.Items = items[sale.ID]
	if sale.Items == nil {
		sale.Items = []*entity.SaleItem{}
	}
	return sale, nil
}

// List lista ventas con filtros opcionales, con ítems cargados.
func (r *SaleRepo) List(filters repository.SaleFilters) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	var args []any
	query, args = applySaleFilters(query, args, filters)
	query += ` ORDER BY created_at DESC`
	return r.listSales(query, args...)
}

// ListByCustomer lista las ventas de un cliente.
func (r *SaleRepo) ListByCustomer(customerID string, filters repository.SaleFilters) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE customer_id = $1`
	args := []any{customerID}
	query, args = applySaleFilters(query, args, filters)
	query += ` ORDER BY created_at DESC`
	return r.listSales(query, args...)
}

// ListPendingApproval lista las ventas en espera de aprobación, las más antiguas primero.
func (r *SaleRepo) ListPendingApproval() ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE status = $1 ORDER BY updated_at ASC`
	return r.listSales(query, string(entity.SaleStatusPending))
}

// Update persiste el estado de la venta (sin ítems; ver SaveItems).
func (r *SaleRepo) Update(sale *entity.Sale) error {
	total, err := sale.Total()
	if err != nil {
		return err
	}
	query := `
		UPDATE sales
		SET status = $2, payment_method = $3, discount_kind = $4, discount_value = $5, total = $6,
		    notes = $7, approved_by = $8, approved_at = $9, rejected_by = $10, rejected_at = $11,
		    rejection_reason = $12, updated_at = $13
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		sale.ID, string(sale.Status), string(sale.PaymentMethod),
		string(sale.Discount.Type()), sale.Discount.Value(), total.Amount(),
		sale.Notes, nullable(sale.ApprovedBy), sale.ApprovedAt,
		nullable(sale.RejectedBy), sale.RejectedAt, sale.RejectionReason, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	return nil
}

// Delete elimina la venta y sus ítems (FK con ON DELETE CASCADE).
func (r *SaleRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) listSales(query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	var ids []string
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		sales = append(sales, sale)
		ids = append(ids, sale.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return sales, nil
	}

	itemsBySale, err := r.loadItems(ids)
	if err != nil {
		return nil, err
	}
	for _, sale := range sales {
		sale.Items = itemsBySale[sale.ID]
		if sale.Items == nil {
			sale.Items = []*entity.SaleItem{}
		}
	}
	return sales, nil
}

// loadItems carga las líneas de un conjunto de ventas en una sola consulta.
func (r *SaleRepo) loadItems(saleIDs []string) (map[string][]*entity.SaleItem, error) {
	query := `
		SELECT id, sale_id, product_id, product_name, quantity, unit_price, currency, discount_kind, discount_value, created_at, updated_at
		FROM sale_items WHERE sale_id = ANY($1) ORDER BY created_at ASC`
	rows, err := r.q.Query(context.Background(), query, saleIDs)
	if err != nil {
		return nil, fmt.Errorf("load sale items: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]*entity.SaleItem, len(saleIDs))
	for rows.Next() {
		var (
			id            string
			saleID        string
			productID     string
			productName   string
			quantity      decimal.Decimal
			unitPrice     decimal.Decimal
			currency      string
			discountKind  string
			discountValue decimal.Decimal
			createdAt     time.Time
			updatedAt     time.Time
		)
		if err := rows.Scan(&id, &saleID, &productID, &productName, &quantity, &unitPrice, &currency,
			&discountKind, &discountValue, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		qty, err := valueobject.NewQuantity(quantity)
		if err != nil {
			return nil, fmt.Errorf("sale item %s: %w", id, err)
		}
		price, err := valueobject.NewMoney(unitPrice, currency)
		if err != nil {
			return nil, fmt.Errorf("sale item %s: %w", id, err)
		}
		discount, err := valueobject.NewDiscount(discountKind, discountValue)
		if err != nil {
			return nil, fmt.Errorf("sale item %s: %w", id, err)
		}
		result[saleID] = append(result[saleID], &entity.SaleItem{
			Base:        entity.NewBaseWithID(id, createdAt, updatedAt),
			ProductID:   productID,
			ProductName: productName,
			Quantity:    qty,
			UnitPrice:   price,
			Discount:    discount,
		})
	}
	return result, rows.Err()
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var (
		id              string
		customerID      string
		customerName    string
		status          string
		paymentMethod   string
		discountKind    string
		discountValue   decimal.Decimal
		notes           string
		createdBy       string
		approvedBy      *string
		approvedAt      *time.Time
		rejectedBy      *string
		rejectedAt      *time.Time
		rejectionReason string
		createdAt       time.Time
		updatedAt       time.Time
	)
	if err := row.Scan(&id, &customerID, &customerName, &status, &paymentMethod,
		&discountKind, &discountValue, &notes, &createdBy,
		&approvedBy, &approvedAt, &rejectedBy, &rejectedAt, &rejectionReason,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}
	discount, err := valueobject.NewDiscount(discountKind, discountValue)
	if err != nil {
		return nil, fmt.Errorf("sale %s: %w", id, err)
	}
	sale := &entity.Sale{
		Base:            entity.NewBaseWithID(id, createdAt, updatedAt),
		CustomerID:      customerID,
		CustomerName:    customerName,
		Status:          entity.SaleStatus(status),
		Discount:        discount,
		PaymentMethod:   entity.PaymentMethod(paymentMethod),
		CreatedBy:       createdBy,
		ApprovedAt:      approvedAt,
		RejectedAt:      rejectedAt,
		RejectionReason: rejectionReason,
		Notes:           notes,
	}
	if approvedBy != nil {
		sale.ApprovedBy = *approvedBy
	}
	if rejectedBy != nil {
		sale.RejectedBy = *rejectedBy
	}
	return sale, nil
}

// applySaleFilters agrega condiciones WHERE según los filtros presentes.
func applySaleFilters(query string, args []any, filters repository.SaleFilters) (string, []any) {
	pos := len(args) + 1
	if filters.Status != "" {
		query += fmt.Sprintf(" AND status = $%d", pos)
		args = append(args, filters.Status)
		pos++
	}
	if filters.StartDate != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filters.StartDate)
		pos++
	}
	if filters.EndDate != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filters.EndDate)
		pos++
	}
	if filters.CreatedBy != "" {
		query += fmt.Sprintf(" AND created_by = $%d", pos)
		args = append(args, filters.CreatedBy)
		pos++
	}
	if filters.MinTotal != nil {
		query += fmt.Sprintf(" AND total >= $%d", pos)
		args = append(args, *filters.MinTotal)
		pos++
	}
	if filters.MaxTotal != nil {
		query += fmt.Sprintf(" AND total <= $%d", pos)
		args = append(args, *filters.MaxTotal)
		pos++
	}
	return query, args
}

// nullable convierte cadena vacía a NULL.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
