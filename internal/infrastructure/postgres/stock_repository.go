package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, product_id, warehouse_id, quantity, reserved_quantity, status, last_movement_at, created_at, updated_at`

// GetByProductAndWarehouse obtiene el stock de un producto en una bodega, o nil si no existe.
func (r *StockRepo) GetByProductAndWarehouse(productID, warehouseID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1 AND warehouse_id = $2`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID), "get stock")
}

// GetForUpdate obtiene el stock y bloquea la fila para update (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE product_id = $1 AND warehouse_id = $2 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productID, warehouseID), "get stock for update")
}

// ListByWarehouse lista las filas de stock de una bodega.
func (r *StockRepo) ListByWarehouse(warehouseID string) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE warehouse_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Save inserta una fila de stock nueva (producto+bodega únicos).
func (r *StockRepo) Save(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, product_id, warehouse_id, quantity, reserved_quantity, status, last_movement_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.ProductID, stock.WarehouseID,
		stock.Quantity.Decimal(), stock.ReservedQuantity.Decimal(),
		string(stock.Status), stock.LastMovementAt, stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// Update persiste los contadores y el estado de una fila existente.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks
		SET quantity = $2, reserved_quantity = $3, status = $4, last_movement_at = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Quantity.Decimal(), stock.ReservedQuantity.Decimal(),
		string(stock.Status), stock.LastMovementAt, stock.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

func (r *StockRepo) scanOne(row pgx.Row, op string) (*entity.Stock, error) {
	s, err := scanStock(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s, nil
}

// scanStock reconstruye la entidad desde una fila; los contadores NUMERIC
// llegan como decimal gracias al codec registrado en el pool.
func scanStock(row pgx.Row) (*entity.Stock, error) {
	var (
		id             string
		productID      string
		warehouseID    string
		quantity       decimal.Decimal
		reserved       decimal.Decimal
		status         string
		lastMovementAt *time.Time
		createdAt      time.Time
		updatedAt      time.Time
	)
	if err := row.Scan(&id, &productID, &warehouseID, &quantity, &reserved, &status, &lastMovementAt, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	qty, err := valueobject.NewQuantity(quantity)
	if err != nil {
		return nil, fmt.Errorf("stock %s: %w", id, err)
	}
	res, err := valueobject.NewQuantity(reserved)
	if err != nil {
		return nil, fmt.Errorf("stock %s: %w", id, err)
	}
	return &entity.Stock{
		Base:             entity.NewBaseWithID(id, createdAt, updatedAt),
		ProductID:        productID,
		WarehouseID:      warehouseID,
		Quantity:         qty,
		ReservedQuantity: res,
		Status:           entity.StockStatus(status),
		LastMovementAt:   lastMovementAt,
	}, nil
}
