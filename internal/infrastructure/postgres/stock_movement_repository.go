package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/valueobject"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla es append-only: solo INSERT y SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

const movementColumns = `id, product_id, stock_id, type, reason, quantity, previous_quantity, new_quantity, user_id, notes, reference_id, reference_type, created_at`

// Create persiste un movimiento de stock.
func (r *StockMovementRepo) Create(movement *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (id, product_id, stock_id, type, reason, quantity, previous_quantity, new_quantity, user_id, notes, reference_id, reference_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	userID := (*string)(nil)
	if movement.UserID != "" {
		userID = &movement.UserID
	}
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.ProductID, movement.StockID,
		string(movement.Type), string(movement.Reason),
		movement.Quantity.Decimal(), movement.PreviousQuantity.Decimal(), movement.NewQuantity.Decimal(),
		userID, movement.Notes, movement.ReferenceID, movement.ReferenceType, movement.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByProduct lista movimientos de un producto en un rango de fechas.
func (r *StockMovementRepo) ListByProduct(productID string, from, to *time.Time, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE product_id = $1`
	args := []any{productID}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.list(query, args...)
}

// ListByStock lista movimientos de una fila de stock.
func (r *StockMovementRepo) ListByStock(stockID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `SELECT ` + movementColumns + ` FROM stock_movements WHERE stock_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.list(query, stockID, limit, offset)
}

func (r *StockMovementRepo) list(query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(row pgx.Row) (*entity.StockMovement, error) {
	var (
		id            string
		productID     string
		stockID       string
		movType       string
		reason        string
		quantity      decimal.Decimal
		previous      decimal.Decimal
		newQty        decimal.Decimal
		userID        *string
		notes         string
		referenceID   string
		referenceType string
		createdAt     time.Time
	)
	if err := row.Scan(&id, &productID, &stockID, &movType, &reason, &quantity, &previous, &newQty,
		&userID, &notes, &referenceID, &referenceType, &createdAt); err != nil {
		return nil, err
	}
	qty, err := valueobject.NewQuantity(quantity)
	if err != nil {
		return nil, err
	}
	prev, err := valueobject.NewQuantity(previous)
	if err != nil {
		return nil, err
	}
	after, err := valueobject.NewQuantity(newQty)
	if err != nil {
		return nil, err
	}
	m := &entity.StockMovement{
		Base:             entity.NewBaseWithID(id, createdAt, createdAt),
		ProductID:        productID,
		StockID:          stockID,
		Type:             entity.MovementType(movType),
		Reason:           entity.MovementReason(reason),
		Quantity:         qty,
		PreviousQuantity: prev,
		NewQuantity:      after,
		Notes:            notes,
		ReferenceID:      referenceID,
		ReferenceType:    referenceType,
	}
	if userID != nil {
		m.UserID = *userID
	}
	return m, nil
}
